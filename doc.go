// Package gm (stands for geometry math) provides 2d geometry primitives.
//
// It includes a 2d vector type called Vec, a 2d matrix type Mat, homogeneous
// counterparts Vec3 and Mat3, and a similarity transform type Sim2 that
// combines a rotation, a translation and a uniform scale into a single
// invertible mapping between two coordinate frames.
//
// There is also a type named Rad to represent angle values in radian.
//
// All types are small immutable values. Methods never mutate their receiver
// and instances can be shared freely between goroutines.
package gm
