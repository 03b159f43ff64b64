package gm

import (
	"fmt"
	"math"
)

// Vec is a 2d vector of float64 values.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VecSplat returns a Vec with both components set to value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) Normalized() Vec {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
