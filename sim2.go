package gm

import (
	"errors"
	"fmt"
)

// ErrZeroScale is returned when a Sim2 would be constructed or decoded
// with a scale factor of zero.
var ErrZeroScale = errors.New("gm: Sim2 scale must be non-zero")

// ErrPointsShape is returned when a batch of points does not use the
// required row-per-point layout of two coordinates each.
var ErrPointsShape = errors.New("gm: points must be rows of two coordinates")

// Sim2 is a 2d similarity transform: a proper rotation, a translation
// and a uniform non-zero scale, combined into a single invertible
// mapping between two coordinate frames. A point p in the source frame
// maps to s * (R p + t) in the destination frame.
//
// The rotation matrix is trusted to be orthonormal with determinant +1;
// it is not validated or normalized at construction.
//
// Sim2 values are immutable. Compose and Inverse return new values.
type Sim2 struct {
	rotation    Mat
	translation Vec
	scale       float64

	// homogeneous form, precomputed at construction
	matrix Mat3
}

// NewSim2 builds a similarity transform from a rotation matrix, a
// translation vector and a uniform scale. It fails with ErrZeroScale
// if scale is zero, since the homogeneous form stores 1/scale.
func NewSim2(rotation Mat, translation Vec, scale float64) (Sim2, error) {
	if scale == 0 {
		return Sim2{}, ErrZeroScale
	}

	return newSim2(rotation, translation, scale), nil
}

// newSim2 assembles a Sim2 and its homogeneous form. The caller must
// have checked that scale is non-zero.
func newSim2(rotation Mat, translation Vec, scale float64) Sim2 {
	return Sim2{
		rotation:    rotation,
		translation: translation,
		scale:       scale,
		matrix: Mat3{
			XAxis: Vec3{X: rotation.XAxis.X, Y: rotation.XAxis.Y, W: translation.X},
			YAxis: Vec3{X: rotation.YAxis.X, Y: rotation.YAxis.Y, W: translation.Y},
			WAxis: Vec3{W: 1 / scale},
		},
	}
}

// IdentitySim2 returns the identity transform with no rotation, no
// translation and a scale of one.
func IdentitySim2() Sim2 {
	return newSim2(IdentityMat(), VecZero, 1)
}

// Sim2FromMatrix decomposes a 3x3 homogeneous matrix of the form
//
//	| R00 R01 tx  |
//	| R10 R11 ty  |
//	| 0   0   1/s |
//
// back into a Sim2. It is the exact inverse of Matrix. A zero in the
// bottom right cell fails with ErrZeroScale.
func Sim2FromMatrix(m Mat3) (Sim2, error) {
	if m.WAxis.W == 0 {
		return Sim2{}, ErrZeroScale
	}

	return decompose(m), nil
}

func decompose(m Mat3) Sim2 {
	rotation := Mat{
		XAxis: Vec{X: m.XAxis.X, Y: m.XAxis.Y},
		YAxis: Vec{X: m.YAxis.X, Y: m.YAxis.Y},
	}

	translation := Vec{X: m.XAxis.W, Y: m.YAxis.W}

	return newSim2(rotation, translation, 1/m.WAxis.W)
}

// Rotation returns the 2x2 rotation part of the transform.
func (s Sim2) Rotation() Mat {
	return s.rotation
}

// Translation returns the translation part of the transform, expressed
// in units of the destination frame.
func (s Sim2) Translation() Vec {
	return s.translation
}

// Scale returns the uniform scale factor of the transform.
func (s Sim2) Scale() float64 {
	return s.scale
}

// Matrix returns the 3x3 homogeneous form of the transform.
func (s Sim2) Matrix() Mat3 {
	return s.matrix
}

// Theta returns the rotation angle of the transform.
func (s Sim2) Theta() Rad {
	return s.rotation.Theta()
}

// ThetaDeg returns the rotation angle of the transform in degrees,
// in the range [-180, 180].
func (s Sim2) ThetaDeg() float64 {
	return s.Theta().Degrees()
}

// Compose combines the transform with another one. With s mapping
// frame b to frame a and other mapping frame c to frame b, the result
// maps frame c directly to frame a.
//
// The product of the two homogeneous matrices is decomposed back into
// rotation, translation and scale. The bottom right cell of the
// product is 1/(s.scale*other.scale) and therefore never zero.
func (s Sim2) Compose(other Sim2) Sim2 {
	return decompose(s.matrix.Mul(other.matrix))
}

// Inverse returns the transform that maps the destination frame back
// to the source frame, so that s.Compose(s.Inverse()) is the identity
// transform up to floating point error.
func (s Sim2) Inverse() Sim2 {
	rotation := s.rotation.Transpose()
	translation := rotation.Transform(s.translation).Mul(-s.scale)
	return newSim2(rotation, translation, 1/s.scale)
}

// Transform applies the similarity transform to a batch of points
// expressed in the source frame, returning their coordinates in the
// destination frame. The input slice is not modified.
func (s Sim2) Transform(points []Vec) []Vec {
	transformed := make([]Vec, len(points))
	for idx, point := range points {
		transformed[idx] = s.matrix.ProjectPoint(point)
	}

	return transformed
}

// TransformFrom applies the similarity transform to an untyped batch
// of points in row-per-point layout. Every row must hold exactly two
// coordinates, a bare flat vector is rejected with ErrPointsShape even
// for a single point.
func (s Sim2) TransformFrom(points [][]float64) ([][]float64, error) {
	transformed := make([][]float64, len(points))

	for idx, row := range points {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w, row %d has %d value(s)", ErrPointsShape, idx, len(row))
		}

		point := s.matrix.ProjectPoint(Vec{X: row[0], Y: row[1]})
		transformed[idx] = []float64{point.X, point.Y}
	}

	return transformed, nil
}

// Equal reports whether two transforms have exactly equal rotation,
// translation and scale. There is no implicit tolerance, use the angle
// and scale accessors for approximate comparisons.
func (s Sim2) Equal(other Sim2) bool {
	return s.rotation == other.rotation &&
		s.translation == other.translation &&
		s.scale == other.scale
}

// String returns a human readable rendering of the transform for
// diagnostic use. The format is not stable and not meant to be parsed.
func (s Sim2) String() string {
	return fmt.Sprintf("Angle (deg.): %.1f, Trans.: %s, Scale: %v", s.ThetaDeg(), s.translation, s.scale)
}
