package gm

import "math"

// Mat describes a 2d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1, Y: 0},
		YAxis: Vec{X: 0, Y: 1},
	}
}

// RotationMat returns a proper rotation matrix that rotates
// a Vec counter clockwise by the given angle.
func RotationMat(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: cos, Y: -sin},
		YAxis: Vec{X: sin, Y: cos},
	}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{X: scale.X},
		YAxis: Vec{Y: scale.Y},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
	}
}

func (m Mat) Mul(n Mat) Mat {
	return Mat{
		XAxis: Vec{
			X: m.XAxis.X*n.XAxis.X + m.XAxis.Y*n.YAxis.X,
			Y: m.XAxis.X*n.XAxis.Y + m.XAxis.Y*n.YAxis.Y,
		},
		YAxis: Vec{
			X: m.YAxis.X*n.XAxis.X + m.YAxis.Y*n.YAxis.X,
			Y: m.YAxis.X*n.XAxis.Y + m.YAxis.Y*n.YAxis.Y,
		},
	}
}

func (m Mat) Transpose() Mat {
	return Mat{
		XAxis: Vec{X: m.XAxis.X, Y: m.YAxis.X},
		YAxis: Vec{X: m.XAxis.Y, Y: m.YAxis.Y},
	}
}

func (m Mat) Det() float64 {
	return m.XAxis.X*m.YAxis.Y - m.XAxis.Y*m.YAxis.X
}

// Theta returns the rotation angle of the matrix in the range [-π, π],
// assuming it describes a proper rotation.
func (m Mat) Theta() Rad {
	return Rad(math.Atan2(m.YAxis.X, m.XAxis.X))
}

// Inverse returns the inverse of the matrix.
// The result is undefined for a singular matrix, use TryInverse
// if the matrix might not be invertible.
func (m Mat) Inverse() Mat {
	f := 1 / m.Det()
	return Mat{
		XAxis: Vec{
			X: f * m.YAxis.Y,
			Y: f * -m.XAxis.Y,
		},
		YAxis: Vec{
			X: f * -m.YAxis.X,
			Y: f * m.XAxis.X,
		},
	}
}

// TryInverse returns the inverse of the matrix if it is invertible.
func (m Mat) TryInverse() (inverse Mat, ok bool) {
	if m.Det() == 0 {
		return Mat{}, false
	}

	return m.Inverse(), true
}
