package gm

// Vec3 is a homogeneous 2d vector with components X, Y and W.
type Vec3 struct {
	X, Y, W float64
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.W*other.W
}

// Project divides the X and Y components by W to recover the
// euclidean point described by the homogeneous vector.
func (v Vec3) Project() Vec {
	return Vec{
		X: v.X / v.W,
		Y: v.Y / v.W,
	}
}

// Mat3 describes a 3x3 matrix of float64 values in row major order.
// It is used as the homogeneous form of 2d transformations.
type Mat3 struct {
	XAxis, YAxis, WAxis Vec3
}

func IdentityMat3() Mat3 {
	return Mat3{
		XAxis: Vec3{X: 1},
		YAxis: Vec3{Y: 1},
		WAxis: Vec3{W: 1},
	}
}

func (m Mat3) Transform(vec Vec3) Vec3 {
	return Vec3{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
		W: m.WAxis.Dot(vec),
	}
}

// ProjectPoint homogenizes the point to (x, y, 1), transforms it and
// applies the perspective divide.
func (m Mat3) ProjectPoint(point Vec) Vec {
	return m.Transform(Vec3{X: point.X, Y: point.Y, W: 1}).Project()
}

func (m Mat3) Mul(n Mat3) Mat3 {
	cols := n.Transpose()

	return Mat3{
		XAxis: Vec3{X: m.XAxis.Dot(cols.XAxis), Y: m.XAxis.Dot(cols.YAxis), W: m.XAxis.Dot(cols.WAxis)},
		YAxis: Vec3{X: m.YAxis.Dot(cols.XAxis), Y: m.YAxis.Dot(cols.YAxis), W: m.YAxis.Dot(cols.WAxis)},
		WAxis: Vec3{X: m.WAxis.Dot(cols.XAxis), Y: m.WAxis.Dot(cols.YAxis), W: m.WAxis.Dot(cols.WAxis)},
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		XAxis: Vec3{X: m.XAxis.X, Y: m.YAxis.X, W: m.WAxis.X},
		YAxis: Vec3{X: m.XAxis.Y, Y: m.YAxis.Y, W: m.WAxis.Y},
		WAxis: Vec3{X: m.XAxis.W, Y: m.YAxis.W, W: m.WAxis.W},
	}
}
