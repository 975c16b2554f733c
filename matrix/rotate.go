package matrix

import "math"

// Right-handed rotations: looking down the positive axis towards the origin,
// a positive angle turns the other two axes counter-clockwise. Rows are the
// rotated basis vectors.

// RotateX rotates by theta radians about the x axis.
func RotateX(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY rotates by theta radians about the y axis.
func RotateY(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ rotates by theta radians about the z axis.
func RotateZ(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
