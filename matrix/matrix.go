// Package matrix is a small kernel of 3-vectors and 4x4 matrices for
// composing model, view and projection transforms.
//
// Matrices are flat, row-major and meant to be applied to row vectors:
//
//	[ m0  m1  m2  m3  ]   x basis
//	[ m4  m5  m6  m7  ]   y basis
//	[ m8  m9  m10 m11 ]   z basis
//	[ m12 m13 m14 m15 ]   translation
//
// so v·Mul(a, b) applies a first and then b. Stored this way the 16 values
// are exactly the column-major array OpenGL expects, and a Mat4 can be handed
// to glUniformMatrix4fv without transposing.
//
// Every function returns a fresh value; nothing is mutated in place, so the
// package is safe for concurrent use.
package matrix

import "math"

// Mat4 is a row-major 4x4 matrix.
type Mat4 [16]float64

// Identity returns the identity matrix. An optional origin is placed in the
// translation row, giving an identity centred at that point.
func Identity(origin ...Vec3) Mat4 {
	m := Mat4{
		1, 0, 0, 0, // x
		0, 1, 0, 0, // y
		0, 0, 1, 0, // z
		0, 0, 0, 1, // w
	}
	if len(origin) > 0 {
		m[12], m[13], m[14] = origin[0][0], origin[0][1], origin[0][2]
	}
	return m
}

// Mul returns the product a·b, i.e. result[i][j] = Σk a[i][k]*b[k][j].
func Mul(a, b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			r[i*4+j] = sum
		}
	}
	return r
}

// Translate returns a copy of m with delta added to its translation row.
// This is a world-space update of the position and leaves the basis alone;
// it is not a multiplication by a translation matrix.
func Translate(m Mat4, delta Vec3) Mat4 {
	m[12] += delta[0]
	m[13] += delta[1]
	m[14] += delta[2]
	return m
}

func Transpose(m Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = m[j*4+i]
		}
	}
	return r
}

// Row returns the first three components of row i: 0 is the x (right)
// basis, 1 the y (up) basis, 2 the z basis and 3 the translation.
func Row(m Mat4, i int) Vec3 {
	return Vec3{m[i*4], m[i*4+1], m[i*4+2]}
}

// Position returns the translation row of m.
func Position(m Mat4) Vec3 {
	return Row(m, 3)
}

// TransformPoint returns the row vector (v, 1)·m, divided by w when the
// matrix is projective.
func TransformPoint(v Vec3, m Mat4) Vec3 {
	var r [4]float64
	for j := 0; j < 4; j++ {
		r[j] = v[0]*m[j] + v[1]*m[4+j] + v[2]*m[8+j] + m[12+j]
	}
	if r[3] != 0 && r[3] != 1 {
		return Vec3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vec3{r[0], r[1], r[2]}
}

// IsFinite reports whether no element of m is NaN or infinite.
func IsFinite(m Mat4) bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every element of a is within eps of b.
func ApproxEqual(a, b Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
