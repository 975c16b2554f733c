package matrix

import "math"

// Vec3 is an x,y,z triple.
type Vec3 [3]float64

// Add returns a + b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale multiplies every component of v by n.
func Scale(n float64, v Vec3) Vec3 {
	return Vec3{v[0] * n, v[1] * n, v[2] * n}
}

func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Len is the euclidean length of v, x*x + y*y + z*z under the root.
func Len(v Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalise returns v divided by its length. v is first scaled by its
// largest component, so huge or subnormal vectors keep their direction.
// The zero vector and vectors with NaN or Inf components yield a DomainError
// instead of NaN components.
func Normalise(v Vec3) (Vec3, error) {
	m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if m == 0 {
		return Vec3{}, domainErr("normalise", "zero vector %v", v)
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return Vec3{}, domainErr("normalise", "non-finite vector %v", v)
	}
	s := Vec3{v[0] / m, v[1] / m, v[2] / m}
	l := Len(s)
	return Vec3{s[0] / l, s[1] / l, s[2] / l}, nil
}
