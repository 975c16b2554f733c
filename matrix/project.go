package matrix

import "math"

// Perspective builds a symmetric projection from a vertical field of view
// (radians), a width/height aspect ratio and the near/far clip distances.
// With f = 1/tan(fov/2):
//
//	f/aspect  0  0                    0
//	0         f  0                    0
//	0         0  (near+far)/(near-far) -1
//	0         0  2*far*near/(near-far)  0
//
// A degenerate or inverted frustum is a DomainError, and so are finite
// arguments whose matrix entries overflow.
func Perspective(fov, aspect, near, far float64) (Mat4, error) {
	const op = "perspective"
	if !finite(fov, aspect, near, far) {
		return Mat4{}, domainErr(op, "non-finite argument")
	}
	if !(fov > 0 && fov < math.Pi) {
		return Mat4{}, domainErr(op, "fov %g outside (0, pi)", fov)
	}
	if !(aspect > 0) {
		return Mat4{}, domainErr(op, "aspect %g must be positive", aspect)
	}
	if err := checkDepth(op, near, far); err != nil {
		return Mat4{}, err
	}

	f := 1 / math.Tan(fov/2)
	nmf := near - far
	return checkResult(op, Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) / nmf, -1,
		0, 0, (2 * far * near) / nmf, 0,
	})
}

// PerspectiveFrustum builds an off-centre projection from the edges of the
// near plane. A symmetric frustum gives the same matrix as Perspective.
func PerspectiveFrustum(left, right, top, bottom, near, far float64) (Mat4, error) {
	const op = "frustum"
	if !finite(left, right, top, bottom, near, far) {
		return Mat4{}, domainErr(op, "non-finite argument")
	}
	if right == left {
		return Mat4{}, domainErr(op, "right == left (%g)", left)
	}
	if top == bottom {
		return Mat4{}, domainErr(op, "top == bottom (%g)", top)
	}
	if err := checkDepth(op, near, far); err != nil {
		return Mat4{}, err
	}

	rml, tmb, fmn := right-left, top-bottom, far-near
	return checkResult(op, Mat4{
		(2 * near) / rml, 0, 0, 0,
		0, (2 * near) / tmb, 0, 0,
		(right + left) / rml, (top + bottom) / tmb, -(far + near) / fmn, -1,
		0, 0, -(2 * far * near) / fmn, 0,
	})
}

func checkDepth(op string, near, far float64) error {
	if !(near > 0) {
		return domainErr(op, "near %g must be positive", near)
	}
	if !(far > near) {
		return domainErr(op, "far %g must be greater than near %g", far, near)
	}
	return nil
}

// checkResult rejects matrices whose entries overflowed to ±Inf.
func checkResult(op string, m Mat4) (Mat4, error) {
	if !IsFinite(m) {
		return Mat4{}, domainErr(op, "result overflows")
	}
	return m, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
