package matrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// singularDet is the determinant magnitude below which Inverse gives up.
const singularDet = 1e-12

// Inverse returns the inverse of m. mgl64 stores column-major matrices for
// column vectors, which is the same flat array as ours, so the conversion is
// a plain type change.
func Inverse(m Mat4) (Mat4, error) {
	g := mgl64.Mat4(m)
	det := g.Det()
	if math.Abs(det) < singularDet || math.IsNaN(det) {
		return Mat4{}, domainErr("inverse", "singular matrix (det %g)", det)
	}
	return Mat4(g.Inv()), nil
}

// Float32 narrows m for upload as a GL uniform.
func Float32(m Mat4) mgl32.Mat4 {
	var f mgl32.Mat4
	for i, v := range m {
		f[i] = float32(v)
	}
	return f
}
