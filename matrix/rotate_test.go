package matrix

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var angles = []float64{0, 0.1, -0.7, math.Pi / 2, math.Pi, -math.Pi / 3, 2.5, 7 * math.Pi, -12.34}

var rotations = []struct {
	name   string
	rotate func(float64) Mat4
	mgl    func(float64) mgl64.Mat4
}{
	{"x", RotateX, mgl64.HomogRotate3DX},
	{"y", RotateY, mgl64.HomogRotate3DY},
	{"z", RotateZ, mgl64.HomogRotate3DZ},
}

func det3(m Mat4) float64 {
	return m[0]*(m[5]*m[10]-m[6]*m[9]) -
		m[1]*(m[4]*m[10]-m[6]*m[8]) +
		m[2]*(m[4]*m[9]-m[5]*m[8])
}

func TestRotationOrthogonal(t *testing.T) {
	for _, r := range rotations {
		t.Run(r.name, func(t *testing.T) {
			for _, theta := range angles {
				m := r.rotate(theta)
				// transpose is the inverse
				assertMat(t, Identity(), Mul(m, Transpose(m)), tol)
				assert.InDelta(t, 1.0, det3(m), tol)
				// last column untouched
				assert.Equal(t, []float64{0, 0, 0, 1}, []float64{m[3], m[7], m[11], m[15]})
			}
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for _, r := range rotations {
		t.Run(r.name, func(t *testing.T) {
			for _, theta := range angles {
				assertMat(t, Identity(), Mul(r.rotate(theta), r.rotate(-theta)), tol)
			}
		})
	}
}

func TestRotationMatchesMathgl(t *testing.T) {
	for _, r := range rotations {
		t.Run(r.name, func(t *testing.T) {
			for _, theta := range angles {
				assertMat(t, Mat4(r.mgl(theta)), r.rotate(theta), tol)
			}
		})
	}
}

func round1(vs ...float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Round(v*10)/10 + 0
	}
	return out
}

func TestRotateXQuarterTurnBasis(t *testing.T) {
	m := RotateX(math.Pi / 2)
	assert.Equal(t, []float64{0, 0, 1, 0}, round1(m[4], m[5], m[6], m[7]))
	assert.Equal(t, []float64{0, -1, 0, 0}, round1(m[8], m[9], m[10], m[11]))
}

// Right hand rule: a quarter turn about each axis carries the next axis onto
// the one after it.
func TestRotationHandedness(t *testing.T) {
	quarter := math.Pi / 2
	cases := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x carries y to z", RotateX(quarter), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y carries z to x", RotateY(quarter), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z carries x to y", RotateZ(quarter), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"y carries x to -z", RotateY(quarter), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TransformPoint(c.in, c.m)
			assert.InDeltaSlice(t, c.want[:], got[:], tol)
		})
	}
}
