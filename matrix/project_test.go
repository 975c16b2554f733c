package matrix

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerspectiveDomain(t *testing.T) {
	fov := DegToRad(45)
	cases := []struct {
		name                   string
		fov, aspect, near, far float64
	}{
		{"zero near", fov, 1.5, 0, 100},
		{"negative near", fov, 1.5, -1, 100},
		{"near equals far", fov, 1.5, 1, 1},
		{"far behind near", fov, 1.5, 10, 1},
		{"zero aspect", fov, 0, 0.1, 100},
		{"negative aspect", fov, -1, 0.1, 100},
		{"zero fov", 0, 1.5, 0.1, 100},
		{"fov pi", math.Pi, 1.5, 0.1, 100},
		{"nan near", fov, 1.5, math.NaN(), 100},
		{"infinite far", fov, 1.5, 0.1, math.Inf(1)},
		{"overflowing tiny fov", 5e-324, 1, 0.1, 100},
		{"overflowing tiny aspect", fov, 1e-320, 0.1, 100},
		{"overflowing huge far", 1, 1, 1, 1e308},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Perspective(c.fov, c.aspect, c.near, c.far)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestPerspective(t *testing.T) {
	fov, aspect, near, far := DegToRad(90), 600.0/400.0, 1.0, 100.0
	m, err := Perspective(fov, aspect, near, far)
	require.NoError(t, err)

	assert.Equal(t, -1.0, m[11])
	assert.Equal(t, 0.0, m[15])
	assertMat(t, Mat4(mgl64.Perspective(fov, aspect, near, far)), m, tol)

	// near plane to ndc -1, far plane to +1
	p := TransformPoint(Vec3{0, 0, -near}, m)
	assert.InDelta(t, -1.0, p[2], tol)
	p = TransformPoint(Vec3{0, 0, -far}, m)
	assert.InDelta(t, 1.0, p[2], tol)
}

func TestPerspectiveFrustumDomain(t *testing.T) {
	cases := []struct {
		name                                string
		left, right, top, bottom, near, far float64
	}{
		{"right equals left", 1, 1, 1, -1, 0.1, 100},
		{"top equals bottom", -1, 1, 2, 2, 0.1, 100},
		{"zero near", -1, 1, 1, -1, 0, 100},
		{"near equals far", -1, 1, 1, -1, 5, 5},
		{"nan edge", math.NaN(), 1, 1, -1, 0.1, 100},
		{"overflowing tiny width", -1e-320, 1e-320, 1, -1, 0.1, 100},
		{"overflowing tiny height", -1, 1, 1e-320, -1e-320, 0.1, 100},
		{"overflowing huge far", -1, 1, 1, -1, 1, 1e308},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := PerspectiveFrustum(c.left, c.right, c.top, c.bottom, c.near, c.far)
			assert.ErrorIs(t, err, ErrDomain)
		})
	}
}

func TestPerspectiveFrustum(t *testing.T) {
	m, err := PerspectiveFrustum(-50, 50, 50, -50, 0.1, 100)
	require.NoError(t, err)
	assertMat(t, Mat4(mgl64.Frustum(-50, 50, -50, 50, 0.1, 100)), m, tol)
	assert.Equal(t, -1.0, m[11])

	// off centre terms land in the z row
	m, err = PerspectiveFrustum(-1, 3, 2, -1, 1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m[8], tol)
	assert.InDelta(t, 1.0/3.0, m[9], tol)
	assertMat(t, Mat4(mgl64.Frustum(-1, 3, -1, 2, 1, 10)), m, tol)
}

func TestSymmetricFrustumIsPerspective(t *testing.T) {
	fov, aspect, near, far := DegToRad(60), 16.0/9.0, 0.5, 250.0
	top := near * math.Tan(fov/2)
	right := top * aspect

	f, err := PerspectiveFrustum(-right, right, top, -top, near, far)
	require.NoError(t, err)
	p, err := Perspective(fov, aspect, near, far)
	require.NoError(t, err)
	assertMat(t, p, f, tol)
}
