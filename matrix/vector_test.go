package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalise(t *testing.T) {
	v, err := Normalise(Vec3{3, 4, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.8, 0}, v[:], tol)

	// y*y, not y*z
	v, err = Normalise(Vec3{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, Len(v), tol)
	assert.InDelta(t, 2/math.Sqrt(14), v[1], tol)
}

func TestNormaliseZero(t *testing.T) {
	_, err := Normalise(Vec3{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDomain))

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "normalise", de.Op)
	assert.Contains(t, err.Error(), "zero vector")

	_, err = Normalise(Vec3{math.NaN(), 0, 1})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestNormaliseExtremeMagnitudes(t *testing.T) {
	third := 1 / math.Sqrt(3)
	cases := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"huge", Vec3{1e200, 1e200, 1e200}, Vec3{third, third, third}},
		{"near max float", Vec3{-math.MaxFloat64, 0, math.MaxFloat64}, Vec3{-math.Sqrt2 / 2, 0, math.Sqrt2 / 2}},
		{"subnormal", Vec3{0, 5e-324, 0}, Vec3{0, 1, 0}},
		{"tiny", Vec3{3e-200, 4e-200, 0}, Vec3{0.6, 0.8, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := Normalise(c.in)
			require.NoError(t, err)
			assert.InDeltaSlice(t, c.want[:], v[:], tol)
		})
	}

	_, err := Normalise(Vec3{math.Inf(-1), 0, 0})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestVectorOps(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{-4, 0.5, 2}
	assert.Equal(t, Vec3{-3, 2.5, 5}, Add(a, b))
	assert.Equal(t, Vec3{5, 1.5, 1}, Sub(a, b))
	assert.Equal(t, Vec3{2, 4, 6}, Scale(2, a))
	assert.Equal(t, Vec3{}, Scale(0, a))
	assert.Equal(t, 3.0, Dot(a, b))
	assert.Equal(t, 5.0, Len(Vec3{0, 3, 4}))
}
