package sldsphere

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	allShapes = []BlendShape{ShapeErf, ShapeRPow, ShapeLPow, ShapeRExp, ShapeLExp}
	testNus   = []Real{minNu, 1e-6, 1e-3, 0.5, 1, 2.5, 10, 50}
)

func TestBlendBoundaries(t *testing.T) {
	for _, shape := range allShapes {
		for _, nu := range testNus {
			assert.InDelta(t, 0, Blend(shape, nu, 0), 1e-9, "%v nu=%g z=0", shape, nu)
			assert.InDelta(t, 1, Blend(shape, nu, 1), 1e-9, "%v nu=%g z=1", shape, nu)
		}
	}
}

func TestBlendPowerLawMonotonic(t *testing.T) {
	for _, shape := range []BlendShape{ShapeRPow, ShapeLPow} {
		for _, nu := range []Real{1e-3, 0.5, 1, 2.5, 10, 50} {
			prev := Blend(shape, nu, 0)
			for i := 1; i < 100; i++ {
				z := Real(i) / 100
				f := Blend(shape, nu, z)
				if f < prev {
					t.Fatalf("%v nu=%g not monotonic at z=%g: %g < %g", shape, nu, z, f, prev)
				}
				prev = f
			}
		}
	}
}

func TestBlendErfSymmetry(t *testing.T) {
	for _, nu := range []Real{0.1, 2.5, 8} {
		assert.InDelta(t, 0.5, Blend(ShapeErf, nu, 0.5), 1e-15)
		for _, z := range []Real{0.1, 0.25, 0.4} {
			// sigmoid is point-symmetric about (0.5, 0.5)
			assert.InDelta(t, 1, Blend(ShapeErf, nu, z)+Blend(ShapeErf, nu, 1-z), 1e-12)
		}
	}
}

func TestBlendSmallNuIsLinear(t *testing.T) {
	// expm1 keeps the exponential ramps finite and linear as nu -> 0
	for _, shape := range []BlendShape{ShapeRExp, ShapeLExp, ShapeRPow} {
		for _, z := range []Real{0.2, 0.5, 0.9} {
			f := Blend(shape, minNu, z)
			require.False(t, math.IsNaN(f), "%v z=%g", shape, z)
			if shape != ShapeRPow {
				assert.InDelta(t, z, f, 1e-9, "%v z=%g", shape, z)
			}
		}
	}
	assert.InDelta(t, 0.3, Blend(ShapeRPow, 1, 0.3), 1e-15)
	assert.InDelta(t, 0.3, Blend(ShapeLPow, 1, 0.3), 1e-15)
}

func TestBlendUnknownShape(t *testing.T) {
	for _, shape := range []BlendShape{-1, 5, 99} {
		if !math.IsNaN(Blend(shape, 2.5, 0.5)) {
			t.Fatalf("shape %d should give NaN", shape)
		}
		assert.False(t, shape.Valid())
	}
}

func TestClampNu(t *testing.T) {
	assert.Equal(t, minNu, clampNu(0))
	assert.Equal(t, minNu, clampNu(-1e-20))
	assert.Equal(t, 3.0, clampNu(-3))
	assert.Equal(t, 2.5, clampNu(2.5))
}

func TestParseBlendShape(t *testing.T) {
	for i, name := range []string{"erf", "RPow", " lpow ", "rexp", "lexp"} {
		s, err := ParseBlendShape(name)
		require.NoError(t, err)
		assert.Equal(t, BlendShape(i), s)
		assert.Equal(t, shapeNames[i], s.String())
	}
	s, err := ParseBlendShape("3")
	require.NoError(t, err)
	assert.Equal(t, ShapeRExp, s)

	_, err = ParseBlendShape("gauss")
	assert.True(t, errors.Is(err, ErrUnknownShape), "got %v", err)
	assert.Equal(t, "shape(99)", BlendShape(99).String())
}
