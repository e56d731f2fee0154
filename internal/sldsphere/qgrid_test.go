package sldsphere

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQGridBuild(t *testing.T) {
	lin, err := QGrid{Min: 0, Max: 1, Points: 5}.Build()
	require.NoError(t, err)
	if diff := cmp.Diff([]Real{0, 0.25, 0.5, 0.75, 1}, lin); diff != "" {
		t.Errorf("linear grid mismatch (-want +got):\n%s", diff)
	}

	logq, err := QGrid{Min: 1e-3, Max: 1, Points: 4, Log: true}.Build()
	require.NoError(t, err)
	require.Len(t, logq, 4)
	for i, want := range []Real{1e-3, 1e-2, 1e-1, 1} {
		assert.InEpsilon(t, want, logq[i], 1e-12)
	}
	assert.Equal(t, 1.0, logq[3])

	one, err := QGrid{Min: 0.05, Max: 0.5, Points: 1}.Build()
	require.NoError(t, err)
	assert.Equal(t, []Real{0.05}, one)

	vals, err := QGrid{Points: 100, Values: []Real{0.3, 0, 0.1}}.Build()
	require.NoError(t, err)
	assert.Equal(t, []Real{0.3, 0, 0.1}, vals)
}

func TestQGridErrors(t *testing.T) {
	for name, g := range map[string]QGrid{
		"no points":    {Min: 0, Max: 1},
		"reversed":     {Min: 1, Max: 0.5, Points: 3},
		"negative":     {Min: -1, Max: 1, Points: 3},
		"log from 0":   {Min: 0, Max: 1, Points: 3, Log: true},
		"nan value":    {Values: []Real{0.1, math.NaN()}},
		"negative val": {Values: []Real{-0.1}},
	} {
		_, err := g.Build()
		assert.True(t, errors.Is(err, ErrInvalidQGrid), "%s: got %v", name, err)
	}
}
