package sldsphere

import (
	"fmt"
	"math"
)

// QGrid describes the q vector to evaluate: explicit Values win, otherwise
// Points samples between Min and Max, logarithmically when Log is set.
type QGrid struct {
	Min    Real   `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max    Real   `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
	Points int    `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Log    bool   `json:"log,omitempty" yaml:"log,omitempty" toml:"log,omitempty"`
	Values []Real `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

func (g QGrid) Build() ([]Real, error) {
	if len(g.Values) > 0 {
		qs := make([]Real, len(g.Values))
		for i, q := range g.Values {
			if !isFinite(q) || q < 0 {
				return nil, fmt.Errorf("%w: q #%d must be finite and >= 0, got %g", ErrInvalidQGrid, i, q)
			}
			qs[i] = q
		}
		return qs, nil
	}
	if g.Points < 1 {
		return nil, fmt.Errorf("%w: points must be >= 1, got %d", ErrInvalidQGrid, g.Points)
	}
	if !isFinite(g.Min) || !isFinite(g.Max) || g.Min < 0 || g.Max < g.Min {
		return nil, fmt.Errorf("%w: need 0 <= min <= max, got [%g, %g]", ErrInvalidQGrid, g.Min, g.Max)
	}
	if g.Log && g.Min <= 0 {
		return nil, fmt.Errorf("%w: log spacing needs min > 0, got %g", ErrInvalidQGrid, g.Min)
	}
	qs := make([]Real, g.Points)
	if g.Points == 1 {
		qs[0] = g.Min
		return qs, nil
	}
	n := Real(g.Points - 1)
	for i := range qs {
		t := Real(i) / n
		if g.Log {
			qs[i] = g.Min * math.Pow(g.Max/g.Min, t)
		} else {
			qs[i] = g.Min + (g.Max-g.Min)*t
		}
	}
	// pin the end point against rounding
	qs[len(qs)-1] = g.Max
	return qs, nil
}
