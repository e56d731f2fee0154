package sldsphere

import (
	"fmt"
	"math"
)

// Shell is one layer: a uniform part of width Thickness followed by a graded
// interface of width Interface that blends into the next layer (or the solvent).
type Shell struct {
	SLD       Real
	Thickness Real
	Interface Real
	Shape     BlendShape
	Nu        Real // interface sharpness; only |Nu| is used
}

// Stack is ordered from the core (index 0) outwards.
type Stack []Shell

// TotalRadius is the outer radius of the particle, also used as its effective radius.
func (s Stack) TotalRadius() Real {
	r := 0.0
	for _, sh := range s {
		r += sh.Thickness + sh.Interface
	}
	return r
}

// Volume is the volume of the sphere bounded by TotalRadius.
func (s Stack) Volume() Real {
	return fourPiThirds * cube(s.TotalRadius())
}

// Validate checks the geometry and SLDs. The integrator itself never calls it.
func (s Stack) Validate() error {
	if len(s) == 0 {
		return ErrNoShells
	}
	if len(s) > MaxShells {
		return fmt.Errorf("%w: %d > %d", ErrTooManyShells, len(s), MaxShells)
	}
	for i, sh := range s {
		switch {
		case !isFinite(sh.SLD):
			return fmt.Errorf("%w #%d: sld must be finite, got %g", ErrInvalidShell, i, sh.SLD)
		case !isFinite(sh.Thickness) || sh.Thickness < 0:
			return fmt.Errorf("%w #%d: thickness must be >= 0, got %g", ErrInvalidShell, i, sh.Thickness)
		case !isFinite(sh.Interface) || sh.Interface < 0:
			return fmt.Errorf("%w #%d: interface must be >= 0, got %g", ErrInvalidShell, i, sh.Interface)
		case math.IsNaN(sh.Nu):
			return fmt.Errorf("%w #%d: nu is NaN", ErrInvalidShell, i)
		case !sh.Shape.Valid():
			return fmt.Errorf("%w #%d: %v", ErrUnknownShape, i, sh.Shape)
		}
	}
	return nil
}
