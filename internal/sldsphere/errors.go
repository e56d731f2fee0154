package sldsphere

import "errors"

var (
	ErrNoShells      = errors.New("sldsphere: particle has no shells")
	ErrTooManyShells = errors.New("sldsphere: too many shells")
	ErrInvalidShell  = errors.New("sldsphere: invalid shell")
	ErrUnknownShape  = errors.New("sldsphere: unknown blend shape")
	ErrInvalidQGrid  = errors.New("sldsphere: invalid q grid")
	ErrInvalidModel  = errors.New("sldsphere: invalid model")
	// ErrNonFinite marks a NaN or Inf intensity, usually from an unknown blend shape.
	ErrNonFinite = errors.New("sldsphere: non-finite intensity")
)
