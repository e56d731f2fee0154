package sldsphere

import "math"

type Real = float64

// Defaults and numeric floors.
const (
	MaxShells        = 10    // upper bound on layers accepted from a config
	Steps            = 35    // default sub-steps per interface
	Scale            = 1.0   // default intensity scale
	Background       = 0.001 // default flat background (1/cm)
	SolventSLD       = 1.0   // default solvent SLD (1e-6/Ang^2)
	QPoints          = 200   // default q grid size
	QMin             = 0.001 // 1/Ang
	QMax             = 0.5   // 1/Ang
	ProfileOvershoot = 1.2   // solvent tail of the SLD profile, as a multiple of R
	// hot-loop constants
	minNu              = 1e-14 // floor on |nu|, keeps the erf/expm1 ratios finite
	intensityUnits     = 1e-4  // (1e-6/Ang^2 * Ang^3)^2 / Ang^3 -> 1/cm
	sphJ1cCutoff       = 0.1
	linearKernelCutoff = 0.5
	fourPiThirds       = 4 * math.Pi / 3
)
