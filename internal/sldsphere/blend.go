package sldsphere

import (
	"fmt"
	"math"
	"strings"
)

// BlendShape selects how the SLD moves from one layer to the next across an interface.
type BlendShape int

const (
	ShapeErf  BlendShape = iota // erf sigmoid centred mid-interface
	ShapeRPow                   // z^nu
	ShapeLPow                   // 1 - (1-z)^nu
	ShapeRExp                   // expm1(-nu z) / expm1(-nu)
	ShapeLExp                   // expm1(nu z) / expm1(nu)
)

const sqrt1_2 = math.Sqrt2 / 2

var shapeNames = [...]string{"erf", "rpow", "lpow", "rexp", "lexp"}

func (s BlendShape) Valid() bool { return s >= ShapeErf && s <= ShapeLExp }

func (s BlendShape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseBlendShape accepts a shape name (case-insensitive) or its index "0".."4".
func ParseBlendShape(name string) (BlendShape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range shapeNames {
		if n == sn || n == fmt.Sprint(i) {
			return BlendShape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Blend returns the fraction of the SLD step reached at normalized depth z in [0,1].
// nu must already be clamped away from zero. Unknown shapes yield NaN.
func Blend(shape BlendShape, nu, z Real) Real {
	switch shape {
	case ShapeErf:
		num := math.Erf(nu * sqrt1_2 * (2*z - 1))
		den := 2 * math.Erf(nu*sqrt1_2)
		return num/den + 0.5
	case ShapeRPow:
		return math.Pow(z, nu)
	case ShapeLPow:
		return 1 - math.Pow(1-z, nu)
	case ShapeRExp:
		return math.Expm1(-nu*z) / math.Expm1(-nu)
	case ShapeLExp:
		return math.Expm1(nu*z) / math.Expm1(nu)
	default:
		return math.NaN()
	}
}

// clampNu applies the |nu| >= 1e-14 floor.
func clampNu(nu Real) Real { return math.Max(math.Abs(nu), minNu) }
