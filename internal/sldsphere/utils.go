package sldsphere

import (
	"fmt"
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// CheckFinite reports the first NaN or Inf in values.
func CheckFinite(values []Real) error {
	for i, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%w: value #%d is %g", ErrNonFinite, i, v)
		}
	}
	return nil
}
