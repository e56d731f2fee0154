package sldsphere

import "math"

func cube(x Real) Real { return x * x * x }

// sphJ1c is the normalized sphere kernel 3 j1(x)/x, equal to 1 at x = 0.
func sphJ1c(x Real) Real {
	if math.Abs(x) < sphJ1cCutoff {
		x2 := x * x
		return 1 + x2*(-3.0/30.0+x2*(3.0/840.0+x2*(-3.0/45360.0)))
	}
	s, c := math.Sincos(x)
	return 3 * (s/x - c) / (x * x)
}

// linearKernel is (1/x^4) * integral_0^x t^2 sin(t) dt, equal to 1/4 at x = 0.
// The closed form loses digits to cancellation for small x, so a Taylor series
// takes over below the cutoff.
func linearKernel(x Real) Real {
	if math.Abs(x) < linearKernelCutoff {
		x2 := x * x
		return 1.0/4.0 + x2*(-1.0/36.0+x2*(1.0/960.0+x2*(-1.0/50400.0+
			x2*(1.0/4354560.0+x2*(-1.0/558835200.0)))))
	}
	s, c := math.Sincos(x)
	x2 := x * x
	return (2*x*s - (x2-2)*c - 2) / (x2 * x2)
}
