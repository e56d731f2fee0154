package sldsphere

// ShellAmplitude is the scattering amplitude of a solid sphere of radius r whose
// SLD runs linearly as contrast + slope*rho for rho in [0, r]. contrast is the
// SLD extrapolated to the centre, not the SLD at r.
//
// Annular shells are the difference of two calls with the same contrast/slope
// at the outer and inner radius.
func ShellAmplitude(q, r, contrast, slope Real) Real {
	qr := q * r
	bes := sphJ1c(qr)
	fun := 3 * r * linearKernel(qr)
	vol := fourPiThirds * cube(r)
	return vol * (bes*contrast + fun*slope)
}

// sphereAmplitude is ShellAmplitude with zero slope: a uniform sphere.
func sphereAmplitude(q, r, sld Real) Real {
	return fourPiThirds * cube(r) * sld * sphJ1c(q*r)
}
