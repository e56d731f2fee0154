package sldsphere

// ProfilePoint is one vertex of the radial SLD profile.
type ProfilePoint struct {
	R   Real
	SLD Real
}

// Profile samples the radial SLD profile the way Intensity discretises it:
// the start and outer edge of each uniform part, every interface sub-step and
// a solvent point past the particle at ProfileOvershoot*R. Sharp boundaries
// show up as two points at the same radius.
func (s Stack) Profile(solvent Real, steps int) []ProfilePoint {
	if len(s) == 0 {
		return nil
	}
	pts := make([]ProfilePoint, 0, 2+len(s)*(2+steps))
	r := 0.0
	for i, sh := range s {
		pts = appendStep(pts, r, sh.SLD)
		r += sh.Thickness
		pts = append(pts, ProfilePoint{R: r, SLD: sh.SLD})
		if sh.Interface == 0 || steps < 1 {
			continue
		}
		target := solvent
		if i < len(s)-1 {
			target = s[i+1].SLD
		}
		dr := sh.Interface / Real(steps)
		nu := clampNu(sh.Nu)
		for step := 1; step <= steps; step++ {
			r += dr
			frac := Blend(sh.Shape, nu, Real(step)/Real(steps))
			pts = append(pts, ProfilePoint{R: r, SLD: frac*(target-sh.SLD) + sh.SLD})
		}
	}
	pts = appendStep(pts, r, solvent)
	pts = append(pts, ProfilePoint{R: r * ProfileOvershoot, SLD: solvent})
	return pts
}

func appendStep(pts []ProfilePoint, r, sld Real) []ProfilePoint {
	if n := len(pts); n > 0 && pts[n-1].SLD == sld {
		return pts
	}
	return append(pts, ProfilePoint{R: r, SLD: sld})
}
