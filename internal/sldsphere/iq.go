package sldsphere

// amplitude threads the running scattering amplitude and radius outwards
// through the stack.
type amplitude struct {
	f Real // accumulated amplitude
	r Real // current radius
}

// uniform adds a constant-SLD shell of the given thickness. At r = 0 the inner
// term vanishes (r^3 = 0), so the core needs no special case.
func (a *amplitude) uniform(q, sld, thickness Real) {
	a.f -= sphereAmplitude(q, a.r, sld)
	a.r += thickness
	a.f += sphereAmplitude(q, a.r, sld)
}

// ramp adds a sub-shell of width dr whose SLD runs linearly from sldIn to sldOut.
func (a *amplitude) ramp(q, sldIn, sldOut, dr Real) {
	slope := (sldOut - sldIn) / dr
	contrast := sldIn - slope*a.r
	a.f -= ShellAmplitude(q, a.r, contrast, slope)
	a.r += dr
	a.f += ShellAmplitude(q, a.r, contrast, slope)
}

// interfaceRamp walks the graded region after shell sh, approximating the blend
// profile towards target with steps linear segments.
func (a *amplitude) interfaceRamp(q Real, sh Shell, target Real, steps int) {
	dr := sh.Interface / Real(steps)
	// the per-step slope is undefined for a zero-width interface
	if dr == 0 {
		return
	}
	delta := target - sh.SLD
	nu := clampNu(sh.Nu)
	sldIn := sh.SLD
	for step := 1; step <= steps; step++ {
		z := Real(step) / Real(steps)
		sldOut := Blend(sh.Shape, nu, z)*delta + sh.SLD
		a.ramp(q, sldIn, sldOut, dr)
		sldIn = sldOut
	}
}

// Intensity returns I(q) for the layered sphere in solvent, before scale,
// background or volume normalisation. Unknown blend shapes on a non-zero
// interface give NaN.
func Intensity(q Real, stack Stack, solvent Real, steps int) Real {
	var a amplitude
	for i, sh := range stack {
		a.uniform(q, sh.SLD, sh.Thickness)
		target := solvent
		if i < len(stack)-1 {
			target = stack[i+1].SLD
		}
		a.interfaceRamp(q, sh, target, steps)
	}
	// solvent fills everything outside the particle
	a.f -= sphereAmplitude(q, a.r, solvent)
	return a.f * a.f * intensityUnits
}

// Volume is the particle volume, see Stack.Volume.
func Volume(stack Stack) Real { return stack.Volume() }
