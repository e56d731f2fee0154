package sldsphere

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Model is a layered sphere in solvent together with the instrument-side
// scale and background.
type Model struct {
	Stack      Stack
	SolventSLD Real
	Steps      int
	Scale      Real
	Background Real
}

// NewModel returns a model with default steps, scale and background.
func NewModel(stack Stack, solvent Real) *Model {
	return &Model{
		Stack:      stack,
		SolventSLD: solvent,
		Steps:      Steps,
		Scale:      Scale,
		Background: Background,
	}
}

func (m *Model) Validate() error {
	if err := m.Stack.Validate(); err != nil {
		return err
	}
	if m.Steps < 1 {
		return fmt.Errorf("%w: steps must be >= 1, got %d", ErrInvalidModel, m.Steps)
	}
	if !isFinite(m.SolventSLD) || !isFinite(m.Scale) || !isFinite(m.Background) {
		return fmt.Errorf("%w: solvent=%g scale=%g background=%g", ErrInvalidModel, m.SolventSLD, m.Scale, m.Background)
	}
	return nil
}

// Iq is the volume-normalised intensity scale*I(q)/V + background.
// A zero-volume particle is normalised by 1.
func (m *Model) Iq(q Real) Real {
	v := m.Stack.Volume()
	if v == 0 {
		v = 1
	}
	return m.Scale*Intensity(q, m.Stack, m.SolventSLD, m.Steps)/v + m.Background
}

// Curve evaluates Iq for every q. Work is split in contiguous chunks, one per
// worker; each worker owns its slice range so no locking is needed.
func (m *Model) Curve(ctx context.Context, qs []Real) ([]Real, error) {
	out := make([]Real, len(qs))
	if len(qs) == 0 {
		return out, nil
	}
	workers := Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(qs) {
		workers = len(qs)
	}

	g, gctx := errgroup.WithContext(ctx)
	per, rem := len(qs)/workers, len(qs)%workers
	start := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		lo, hi := start, start+n
		start = hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = m.Iq(qs[i])
				if !isFinite(out[i]) {
					DebugLogOnce("non-finite intensity at q=%g", qs[i])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	Logger.Debug("curve evaluated",
		zap.Int("points", len(qs)),
		zap.Int("workers", workers),
		zap.Int("shells", len(m.Stack)),
		zap.Int("steps", m.Steps))
	return out, nil
}
