package sldsphere

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunOptions selects the outputs of Run. Empty paths are skipped; the .dat
// table goes to Stdout when DatOut is empty and Stdout is set.
type RunOptions struct {
	DatOut string
	RawOut string
	PNGOut string
	PNGW   int
	PNGH   int
	Strict bool // fail on NaN/Inf intensities instead of warning
	Stdout io.Writer
}

type Result struct {
	RunID string
	Model *Model
	Q     []Real
	Iq    []Real
}

// Run loads the model file, evaluates the I(q) curve and writes the requested outputs.
func Run(ctx context.Context, cfgPath string, opts RunOptions) (*Result, error) {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	m, qs, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, err)
	}
	res := &Result{RunID: uuid.NewString(), Model: m, Q: qs}
	log := Logger.With(zap.String("run", res.RunID))

	start := time.Now()
	res.Iq, err = m.Curve(ctx, qs)
	if err != nil {
		return nil, err
	}
	log.Info("curve computed",
		zap.Int("points", len(qs)),
		zap.Float64("radius", m.Stack.TotalRadius()),
		zap.Float64("volume", m.Stack.Volume()),
		zap.Duration("elapsed", time.Since(start)))

	if err := CheckFinite(res.Iq); err != nil {
		if opts.Strict {
			return nil, err
		}
		log.Warn("curve contains non-finite values", zap.Error(err))
	}

	header := []string{
		"run " + res.RunID,
		"config " + cfgPath,
		fmt.Sprintf("shells=%d steps=%d solvent=%g scale=%g background=%g",
			len(m.Stack), m.Steps, m.SolventSLD, m.Scale, m.Background),
		"q(1/Ang) I(q)(1/cm)",
	}
	switch {
	case opts.DatOut != "":
		if err := writeDatFile(opts.DatOut, header, qs, res.Iq); err != nil {
			return nil, err
		}
		log.Debug("saved dat", zap.String("path", opts.DatOut))
	case opts.Stdout != nil:
		if err := WriteDat(opts.Stdout, header, qs, res.Iq); err != nil {
			return nil, err
		}
	}
	if opts.RawOut != "" {
		if err := SaveRawCurve64(opts.RawOut, qs, res.Iq); err != nil {
			return nil, err
		}
		log.Debug("saved raw curve", zap.String("path", opts.RawOut))
	}
	if opts.PNGOut != "" {
		w, h := opts.PNGW, opts.PNGH
		if w <= 0 {
			w = 800
		}
		if h <= 0 {
			h = 600
		}
		if err := SavePlotPNG16(opts.PNGOut, qs, res.Iq, w, h); err != nil {
			return nil, err
		}
		log.Debug("saved plot", zap.String("path", opts.PNGOut))
	}
	return res, nil
}

func writeDatFile(path string, header []string, q, iq []Real) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDat(f, header, q, iq); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
