package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lukaszgryglicki/sldsphere/internal/sldsphere"
)

var (
	verbose bool
	workers int

	datOut string
	rawOut string
	pngOut string
	pngW   int
	pngH   int
	strict bool

	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sldsphere",
		Short: "Small-angle scattering from spheres with graded SLD shells",
		Long: `sldsphere computes I(q) for a spherical particle made of uniform shells
joined by graded interfaces (erf, rpow, lpow, rexp, lexp blend profiles).

The model is read from a .json, .yaml/.yml or .toml file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose || os.Getenv("DEBUG") != "" {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			sldsphere.SetLogger(logger)
			sldsphere.Workers = workers
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().IntVar(&workers, "workers", 0, "curve evaluation goroutines (0 = number of CPUs)")

	iqCmd := &cobra.Command{
		Use:   "iq [config]",
		Short: "Compute the I(q) curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runIq,
	}
	iqCmd.Flags().StringVarP(&datOut, "out", "o", "", "write the q/I(q) table here instead of stdout")
	iqCmd.Flags().StringVar(&rawOut, "raw", "", "also write a little-endian float64 raw curve")
	iqCmd.Flags().StringVar(&pngOut, "png", "", "also write a 16-bit log-log plot")
	iqCmd.Flags().IntVar(&pngW, "png-width", 800, "plot width in pixels")
	iqCmd.Flags().IntVar(&pngH, "png-height", 600, "plot height in pixels")
	iqCmd.Flags().BoolVar(&strict, "strict", false, "fail when the curve contains NaN or Inf")

	profileCmd := &cobra.Command{
		Use:   "profile [config]",
		Short: "Print the radial SLD profile (r, sld)",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}

	volumeCmd := &cobra.Command{
		Use:   "volume [config]",
		Short: "Print the particle volume and effective radius",
		Args:  cobra.ExactArgs(1),
		RunE:  runVolume,
	}

	root.AddCommand(iqCmd, profileCmd, volumeCmd)
	return root
}

func runIq(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sldsphere.Run(ctx, args[0], sldsphere.RunOptions{
		DatOut: datOut,
		RawOut: rawOut,
		PNGOut: pngOut,
		PNGW:   pngW,
		PNGH:   pngH,
		Strict: strict,
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	logger.Debug("iq done", zap.String("run", res.RunID), zap.Int("points", len(res.Q)))
	return nil
}

func loadModel(path string) (*sldsphere.Model, error) {
	cfg, err := sldsphere.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	m, _, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# r(Ang) sld(1e-6/Ang^2)")
	for _, p := range m.Stack.Profile(m.SolventSLD, m.Steps) {
		fmt.Fprintf(out, "%.6f %.6f\n", p.R, p.SLD)
	}
	return nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	m, err := loadModel(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "volume %.10g\n", m.Stack.Volume())
	fmt.Fprintf(out, "radius %.10g\n", m.Stack.TotalRadius())
	return nil
}

func main() { os.Exit(run()) }

func run() int {
	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
