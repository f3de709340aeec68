package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/matrix/internal/color"
	"github.com/born-ml/matrix/internal/config"
	"github.com/born-ml/matrix/internal/timing"
)

// app carries the resolved configuration shared by all subcommands.
type app struct {
	configPath string
	vv, v, q   bool
	colorMode  string
	precision  int

	cfg *config.Config
	log *slog.Logger
}

// printer is anything that renders itself as a grid.
type printer interface {
	Fprint(w io.Writer, precision int, useColor bool) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "matrix",
		Short:         "Load, generate and render dense 2-D tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "TOML configuration file")
	f.BoolVar(&a.vv, "vv", false, "debug logging")
	f.BoolVarP(&a.v, "verbose", "v", false, "info logging")
	f.BoolVarP(&a.q, "quiet", "q", false, "log errors only and hide timings")
	f.StringVar(&a.colorMode, "color", config.ColorAuto, "color mode: auto, always or never")
	f.IntVarP(&a.precision, "precision", "p", 0, "fractional digits when displaying floats")

	root.AddCommand(
		newVersionCmd(),
		newShowCmd(a),
		newDetCmd(a),
		newRandCmd(a),
		newDemoCmd(a),
		newVectorCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Display.Color = a.colorMode
	}
	if flags.Changed("precision") {
		cfg.Display.Precision = a.precision
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	lvl = LevelFromFlags(a.vv, a.v, a.q, lvl)

	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(a.log)
	timing.Verbose = !a.q
	a.cfg = cfg

	a.log.Debug("configuration resolved",
		"file", a.configPath,
		"precision", cfg.Display.Precision,
		"color", cfg.Display.Color,
		"level", lvl)
	return nil
}

func (a *app) render(w io.Writer, x printer) error {
	return x.Fprint(w, a.cfg.Display.Precision, a.cfg.Display.UseColor(w))
}

// paint wraps s in the escape code when color output is enabled for w.
func (a *app) paint(w io.Writer, code, s string) string {
	if !a.cfg.Display.UseColor(w) {
		return s
	}
	return code + s + color.Reset
}
