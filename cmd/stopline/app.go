package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"stopline/internal/config"
	"stopline/internal/diag"
	"stopline/internal/diagfmt"
	"stopline/internal/observ"
	"stopline/internal/prof"
)

// app is the per-invocation state shared by all commands.
type app struct {
	manifest *config.Manifest
	cfg      config.Config
	colorOut bool
	colorErr bool
	quiet    bool
	timings  bool
	maxDiag  int
	minSev   diag.Severity
	width    uint8 // terminal width for excerpts, 0 when not a terminal
	timer    *observ.Timer
	cleanup  func()
}

type appKey struct{}

// finalize flushes timings and tracing of the running command.
var finalize = func() {}

func appFrom(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		return a
	}
	return &app{manifest: &config.Manifest{Config: config.Default()}, cfg: config.Default(), timer: observ.NewTimer(), cleanup: func() {}}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()
	a := &app{timer: observ.NewTimer(), cleanup: func() {}}

	configPath, err := pf.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		a.manifest, err = config.Load(configPath)
	} else {
		a.manifest, _, err = config.Discover(".")
	}
	if err != nil {
		return err
	}
	a.cfg = a.manifest.Config

	colorMode := a.cfg.Output.Color
	if pf.Changed("color") {
		colorMode, _ = pf.GetString("color")
	}
	switch colorMode {
	case "on":
		a.colorOut, a.colorErr = true, true
	case "off":
		a.colorOut, a.colorErr = false, false
	case "auto", "":
		a.colorOut, a.colorErr = isTerminal(os.Stdout), isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}
	if isTerminal(os.Stdout) {
		if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && w > 0 {
			a.width = uint8(min(w, 255)) //nolint:gosec // clamped
		}
	}
	if a.quiet, err = pf.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if a.timings, err = pf.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if a.maxDiag, err = pf.GetInt("max-diagnostics"); err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	sevName := a.cfg.Output.MinSeverity
	if pf.Changed("min-severity") {
		sevName, _ = pf.GetString("min-severity")
	}
	if a.minSev, err = diag.ParseSeverity(sevName); err != nil {
		return fmt.Errorf("invalid --min-severity: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), appKey{}, a)
	cmd.SetContext(ctx)
	if a.cleanup, err = setupTracing(cmd, a.cfg.Trace); err != nil {
		return err
	}
	session, err := startProfiling(pf)
	if err != nil {
		a.cleanup()
		return err
	}
	finalize = func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
		if a.timings && !a.quiet {
			printTimings(cmd.ErrOrStderr(), a.timer)
		}
		a.cleanup()
	}
	return nil
}

func startProfiling(pf *pflag.FlagSet) (*prof.Session, error) {
	var opts prof.Options
	var err error
	if opts.CPU, err = pf.GetString("cpuprofile"); err != nil {
		return nil, err
	}
	if opts.Mem, err = pf.GetString("memprofile"); err != nil {
		return nil, err
	}
	if opts.Runtime, err = pf.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if !opts.Enabled() {
		return nil, nil
	}
	return prof.Start(opts)
}

func (a *app) prettyOpts(color bool) diagfmt.PrettyOpts {
	ctxLines := min(a.cfg.Output.Context, 127)
	return diagfmt.PrettyOpts{
		Color:     color,
		Context:   int8(ctxLines), //nolint:gosec // clamped above
		PathMode:  diagfmt.PathModeAuto,
		Width:     a.width,
		ShowNotes: true,
	}
}

// outputFormat returns the --format flag, or the configured default when unset.
func (a *app) outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && a.cfg.Output.Format != "" {
		format = a.cfg.Output.Format
	}
	return format, nil
}
