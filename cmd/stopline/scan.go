package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stopline/internal/diagfmt"
	"stopline/internal/driver"
	"stopline/internal/source"
	"stopline/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [path...]",
	Short: "List every breakpoint location in a set of files",
	Long: `Scan files and directories and print, for each file, the breakpoint location
of every line that has one. Directories are walked recursively; the set of
extensions comes from stopline.toml.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	scanCmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
}

func runScan(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd)
	format, err := a.outputFormat(cmd)
	if err != nil {
		return err
	}
	if err := checkFormat(format, "pretty", "json", "msgpack"); err != nil {
		return err
	}
	jobs := a.cfg.Scan.Jobs
	if cmd.Flags().Changed("jobs") {
		if jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return err
		}
		if jobs < 0 {
			return fmt.Errorf("invalid --jobs %d", jobs)
		}
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := driver.ListFiles(paths, a.cfg.Matches)
	if err != nil {
		return err
	}
	baseDir := a.manifest.Root
	if baseDir == "" {
		if baseDir, err = os.Getwd(); err != nil {
			return err
		}
	}

	opts := driver.ScanOptions{
		Jobs:           jobs,
		MaxDiagnostics: a.maxDiag,
		BaseDir:        baseDir,
		Match:          a.cfg.Matches,
		Timer:          a.timer,
		Timings:        a.timings,
	}
	showProgress, err := progressWanted(uiFlag, a.quiet, len(files), isTerminal(os.Stderr))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var (
		fs      *source.FileSet
		results []driver.ScanResult
	)
	if showProgress {
		fs, results, err = scanWithProgress(ctx, cmd, files, opts, cancel)
	} else {
		fs, results, err = driver.ScanFiles(ctx, files, opts)
	}
	if err != nil {
		return err
	}

	sets := make([]diagfmt.BreakpointSet, 0, len(results))
	failed := false
	for _, res := range results {
		if res.File == nil {
			// load error, reported through the bag below
			failed = true
		} else {
			sets = append(sets, diagfmt.BreakpointSet{File: res.File, Locations: res.Locations, Err: res.Err})
		}
		if res.Err != nil || res.Bag.HasErrors() {
			failed = true
		}
		printDiagnostics(cmd, a, res.Bag, fs)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.BreakpointsJSON(out, sets, fs, diagfmt.PathModeRelative)
	case "msgpack":
		err = diagfmt.BreakpointsMsgpack(out, sets, fs, diagfmt.PathModeRelative)
	default:
		diagfmt.BreakpointsPretty(out, sets, fs, a.prettyOpts(a.colorOut))
	}
	if err != nil {
		return err
	}
	if failed {
		return errReported
	}
	return nil
}

// progressWanted decides on the progress view for --ui auto|on|off. It is
// drawn on stderr, so auto looks at stderr only; quiet and empty scans never
// get one.
func progressWanted(mode string, quiet bool, files int, stderrTTY bool) (bool, error) {
	var on bool
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		on = stderrTTY
	case "on":
		on = true
	case "off":
		on = false
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", mode)
	}
	return on && !quiet && files > 0, nil
}

// scanWithProgress runs the scan in the background and shows the progress view on stderr.
func scanWithProgress(ctx context.Context, cmd *cobra.Command, files []string, opts driver.ScanOptions, cancel context.CancelFunc) (*source.FileSet, []driver.ScanResult, error) {
	events := make(chan driver.Event, 256)
	opts.Sink = driver.ChannelSink{Ch: events}

	var (
		fs      *source.FileSet
		results []driver.ScanResult
		scanErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(events)
		fs, results, scanErr = driver.ScanFiles(ctx, files, opts)
	}()

	uiErr := ui.RunProgress(ctx, cmd.ErrOrStderr(), "scanning", files, events, cancel)
	// вью могла закрыться раньше, воркеры не должны зависнуть на отправке
	for range events {
	}
	<-done
	if scanErr != nil {
		return fs, results, scanErr
	}
	if uiErr != nil {
		return fs, results, fmt.Errorf("progress UI: %w", uiErr)
	}
	return fs, results, nil
}
