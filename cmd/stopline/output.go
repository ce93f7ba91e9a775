package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"stopline/internal/diag"
	"stopline/internal/diagfmt"
	"stopline/internal/observ"
	"stopline/internal/source"
)

// printDiagnostics writes bag to stderr, minus anything below --min-severity.
// Quiet mode prints one line per diagnostic and only when there are errors.
func printDiagnostics(cmd *cobra.Command, a *app, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil {
		return
	}
	bag.DropBelow(a.minSev)
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	bag.Dedup()
	if a.quiet {
		if bag.HasErrors() {
			fmt.Fprintln(cmd.ErrOrStderr(), diag.FormatShortDiagnostics(bag.Items(), fs, false))
		}
		return
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, a.prettyOpts(a.colorErr))
}

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil || len(timer.Report().Phases) == 0 {
		return
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		panic(err)
	}
}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q", format)
}
