package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stopline/internal/breakpoint"
	"stopline/internal/diagfmt"
	"stopline/internal/driver"
)

var breakCmd = &cobra.Command{
	Use:   "break [flags] <file>",
	Short: "Resolve the breakpoint location at a caret",
	Long: `Resolve where a breakpoint placed at the caret would bind. The caret is
given as a byte offset (--offset), a 1-based LINE:COL position with UTF-16
columns (--pos) or a 1-based line (--line).`,
	Args: cobra.ExactArgs(1),
	RunE: runBreak,
}

func init() {
	breakCmd.Flags().Int("offset", -1, "byte offset of the caret")
	breakCmd.Flags().String("pos", "", "caret position as LINE:COL (1-based)")
	breakCmd.Flags().Int("line", 0, "1-based line, resolved like a gutter click")
	breakCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	breakCmd.MarkFlagsMutuallyExclusive("offset", "pos", "line")
	breakCmd.MarkFlagsOneRequired("offset", "pos", "line")
}

// targetFromFlags builds the caret target from exactly one of --offset, --pos, --line.
func targetFromFlags(cmd *cobra.Command) (driver.Target, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("pos"):
		pos, err := flags.GetString("pos")
		if err != nil {
			return driver.Target{}, err
		}
		return driver.ParsePos(pos)
	case flags.Changed("line"):
		line, err := flags.GetInt("line")
		if err != nil {
			return driver.Target{}, err
		}
		if line < 1 {
			return driver.Target{}, fmt.Errorf("invalid --line %d: lines are 1-based", line)
		}
		return driver.Target{Kind: driver.TargetLine, Line: uint32(line)}, nil //nolint:gosec // checked above
	default:
		offset, err := flags.GetInt("offset")
		if err != nil {
			return driver.Target{}, err
		}
		if offset < 0 {
			return driver.Target{}, fmt.Errorf("invalid --offset %d", offset)
		}
		return driver.Target{Kind: driver.TargetOffset, Offset: uint32(offset)}, nil //nolint:gosec // checked above
	}
}

func runBreak(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd)
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	target, err := targetFromFlags(cmd)
	if err != nil {
		return err
	}

	var res *driver.BreakResult
	a.timer.Measure("break", func() {
		res, err = driver.Break(cmd.Context(), args[0], target, a.maxDiag)
	})
	if err != nil {
		if errors.Is(err, breakpoint.ErrInvariant) {
			printDiagnostics(cmd, a, res.Bag, res.FileSet)
			dumpRing(cmd)
			return errReported
		}
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.BreakJSON(out, res.File, res.Info)
	} else {
		diagfmt.BreakPretty(out, res.File, res.FileSet, res.Offset, res.Info, a.prettyOpts(a.colorOut))
	}
	if err != nil {
		return err
	}
	printDiagnostics(cmd, a, res.Bag, res.FileSet)
	if res.Bag.HasErrors() {
		return errReported
	}
	return nil
}
