package main

import (
	"github.com/spf13/cobra"

	"stopline/internal/diagfmt"
	"stopline/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd)
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}

	var res *driver.ParseResult
	a.timer.Measure("parse", func() {
		res, err = driver.Parse(args[0], a.maxDiag)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTreeJSON(out, res.Tree)
	} else {
		err = res.Tree.Dump(out)
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
