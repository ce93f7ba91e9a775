package main

import (
	"github.com/spf13/cobra"

	"stopline/internal/diagfmt"
	"stopline/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd)
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}

	var res *driver.TokenizeResult
	a.timer.Measure("tokenize", func() {
		res, err = driver.Tokenize(args[0], a.maxDiag)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, res.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, res.Tokens, res.FileSet)
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
