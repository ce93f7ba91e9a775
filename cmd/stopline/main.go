package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stopline/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "stopline",
	Short: "Breakpoint locations for TypeScript-like sources",
	Long: `stopline tells where a debugger can stop: given a caret in a source file it
returns the span of the statement or expression a breakpoint binds to.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

// errReported is returned when the command already printed its diagnostics
// and only the exit status is left to set.
var errReported = errors.New("errors reported")

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file")
	pf.String("min-severity", "info", "hide diagnostics below this severity (info|warning|error)")
	pf.String("config", "", "path to stopline.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "", "trace format (auto|text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.String("cpuprofile", "", "write a pprof CPU profile to file")
	pf.String("memprofile", "", "write a pprof heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime execution trace to file")

	rootCmd.SilenceErrors = true
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	// PostRun хуки cobra пропускает при ошибке, поэтому трейс закрываем здесь
	finalize()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "stopline: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
