package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"stopline/internal/config"
	"stopline/internal/diagfmt"
	"stopline/internal/driver"
	"stopline/internal/source"
)

func TestProgressWanted(t *testing.T) {
	cases := []struct {
		mode    string
		quiet   bool
		files   int
		tty     bool
		want    bool
		wantErr bool
	}{
		{mode: "", files: 3, tty: true, want: true},
		{mode: "auto", files: 3, tty: false, want: false},
		{mode: " ON ", files: 3, tty: false, want: true},
		{mode: "off", files: 3, tty: true, want: false},
		{mode: "on", quiet: true, files: 3, tty: true, want: false},
		{mode: "on", files: 0, tty: true, want: false},
		{mode: "sometimes", files: 3, wantErr: true},
	}
	for _, tc := range cases {
		got, err := progressWanted(tc.mode, tc.quiet, tc.files, tc.tty)
		if (err != nil) != tc.wantErr {
			t.Fatalf("progressWanted(%q) error = %v, wantErr %v", tc.mode, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("progressWanted(%q, quiet=%v, files=%d, tty=%v) = %v, want %v",
				tc.mode, tc.quiet, tc.files, tc.tty, got, tc.want)
		}
	}
}

func newTargetCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "break"}
	cmd.Flags().Int("offset", -1, "")
	cmd.Flags().String("pos", "", "")
	cmd.Flags().Int("line", 0, "")
	return cmd
}

func TestTargetFromFlags(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		want    driver.Target
		wantErr bool
	}{
		{"offset", []string{"--offset", "12"}, driver.Target{Kind: driver.TargetOffset, Offset: 12}, false},
		{"pos", []string{"--pos", "3:5"}, driver.Target{Kind: driver.TargetPosition, Pos: source.Position{Line: 2, Character: 4}}, false},
		{"line", []string{"--line", "7"}, driver.Target{Kind: driver.TargetLine, Line: 7}, false},
		{"zero line", []string{"--line", "0"}, driver.Target{}, true},
		{"negative offset", []string{"--offset", "-3"}, driver.Target{}, true},
		{"bad pos", []string{"--pos", "3"}, driver.Target{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newTargetCmd()
			if err := cmd.ParseFlags(tc.args); err != nil {
				t.Fatal(err)
			}
			got, err := targetFromFlags(cmd)
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		finalize()
		finalize = func() {}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBreakCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ts")
	src := "let a = 1;\nfunction f() {\n  return a;\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "--config", writeConfig(t, dir), "break", "--pos", "3:3", "--format", "json", path)
	if err != nil {
		t.Fatalf("break failed: %v", err)
	}
	var bp diagfmt.BreakpointJSON
	if err := json.Unmarshal([]byte(out), &bp); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if !bp.Verified || bp.Line != 3 || bp.Column != 3 || bp.Text != "return a" {
		t.Fatalf("unexpected breakpoint: %+v", bp)
	}
}

func TestMinSeverityFlag(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("min-severity", "info") })

	if _, err := runCLI(t, "--config", cfg, "--min-severity", "fatal", "version"); err == nil ||
		!strings.Contains(err.Error(), "min-severity") {
		t.Fatalf("expected a min-severity error, got %v", err)
	}
	if _, err := runCLI(t, "--config", cfg, "--min-severity", "warn", "version"); err != nil {
		t.Fatalf("version with --min-severity warn: %v", err)
	}
}

func TestScanCommandJSON(t *testing.T) {
	dir := t.TempDir()
	for name, src := range map[string]string{
		"a.ts":   "let a = 1;\nconsole.log(a);\n",
		"b.d.ts": "declare const b: number;\n",
		"c.js":   "var c = 1;\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	out, err := runCLI(t, "--config", writeConfig(t, dir), "scan", "--ui", "off", "--format", "json", dir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	var res diagfmt.ScanOutput
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if len(res.Files) != 1 || !strings.HasSuffix(res.Files[0].Path, "a.ts") || res.Count != 2 {
		t.Fatalf("unexpected scan output: %+v", res)
	}
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path, err := config.WriteDefault(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	return path
}
