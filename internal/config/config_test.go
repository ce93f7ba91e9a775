package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[scan]\njobs = 3\nextensions = [\"ts\", \".tsx\"]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Fatalf("expected root %q, got %q", root, m.Root)
	}
	if m.Config.Scan.Jobs != 3 {
		t.Fatalf("expected jobs 3, got %d", m.Config.Scan.Jobs)
	}
	if got := strings.Join(m.Config.Scan.Extensions, ","); got != ".ts,.tsx" {
		t.Fatalf("expected normalised extensions, got %q", got)
	}
	// untouched sections keep defaults
	if m.Config.Output.Format != "pretty" || !m.Config.Scan.SkipDeclarationFiles {
		t.Fatalf("defaults lost: %+v", m.Config)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// a stopline.toml above the temp dir would be unusual; only check defaults when absent
	if !ok && m.Config.Output.Color != "auto" {
		t.Fatalf("expected defaults, got %+v", m.Config)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"unknown key", "[scan]\nthreads = 2\n", "unknown keys"},
		{"bad format", "[output]\nformat = \"xml\"\n", "unknown format"},
		{"bad color", "[output]\ncolor = \"maybe\"\n", "auto|on|off"},
		{"bad severity", "[output]\nmin_severity = \"fatal\"\n", "min_severity"},
		{"negative jobs", "[scan]\njobs = -1\n", "jobs"},
		{"empty extensions", "[scan]\nextensions = []\n", "must not be empty"},
		{"syntax", "[scan\n", "failed to parse TOML"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("default manifest does not load: %v", err)
	}
	if m.Config.Trace.Level != "off" || m.Config.Output.Context != 1 || m.Config.Output.MinSeverity != "info" {
		t.Fatalf("unexpected config: %+v", m.Config)
	}
	if _, err := WriteDefault(dir, false); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
	if _, err := WriteDefault(dir, true); err != nil {
		t.Fatalf("force overwrite: %v", err)
	}
}

func TestMatches(t *testing.T) {
	cfg := Default()
	for path, want := range map[string]bool{
		"a.ts":      true,
		"lib.d.ts":  false,
		"a.js":      false,
		"dir/b.ts":  true,
		"README.md": false,
	} {
		if got := cfg.Matches(path); got != want {
			t.Errorf("Matches(%q) = %v, want %v", path, got, want)
		}
	}
	cfg.Scan.SkipDeclarationFiles = false
	if !cfg.Matches("lib.d.ts") {
		t.Error("expected .d.ts to match when not skipped")
	}
}
