// Package config finds and decodes stopline.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"stopline/internal/diag"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "stopline.toml"

type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
}

type ScanConfig struct {
	Extensions           []string `toml:"extensions"`
	Jobs                 int      `toml:"jobs"`
	SkipDeclarationFiles bool     `toml:"skip_declaration_files"`
}

type OutputConfig struct {
	Format      string `toml:"format"`       // pretty|json|msgpack
	Color       string `toml:"color"`        // auto|on|off
	Context     int    `toml:"context"`      // source lines shown around a breakpoint
	MinSeverity string `toml:"min_severity"` // printed diagnostics below it are dropped
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Extensions:           []string{".ts"},
			Jobs:                 0,
			SkipDeclarationFiles: true,
		},
		Output: OutputConfig{Format: "pretty", Color: "auto", Context: 1, MinSeverity: "info"},
		Trace:  TraceConfig{Level: "off", Format: "auto", Output: "-"},
	}
}

// Manifest is a decoded stopline.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Find walks up from startDir to locate stopline.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the manifest above startDir. Without one it returns
// the defaults and ok == false.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("scan", "extensions") && len(cfg.Scan.Extensions) == 0 {
		return nil, fmt.Errorf("%s: [scan].extensions must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// Validate checks enumerated values and normalises extensions to a leading dot.
func (c *Config) Validate() error {
	if c.Scan.Jobs < 0 {
		return fmt.Errorf("[scan].jobs must be >= 0, got %d", c.Scan.Jobs)
	}
	for i, ext := range c.Scan.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return fmt.Errorf("[scan].extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Scan.Extensions[i] = ext
	}
	if !slices.Contains([]string{"pretty", "json", "msgpack"}, c.Output.Format) {
		return fmt.Errorf("[output].format: unknown format %q", c.Output.Format)
	}
	if !slices.Contains([]string{"auto", "on", "off"}, c.Output.Color) {
		return fmt.Errorf("[output].color: expected auto|on|off, got %q", c.Output.Color)
	}
	if _, err := diag.ParseSeverity(c.Output.MinSeverity); err != nil {
		return fmt.Errorf("[output].min_severity: %w", err)
	}
	if c.Output.Context < 0 {
		return fmt.Errorf("[output].context must be >= 0, got %d", c.Output.Context)
	}
	return nil
}

// Matches reports whether path has one of the scan extensions. Declaration
// files are matched by their ".d.ts" suffix as a whole.
func (c *Config) Matches(path string) bool {
	if c.Scan.SkipDeclarationFiles && strings.HasSuffix(path, ".d.ts") {
		return false
	}
	for _, ext := range c.Scan.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
