package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"stopline/internal/breakpoint"
	"stopline/internal/lexer"
	"stopline/internal/parser"
	"stopline/internal/source"
)

const scanSource = "var a = 1;\nfunction f(x) {\n    return x + \"é\".length;\n}\n"

func scanSet(t *testing.T) (*source.FileSet, []BreakpointSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("scan.ts", []byte(scanSource)))
	res := parser.ParseFile(lexer.New(file, lexer.Options{}), parser.Options{})
	locs, err := breakpoint.Table(res.Tree)
	if err != nil {
		t.Fatal(err)
	}
	return fs, []BreakpointSet{{File: file, Locations: locs}}
}

func TestBreakpointsJSON(t *testing.T) {
	fs, sets := scanSet(t)
	var buf bytes.Buffer
	if err := BreakpointsJSON(&buf, sets, fs, PathModeBasename); err != nil {
		t.Fatal(err)
	}
	var out ScanOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Files) != 1 || out.Files[0].Path != "scan.ts" {
		t.Fatalf("unexpected files: %+v", out.Files)
	}
	bps := out.Files[0].Breakpoints
	if out.Count != len(bps) || len(bps) < 2 {
		t.Fatalf("expected at least two breakpoints, got %+v", out)
	}
	first := bps[0]
	if !first.Verified || first.Line != 1 || first.Column != 1 || first.Text != "var a = 1" {
		t.Fatalf("unexpected first breakpoint: %+v", first)
	}
	for _, bp := range bps {
		if bp.Text == "return x + \"é\".length" {
			// é is one UTF-16 unit but two bytes
			if bp.Line != 3 || bp.Column != 5 || bp.EndColumn != 5+len([]rune(bp.Text)) {
				t.Fatalf("unexpected columns: %+v", bp)
			}
			return
		}
	}
	t.Fatalf("return statement missing: %+v", bps)
}

func TestBreakpointsMsgpack(t *testing.T) {
	fs, sets := scanSet(t)
	var buf bytes.Buffer
	if err := BreakpointsMsgpack(&buf, sets, fs, PathModeBasename); err != nil {
		t.Fatal(err)
	}
	var out ScanOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	want := BuildScanOutput(sets, fs, PathModeBasename)
	if out.Count != want.Count || len(out.Files) != 1 || out.Files[0].Breakpoints[0] != want.Files[0].Breakpoints[0] {
		t.Fatalf("msgpack output differs:\n got %+v\nwant %+v", out, want)
	}
}

func TestBreakpointsPretty(t *testing.T) {
	fs, sets := scanSet(t)
	var buf bytes.Buffer
	BreakpointsPretty(&buf, sets, fs, PrettyOpts{PathMode: PathModeBasename})
	out := buf.String()
	for _, want := range []string{"scan.ts\n", "1:1-1:10", "var a = 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestBreakPrettyNone(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("n.ts", []byte("interface I { x: number; }\n")))
	var buf bytes.Buffer
	BreakPretty(&buf, file, fs, 3, breakpoint.None(), PrettyOpts{PathMode: PathModeBasename})
	if got := strings.TrimSpace(buf.String()); got != "n.ts:1:4: no breakpoint location" {
		t.Fatalf("unexpected output %q", got)
	}

	buf.Reset()
	if err := BreakJSON(&buf, file, breakpoint.None()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"verified": false`) {
		t.Fatalf("expected unverified breakpoint, got %s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	for _, tc := range []struct {
		in    string
		width int
		want  string
	}{
		{"short", 0, "short"},
		{"short", 10, "short"},
		{"a long line of text", 10, "a long ..."},
		{"日本語テキスト", 7, "日本..."},
		{"abc", 2, "ab"},
	} {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
