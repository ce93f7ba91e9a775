package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"stopline/internal/breakpoint"
	"stopline/internal/source"
)

// BreakpointJSON mirrors the DAP Breakpoint shape: 1-based lines, 1-based
// UTF-16 columns, end exclusive. Offsets are byte offsets.
type BreakpointJSON struct {
	Verified  bool   `json:"verified" msgpack:"verified"`
	Line      int    `json:"line,omitempty" msgpack:"line,omitempty"`
	Column    int    `json:"column,omitempty" msgpack:"column,omitempty"`
	EndLine   int    `json:"endLine,omitempty" msgpack:"endLine,omitempty"`
	EndColumn int    `json:"endColumn,omitempty" msgpack:"endColumn,omitempty"`
	Offset    uint32 `json:"offset" msgpack:"offset"`
	EndOffset uint32 `json:"endOffset" msgpack:"endOffset"`
	Text      string `json:"text,omitempty" msgpack:"text,omitempty"`
	Message   string `json:"message,omitempty" msgpack:"message,omitempty"`
}

// FileBreakpoints is the scan output of one file.
type FileBreakpoints struct {
	Path        string           `json:"path" msgpack:"path"`
	Breakpoints []BreakpointJSON `json:"breakpoints" msgpack:"breakpoints"`
	Error       string           `json:"error,omitempty" msgpack:"error,omitempty"`
}

// ScanOutput is the root of `stopline scan` machine output.
type ScanOutput struct {
	Files []FileBreakpoints `json:"files" msgpack:"files"`
	Count int               `json:"count" msgpack:"count"`
}

// BreakpointSet pairs a file with its resolved locations.
type BreakpointSet struct {
	File      *source.File
	Locations []breakpoint.Location
	Err       error
}

// MakeBreakpoint converts a resolved span of f into its DAP-like form.
func MakeBreakpoint(f *source.File, info breakpoint.SpanInfo) BreakpointJSON {
	if !info.Valid() {
		return BreakpointJSON{Verified: false, Message: "no breakpoint location"}
	}
	start := f.PositionForOffset(info.Start())
	end := f.PositionForOffset(info.End())
	return BreakpointJSON{
		Verified:  true,
		Line:      start.Line + 1,
		Column:    start.Character + 1,
		EndLine:   end.Line + 1,
		EndColumn: end.Character + 1,
		Offset:    info.Start(),
		EndOffset: info.End(),
		Text:      string(f.Content[info.Start():info.End()]),
	}
}

// BuildScanOutput converts scan results into their serialisable form.
func BuildScanOutput(sets []BreakpointSet, fs *source.FileSet, mode PathMode) ScanOutput {
	out := ScanOutput{Files: make([]FileBreakpoints, 0, len(sets))}
	for _, set := range sets {
		fb := FileBreakpoints{Breakpoints: make([]BreakpointJSON, 0, len(set.Locations))}
		if set.File != nil {
			fb.Path = formatPath(set.File, fs, mode)
			for _, loc := range set.Locations {
				fb.Breakpoints = append(fb.Breakpoints, MakeBreakpoint(set.File, breakpoint.Some(loc.Span)))
			}
		}
		if set.Err != nil {
			fb.Error = set.Err.Error()
		}
		out.Count += len(fb.Breakpoints)
		out.Files = append(out.Files, fb)
	}
	return out
}

// BreakpointsJSON writes scan results as indented JSON.
func BreakpointsJSON(w io.Writer, sets []BreakpointSet, fs *source.FileSet, mode PathMode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildScanOutput(sets, fs, mode))
}

// BreakpointsMsgpack writes scan results as a single msgpack document.
func BreakpointsMsgpack(w io.Writer, sets []BreakpointSet, fs *source.FileSet, mode PathMode) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildScanOutput(sets, fs, mode))
}

// BreakpointsPretty prints a table per file: line, range and the first line of the span text.
func BreakpointsPretty(w io.Writer, sets []BreakpointSet, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, set := range sets {
		if set.File == nil {
			continue
		}
		fmt.Fprintf(w, "%s\n", pal.path(formatPath(set.File, fs, opts.PathMode)))
		if set.Err != nil {
			fmt.Fprintf(w, "  %s %v\n", pal.err("error:"), set.Err)
		}
		if len(set.Locations) == 0 && set.Err == nil {
			fmt.Fprintf(w, "  %s\n", pal.gutter("(no breakpoint locations)"))
			continue
		}
		for _, loc := range set.Locations {
			bp := MakeBreakpoint(set.File, breakpoint.Some(loc.Span))
			rng := fmt.Sprintf("%d:%d-%d:%d", bp.Line, bp.Column, bp.EndLine, bp.EndColumn)
			fmt.Fprintf(w, "  %s %-16s %s\n", pal.gutter(fmt.Sprintf("%5d", loc.Line)), rng, truncate(firstLine(bp.Text), int(opts.Width)))
		}
	}
}

// BreakPretty renders the result of a single query with a source excerpt.
func BreakPretty(w io.Writer, f *source.File, fs *source.FileSet, offset uint32, info breakpoint.SpanInfo, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	path := pal.path(formatPath(f, fs, opts.PathMode))
	at := f.Lines.LineCol(offset)
	if !info.Valid() {
		fmt.Fprintf(w, "%s:%d:%d: %s\n", path, at.Line, at.Col, pal.warn("no breakpoint location"))
		return
	}
	bp := MakeBreakpoint(f, info)
	fmt.Fprintf(w, "%s:%d:%d: breakpoint %d:%d-%d:%d\n", path, at.Line, at.Col, bp.Line, bp.Column, bp.EndLine, bp.EndColumn)
	writeExcerpt(w, f, info.Span(), int(opts.Context), int(opts.Width), pal)
}

// BreakJSON writes a single query result.
func BreakJSON(w io.Writer, f *source.File, info breakpoint.SpanInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(MakeBreakpoint(f, info))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], " \t") + " ..."
	}
	return s
}
