package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"stopline/internal/breakpoint"
	"stopline/internal/diag"
	"stopline/internal/source"
	"stopline/internal/trace"
)

// TargetKind selects how a breakpoint query addresses the file.
type TargetKind uint8

const (
	TargetOffset   TargetKind = iota // byte offset
	TargetPosition                   // editor position, 0-based line and UTF-16 column
	TargetLine                       // gutter click on a 1-based line
)

// Target is where the user placed the caret.
type Target struct {
	Kind   TargetKind
	Offset uint32
	Pos    source.Position
	Line   uint32
}

func (t Target) String() string {
	switch t.Kind {
	case TargetPosition:
		return fmt.Sprintf("pos %d:%d", t.Pos.Line+1, t.Pos.Character+1)
	case TargetLine:
		return fmt.Sprintf("line %d", t.Line)
	default:
		return fmt.Sprintf("offset %d", t.Offset)
	}
}

// ParsePos parses a 1-based "LINE:COL" into a position target.
func ParsePos(s string) (Target, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return Target{}, fmt.Errorf("invalid position %q: expected LINE:COL", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return Target{}, fmt.Errorf("invalid line in %q", s)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return Target{}, fmt.Errorf("invalid column in %q", s)
	}
	return Target{Kind: TargetPosition, Pos: source.Position{Line: line - 1, Character: col - 1}}, nil
}

type BreakResult struct {
	*ParseResult
	Target Target
	Offset uint32 // caret offset the query resolved at
	Info   breakpoint.SpanInfo
}

// Break parses path and resolves the breakpoint for target.
func Break(ctx context.Context, path string, target Target, maxDiagnostics int) (*BreakResult, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePhase, "break", trace.ParentSpan(ctx))
	defer span.End("")

	res, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	out := &BreakResult{ParseResult: res, Target: target}
	if res.Tree.IsDeclarationsOnly() {
		res.Bag.Add(diag.New(diag.SevInfo, diag.BrkDeclarationFile,
			source.Span{File: res.File.ID}, "declaration files have no breakpoint locations"))
	}

	out.Offset, out.Info, err = resolveTarget(res, target)
	trace.Point(tr, trace.ScopeQuery, "resolve", fmt.Sprintf("%v -> %v", target, out.Info), span.ID())
	if err != nil {
		var inv *breakpoint.InvariantError
		if errors.As(err, &inv) {
			res.Bag.Add(diag.NewError(diag.BrkInvariant, source.Span{File: res.File.ID, Start: out.Offset, End: out.Offset}, inv.Error()))
		}
		return out, err
	}
	return out, nil
}

func resolveTarget(res *ParseResult, target Target) (uint32, breakpoint.SpanInfo, error) {
	file := res.File
	size := uint32(len(file.Content))
	switch target.Kind {
	case TargetOffset:
		if target.Offset > size {
			return target.Offset, breakpoint.None(), fmt.Errorf("offset %d is past the end of %s (%d bytes)", target.Offset, file.Path, size)
		}
		info, err := breakpoint.Resolve(res.Tree, target.Offset)
		return target.Offset, info, err
	case TargetPosition:
		off := file.OffsetForPosition(target.Pos)
		info, err := breakpoint.Resolve(res.Tree, off)
		return off, info, err
	case TargetLine:
		start, ok := file.Lines.LineStart(target.Line)
		if !ok {
			return size, breakpoint.None(), fmt.Errorf("line %d is outside %s (%d lines)", target.Line, file.Path, file.Lines.LineCount())
		}
		info, err := breakpoint.ResolveLine(res.Tree, target.Line)
		return start, info, err
	default:
		return 0, breakpoint.None(), fmt.Errorf("unknown target kind %d", target.Kind)
	}
}
