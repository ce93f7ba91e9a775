package breakpoint

import (
	"stopline/internal/ast"
	"stopline/internal/source"
)

// Location is one breakpoint of a file: the first line whose caret resolves to Span.
type Location struct {
	Line uint32
	Span source.Span
}

// ResolveLine resolves a caret placed on the first non-blank column of a 1-based line,
// which is what an editor gutter click means.
func ResolveLine(tree *ast.Tree, line uint32) (SpanInfo, error) {
	if tree == nil || tree.File == nil {
		return None(), nil
	}
	lines := tree.File.Lines
	start, ok := lines.LineStart(line)
	if !ok {
		return None(), nil
	}
	end, _ := lines.LineEnd(line)
	off := start
	for off < end && isBlank(tree.File.Content[off]) {
		off++
	}
	return Resolve(tree, off)
}

// Table lists the distinct breakpoint spans of a file in line order.
func Table(tree *ast.Tree) ([]Location, error) {
	if tree == nil || tree.File == nil || tree.IsDeclarationsOnly() {
		return nil, nil
	}
	var out []Location
	seen := make(map[source.Span]struct{})
	for line := uint32(1); line <= tree.File.Lines.LineCount(); line++ {
		info, err := ResolveLine(tree, line)
		if err != nil {
			return out, err
		}
		if !info.Valid() {
			continue
		}
		if _, dup := seen[info.Span()]; dup {
			continue
		}
		seen[info.Span()] = struct{}{}
		out = append(out, Location{Line: line, Span: info.Span()})
	}
	return out, nil
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}
