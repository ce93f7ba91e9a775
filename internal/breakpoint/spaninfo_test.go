package breakpoint

import (
	"testing"

	"stopline/internal/ast"
	"stopline/internal/lexer"
	"stopline/internal/source"
)

// buildArgs builds "x(a, b);" by hand, marking a as reused from an earlier tree.
func buildArgs(t *testing.T) (*ast.Tree, map[string]ast.ElementID) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("args.ts", []byte("x(a, b);")))
	toks := lexer.New(file, lexer.Options{}).All()
	b := ast.NewBuilder(file, 0)
	ids := make([]ast.ElementID, len(toks))
	for i, tok := range toks {
		ids[i] = b.Token(tok)
	}
	// x ( a , b ) ; EOF
	b.MarkShared(ids[2])
	items := b.SeparatedList(ids[2], ids[3], ids[4])
	args := b.Node(ast.KindArgumentList, ids[1], items, ids[5])
	call := b.Node(ast.KindInvocationExpression, ids[0], args)
	stmt := b.Node(ast.KindExpressionStatement, call, ids[6])
	tree := b.Finish(b.Node(ast.KindSourceUnit, b.List(stmt), ids[7]))
	return tree, map[string]ast.ElementID{"a": ids[2], ",": ids[3], "b": ids[4], "items": items}
}

func TestCreateSpanExcludesShared(t *testing.T) {
	tree, ids := buildArgs(t)
	r := newResolver(tree, tree.File.Lines, 1)
	text := func(info SpanInfo) string {
		if !info.Valid() {
			return ""
		}
		return string(tree.File.Content[info.Start():info.End()])
	}
	tests := []struct {
		name     string
		children []ast.ElementID
		want     string
	}{
		{"shared first child skipped", []ast.ElementID{ids["a"], ids[","], ids["b"]}, ", b"},
		{"only shared candidate kept", []ast.ElementID{ids["a"]}, "a"},
		{"no children uses parent", nil, "a, b"},
		{"absent children use parent", []ast.ElementID{ast.NoElementID}, "a, b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text(r.createSpan(ids["items"], tt.children...)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSpanInfoZeroIsNone(t *testing.T) {
	var info SpanInfo
	if info.Valid() || info != None() {
		t.Fatalf("expected zero SpanInfo to be none, got %v", info)
	}
	some := Some(source.Span{Start: 2, End: 5})
	if !some.Valid() || some.Start() != 2 || some.End() != 5 || some.String() != "2..5" {
		t.Fatalf("expected 2..5, got %v", some)
	}
}
