package breakpoint_test

import (
	"strings"
	"testing"

	"stopline/internal/breakpoint"
)

const nestingDepth = 4000

func nestedParens(n int) string {
	return "var x = " + strings.Repeat("(", n) + "a" + strings.Repeat(")", n) + ";\n"
}

func nestedBlocks(n int) string {
	return strings.Repeat("{", n) + "\nf();\n" + strings.Repeat("}", n) + "\n"
}

func commaChain(n int) string {
	return "for (" + strings.Repeat("a, ", n) + "a; ; ) {\n}\n"
}

// Resolution over deeply nested input must stay linear in depth per caret.
// A quadratic walk makes this test run for minutes.
func TestResolveDeepNesting(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		caret string
		want  string
	}{
		{"parens", nestedParens(nestingDepth), "var", strings.TrimSuffix(nestedParens(nestingDepth), ";\n")},
		{"blocks", nestedBlocks(nestingDepth), "f", "f()"},
		{"comma chain", commaChain(nestingDepth), "for", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseTree(t, "deep.ts", tt.src)
			if got := textOf(tt.src, mustResolve(t, tree, caretAt(t, tt.src, tt.caret))); got != tt.want {
				t.Fatalf("expected %.20q..., got %.20q...", tt.want, got)
			}
			for off := 0; off <= len(tt.src); off += 7 {
				info := mustResolve(t, tree, uint32(off))
				if info.Valid() && int(info.End()) > len(tt.src) {
					t.Fatalf("span %v past end of file", info)
				}
			}
		})
	}
}

func TestFindTokenMatchesLinearScan(t *testing.T) {
	for _, src := range []string{sampleProgram, nestedParens(50), "", "  \n// only trivia\n"} {
		tree := parseTree(t, "scan.ts", src)
		toks := tree.Tokens()
		for off := uint32(0); off <= uint32(len(src))+2; off++ {
			want := toks[len(toks)-1]
			for _, id := range toks {
				if tok, _ := tree.Token(id); tok.FullSpan().End > off {
					want = id
					break
				}
			}
			if got := breakpoint.FindToken(tree, off); got != want {
				t.Fatalf("offset %d in %q: expected token %v, got %v", off, src, want, got)
			}
		}
	}
}

func BenchmarkResolveDeep(b *testing.B) {
	src := nestedParens(nestingDepth)
	tree := parseTree(b, "deep.ts", src)
	caret := uint32(strings.Index(src, "a"))
	b.ResetTimer()
	for range b.N {
		if _, err := breakpoint.Resolve(tree, caret); err != nil {
			b.Fatal(err)
		}
	}
}
