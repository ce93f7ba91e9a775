package fuzztests

import (
	"context"
	"testing"
	"time"

	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/lexer"
	"stopline/internal/parser"
	"stopline/internal/source"
	"stopline/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parseInput(input []byte) *ast.Tree {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.ts", input))
	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return parser.ParseFile(lx, parser.Options{Reporter: reporter, MaxErrors: 128}).Tree
}

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		tree := parseInput(input)
		if err := testkit.CheckTree(tree); err != nil {
			t.Fatalf("tree invariants broken for %q:\n%v", truncateForLog(input, 200), err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("function f() { { { { } } } }"))
	f.Add([]byte("for (var i = 0 i < 10 i++) {}"))
	f.Add([]byte("class C { m( }"))
	f.Add([]byte("a ? b : c ? d"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = parseInput(input)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}
