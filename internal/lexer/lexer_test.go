package lexer_test

import (
	"strings"
	"testing"

	"stopline/internal/diag"
	"stopline/internal/lexer"
	"stopline/internal/source"
	"stopline/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ts", []byte(input)))
	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx.All(), bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"var", "var x = 1;", []token.Kind{token.KwVar, token.Ident, token.Assign, token.NumberLit, token.Semicolon, token.EOF}},
		{"arrow", "(a) => a", []token.Kind{token.LParen, token.Ident, token.RParen, token.FatArrow, token.Ident, token.EOF}},
		{"rest", "...xs", []token.Kind{token.DotDotDot, token.Ident, token.EOF}},
		{"shifts", "a >>>= b >>> c >> d", []token.Kind{token.Ident, token.UShrAssign, token.Ident, token.UShr, token.Ident, token.Shr, token.Ident, token.EOF}},
		{"equality", "a === b !== c", []token.Kind{token.Ident, token.EqEqEq, token.Ident, token.BangEqEq, token.Ident, token.EOF}},
		{"contextual", "declare module get", []token.Kind{token.KwDeclare, token.KwModule, token.KwGet, token.EOF}},
		{"strings", `'a' "b"`, []token.Kind{token.StringLit, token.StringLit, token.EOF}},
		{"numbers", "0x1F 1.5e3 .5", []token.Kind{token.NumberLit, token.NumberLit, token.NumberLit, token.EOF}},
		{"member", "a.b", []token.Kind{token.Ident, token.Dot, token.Ident, token.EOF}},
		{"dollar", "$el _x", []token.Kind{token.Ident, token.Ident, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lexAll(t, tt.input)
			got := kinds(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestTextIsSourceSlice(t *testing.T) {
	input := "function  foo ( ) { }"
	toks, _ := lexAll(t, input)
	for _, tok := range toks {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Fatalf("text %q does not match span %v (%q)", tok.Text, tok.Span, got)
		}
	}
}

func TestTrailingTriviaStopsAfterNewline(t *testing.T) {
	input := "a; // tail\n\n  b"
	toks, _ := lexAll(t, input)
	semi := toks[1]
	if semi.Kind != token.Semicolon {
		t.Fatalf("expected ';', got %v", semi.Kind)
	}
	full := semi.FullSpan()
	if full.End != uint32(strings.Index(input, "\n")+1) {
		t.Fatalf("trailing trivia must end after the first newline, got %v", full)
	}
	b := toks[2]
	if len(b.Leading) != 2 || b.Leading[0].Kind != token.TriviaNewline || b.Leading[1].Kind != token.TriviaSpace {
		t.Fatalf("unexpected leading trivia for b: %+v", b.Leading)
	}
}

func TestFullSpansTileTheFile(t *testing.T) {
	input := "/* head */ var x = 1; // c\n/* multi\nline */ x++;\n"
	toks, _ := lexAll(t, input)
	var next uint32
	for _, tok := range toks {
		full := tok.FullSpan()
		if full.Start != next {
			t.Fatalf("gap before %v: full span %v, expected start %d", tok.Kind, full, next)
		}
		next = full.End
	}
	if next != uint32(len(input)) {
		t.Fatalf("full spans end at %d, file length %d", next, len(input))
	}
}

func TestMultilineBlockCommentIsLeading(t *testing.T) {
	toks, _ := lexAll(t, "a /* x\ny */ b")
	if len(toks[0].Trailing) != 1 || toks[0].Trailing[0].Kind != token.TriviaSpace {
		t.Fatalf("expected only a space after a, got %+v", toks[0].Trailing)
	}
	if toks[1].Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("expected block comment before b, got %+v", toks[1].Leading)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unterminated string", `"abc`, diag.LexUnterminatedString},
		{"newline in string", "'a\nb'", diag.LexUnterminatedString},
		{"unterminated comment", "/* never", diag.LexUnterminatedBlockComment},
		{"bad exponent", "1e+", diag.LexBadNumber},
		{"unknown char", "a # b", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := lexAll(t, tt.input)
			if !bag.HasErrors() {
				t.Fatalf("expected diagnostics")
			}
			if got := bag.Items()[0].Code; got != tt.code {
				t.Fatalf("expected %v, got %v", tt.code.ID(), got.ID())
			}
		})
	}
}

func TestUnterminatedCommentReportedOnce(t *testing.T) {
	// trailing trivia of a gives the comment back, leading trivia of EOF keeps it
	toks, bag := lexAll(t, "a /* open\nstill open")
	if len(toks) != 2 || toks[1].Kind != token.EOF {
		t.Fatalf("expected a and EOF, got %v", kinds(toks))
	}
	if n := len(toks[1].Leading); n == 0 || toks[1].Leading[n-1].Kind != token.TriviaBlockComment {
		t.Fatalf("expected the comment before EOF, got %+v", toks[1].Leading)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected one unterminated comment diagnostic, got %d", bag.Len())
	}
}

func TestTokenTooLong(t *testing.T) {
	toks, bag := lexAll(t, strings.Repeat("a", (1<<16)+1)+" b")
	if toks[0].Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", toks[0].Kind)
	}
	if len(toks) != 2 || toks[1].Kind != token.EOF {
		t.Fatalf("lexer should skip to EOF after a long token, got %v", kinds(toks))
	}
	if bag.Items()[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", bag.Items()[0].Code)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("p.ts", []byte("if x")))
	lx := lexer.New(file, lexer.Options{})
	if lx.Peek().Kind != token.KwIf || lx.Next().Kind != token.KwIf {
		t.Fatalf("peek must not consume")
	}
	if lx.Next().Kind != token.Ident || lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("unexpected tail")
	}
}
