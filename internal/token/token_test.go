package token_test

import (
	"testing"

	"stopline/internal/source"
	"stopline/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want token.Kind
		ok   bool
	}{
		{"function", token.KwFunction, true},
		{"declare", token.KwDeclare, true},
		{"static", token.KwStatic, true},
		{"Function", token.Invalid, false},
		{"foo", token.Invalid, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.text)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKeyword(%q): expected (%v,%v), got (%v,%v)", tt.text, tt.want, tt.ok, got, ok)
		}
	}
}

func TestContextualKeywordsAreIdentifiers(t *testing.T) {
	for _, k := range []token.Kind{token.KwGet, token.KwSet, token.KwModule, token.KwRequire, token.KwDeclare} {
		if !(token.Token{Kind: k}).IsIdent() {
			t.Errorf("%v should be usable as an identifier", k)
		}
	}
	for _, k := range []token.Kind{token.KwVar, token.KwIf, token.KwFunction} {
		if (token.Token{Kind: k}).IsIdent() {
			t.Errorf("%v must not be usable as an identifier", k)
		}
		if !(token.Token{Kind: k}).IsIdentifierName() {
			t.Errorf("%v should be a valid property name", k)
		}
	}
}

func TestFullSpanIncludesTrivia(t *testing.T) {
	tok := token.Token{
		Kind:     token.Ident,
		Span:     source.Span{Start: 4, End: 7},
		Leading:  []token.Trivia{{Kind: token.TriviaSpace, Span: source.Span{Start: 2, End: 4}}},
		Trailing: []token.Trivia{{Kind: token.TriviaNewline, Span: source.Span{Start: 7, End: 8}}},
	}
	if got := tok.FullSpan(); got.Start != 2 || got.End != 8 {
		t.Fatalf("expected 2-8, got %v", got)
	}
}

func TestKindString(t *testing.T) {
	if token.UShrAssign.String() != ">>>=" {
		t.Fatalf("unexpected name %q", token.UShrAssign.String())
	}
	if token.KwWith.String() != "with" {
		t.Fatalf("unexpected name %q", token.KwWith.String())
	}
}
