package token

import (
	"stopline/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// FullSpan covers the token together with its leading and trailing trivia.
func (t Token) FullSpan() source.Span {
	sp := t.Span
	if len(t.Leading) > 0 {
		sp.Start = t.Leading[0].Span.Start
	}
	if n := len(t.Trailing); n > 0 {
		sp.End = t.Trailing[n-1].Span.End
	}
	return sp
}

// IsLiteral reports whether the token is a numeric, string, boolean or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token can serve as an identifier in expression position.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind.IsContextualKeyword() }

// IsIdentifierName reports whether the token can name a property or member (any word).
func (t Token) IsIdentifierName() bool { return t.Kind == Ident || t.Kind.IsKeyword() }
