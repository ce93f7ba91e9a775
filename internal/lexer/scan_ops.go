package lexer

import (
	"stopline/internal/diag"
	"stopline/internal/token"
)

// multiOps lists operators longer than one byte, longest first, so the first
// match is the greedy one.
var multiOps = []struct {
	text string
	kind token.Kind
}{
	{">>>=", token.UShrAssign},
	{">>>", token.UShr},
	{"===", token.EqEqEq},
	{"!==", token.BangEqEq},
	{"...", token.DotDotDot},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"=>", token.FatArrow},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
}

var singleOps = [utf8RuneSelf]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'%': token.Percent, '=': token.Assign, '!': token.Bang, '~': token.Tilde,
	'<': token.Lt, '>': token.Gt, '&': token.Amp, '|': token.Pipe,
	'^': token.Caret, '?': token.Question, ':': token.Colon, ';': token.Semicolon,
	',': token.Comma, '.': token.Dot, '(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace, '[': token.LBracket, ']': token.RBracket,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	for _, op := range multiOps {
		if lx.cursor.EatString(op.text) {
			return emit(op.kind)
		}
	}
	if b := lx.cursor.Peek(); b < utf8RuneSelf && singleOps[b] != token.Invalid {
		lx.cursor.Bump()
		return emit(singleOps[b])
	}

	// неизвестный символ: съедаем всю UTF-8 последовательность
	lx.cursor.BumpRune()
	if lx.cursor.Off == uint32(start) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
