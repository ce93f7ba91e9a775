package lexer

import (
	"stopline/internal/diag"
	"stopline/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - пробелы и табы коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (если не закрыта, репорт и обрезаем на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch {
		case lx.cursor.SkipSpaces():
			lx.hold = append(lx.hold, lx.trivia(token.TriviaSpace, start))
		case lx.cursor.SkipNewlines():
			lx.hold = append(lx.hold, lx.trivia(token.TriviaNewline, start))
		default:
			tr, _, ok := lx.scanComment()
			if !ok {
				return
			}
			lx.hold = append(lx.hold, tr)
		}
	}
}

// collectTrailingTrivia takes whitespace and comments on the token's line,
// up to and including the first newline. A block comment that spans lines stays
// with the next token.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch {
		case lx.cursor.SkipSpaces():
			out = append(out, lx.trivia(token.TriviaSpace, start))
		case lx.cursor.Eat('\n'):
			return append(out, lx.trivia(token.TriviaNewline, start))
		default:
			tr, multiline, ok := lx.scanComment()
			if !ok {
				return out
			}
			if multiline {
				lx.cursor.Reset(start)
				return out
			}
			out = append(out, tr)
		}
	}
	return out
}

func (lx *Lexer) trivia(kind token.TriviaKind, start Mark) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanComment reads "//..." or "/*...*/"; on anything else the cursor is left untouched.
// An unterminated block comment is reported once, when it is finally kept as trivia.
func (lx *Lexer) scanComment() (tr token.Trivia, multiline, ok bool) {
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.EatString("//"):
		lx.cursor.SkipLine()
		return lx.trivia(token.TriviaLineComment, start), false, true
	case lx.cursor.EatString("/*"):
		closed, multiline := lx.cursor.SkipBlockComment()
		tr := lx.trivia(token.TriviaBlockComment, start)
		if !closed && !lx.reportedOpenComment {
			lx.reportedOpenComment = true
			lx.errLex(diag.LexUnterminatedBlockComment, tr.Span, "unterminated block comment")
		}
		return tr, multiline, true
	}
	return token.Trivia{}, false, false
}
