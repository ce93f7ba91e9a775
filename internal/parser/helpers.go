package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/source"
	"stopline/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

// peekAt смотрит на n токенов вперёд; за концом потока всегда EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	k := p.peek().Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *Parser) atIdent() bool {
	return p.peek().IsIdent()
}

// advance: съедает текущий токен и превращает его в элемент дерева.
// EOF не сдвигает позицию.
func (p *Parser) advance() ast.ElementID {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	if len(p.pending) > 0 {
		leading := make([]token.Trivia, 0, len(p.pending)+len(tok.Leading))
		leading = append(leading, p.pending...)
		tok.Leading = append(leading, tok.Leading...)
		p.pending = nil
	}
	return p.b.Token(tok)
}

// skip убирает текущий токен из дерева: он становится trivia следующего токена.
func (p *Parser) skip() {
	tok := p.toks[p.pos]
	if tok.Kind == token.EOF {
		return
	}
	p.pos++
	p.pending = append(p.pending, tok.Leading...)
	p.pending = append(p.pending, token.Trivia{Kind: token.TriviaSkipped, Span: tok.Span, Text: tok.Text})
	p.pending = append(p.pending, tok.Trailing...)
}

func (p *Parser) skipUnexpected(code diag.Code, msg string) {
	p.err(code, msg+" '"+p.peek().Text+"'")
	p.skip()
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем NoElementID.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) ast.ElementID {
	if p.at(k) {
		return p.advance()
	}
	p.err(code, msg)
	return ast.NoElementID
}

// optional съедает токен, если он есть.
func (p *Parser) optional(k token.Kind) ast.ElementID {
	if p.at(k) {
		return p.advance()
	}
	return ast.NoElementID
}

// expectIdent accepts identifiers and contextual keywords.
func (p *Parser) expectIdent() ast.ElementID {
	if p.atIdent() {
		return p.advance()
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got '"+p.peek().Text+"'")
	return ast.NoElementID
}

// expectPropertyName accepts any word, string or number as a member name.
func (p *Parser) expectPropertyName() ast.ElementID {
	tok := p.peek()
	if tok.IsIdentifierName() || tok.Kind == token.StringLit || tok.Kind == token.NumberLit {
		return p.advance()
	}
	p.err(diag.SynExpectIdentifier, "expected property name, got '"+tok.Text+"'")
	return ast.NoElementID
}

// newlineBefore reports whether a line break separates the previous token from the current one.
func (p *Parser) newlineBefore() bool {
	for _, tr := range p.peek().Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
		if tr.Kind == token.TriviaBlockComment && containsNewline(tr.Text) {
			return true
		}
	}
	if p.pos == 0 {
		return false
	}
	prev := p.toks[p.pos-1]
	n := len(prev.Trailing)
	return n > 0 && prev.Trailing[n-1].Kind == token.TriviaNewline
}

// semicolon съедает ';' или принимает автоматическую вставку перед '}', EOF или переводом строки.
func (p *Parser) semicolon() ast.ElementID {
	if p.at(token.Semicolon) {
		return p.advance()
	}
	if p.atOr(token.RBrace, token.EOF) || p.newlineBefore() {
		return ast.NoElementID
	}
	p.err(diag.SynExpectSemicolon, "expected ';'")
	return ast.NoElementID
}

// getDiagnosticSpan: span текущего токена; для EOF позиция после предыдущего токена.
func (p *Parser) getDiagnosticSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && p.pos > 0 {
		prev := p.toks[p.pos-1].Span
		return source.Span{File: prev.File, Start: prev.End, End: prev.End}
	}
	return tok.Span
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	if p.pos == p.lastErr {
		return false
	}
	p.lastErr = p.pos
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil || p.opts.Enough() && sev == diag.SevError && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
