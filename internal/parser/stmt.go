package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// parseStatement returns NoElementID when nothing statement-like starts here.
func (p *Parser) parseStatement() ast.ElementID {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVariableStatement(p.b.List())
	case token.KwFunction:
		return p.parseFunctionDeclaration(p.b.List())
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwWhile:
		return p.parseWhileStatement()
	case token.KwDo:
		return p.parseDoStatement()
	case token.KwSwitch:
		return p.parseSwitchStatement()
	case token.KwWith:
		return p.parseWithStatement()
	case token.KwTry:
		return p.parseTryStatement()
	case token.KwReturn:
		return p.parseReturnLike(ast.KindReturnStatement)
	case token.KwThrow:
		return p.parseReturnLike(ast.KindThrowStatement)
	case token.KwBreak:
		return p.parseJump(ast.KindBreakStatement)
	case token.KwContinue:
		return p.parseJump(ast.KindContinueStatement)
	case token.KwDebugger:
		kw := p.advance()
		return p.b.Node(ast.KindDebuggerStatement, kw, p.semicolon())
	case token.Semicolon:
		return p.b.Node(ast.KindEmptyStatement, p.advance())
	}
	if p.atIdent() && p.peekAt(1).Kind == token.Colon {
		label := p.advance()
		colon := p.advance()
		stmt := p.parseEmbeddedStatement()
		return p.b.Node(ast.KindLabeledStatement, label, colon, stmt)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.ElementID {
	if !p.startsExpression() {
		return ast.NoElementID
	}
	expr := p.parseExpression(false)
	if !expr.IsValid() {
		return ast.NoElementID
	}
	semi := p.semicolon()
	return p.b.Node(ast.KindExpressionStatement, expr, semi)
}

// parseEmbeddedStatement: тело if/while/for; отсутствие тела репортится один раз.
func (p *Parser) parseEmbeddedStatement() ast.ElementID {
	stmt := p.parseStatement()
	if !stmt.IsValid() {
		p.err(diag.SynUnexpectedToken, "expected statement, got '"+p.peek().Text+"'")
	}
	return stmt
}

// parseBlock: { statements }
func (p *Parser) parseBlock() ast.ElementID {
	open := p.advance()
	stmts := p.parseStatementList(token.RBrace)
	closeTok := p.expectClose(open, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	return p.b.Node(ast.KindBlock, open, stmts, closeTok)
}

// parseStatementList reads statements until one of the stop kinds (not consumed).
func (p *Parser) parseStatementList(stop ...token.Kind) ast.ElementID {
	var items []ast.ElementID
	for !p.atOr(stop...) && !p.at(token.EOF) {
		start := p.pos
		if st := p.parseStatement(); st.IsValid() {
			items = append(items, st)
		}
		if p.pos == start {
			p.skipUnexpected(diag.SynUnexpectedToken, "unexpected token")
		}
	}
	return p.b.List(items...)
}

// parseReturnLike: return expr; | throw expr;
func (p *Parser) parseReturnLike(kind ast.Kind) ast.ElementID {
	kw := p.advance()
	var expr ast.ElementID
	if !p.atOr(token.Semicolon, token.RBrace, token.EOF) && !p.newlineBefore() {
		expr = p.parseExpression(false)
	}
	if kind == ast.KindThrowStatement && !expr.IsValid() {
		p.err(diag.SynExpectExpression, "expected expression after 'throw'")
	}
	semi := p.semicolon()
	return p.b.Node(kind, kw, expr, semi)
}

// parseJump: break label; | continue;
func (p *Parser) parseJump(kind ast.Kind) ast.ElementID {
	kw := p.advance()
	var label ast.ElementID
	if p.atIdent() && !p.newlineBefore() {
		label = p.advance()
	}
	semi := p.semicolon()
	return p.b.Node(kind, kw, label, semi)
}
