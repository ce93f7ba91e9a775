package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// parseParenCondition читает '(' expr ')'.
func (p *Parser) parseParenCondition() (open, cond, closeTok ast.ElementID) {
	open = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	cond = p.parseExpression(false)
	if !cond.IsValid() {
		p.err(diag.SynExpectExpression, "expected expression")
	}
	closeTok = p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')'")
	return open, cond, closeTok
}

func (p *Parser) parseIfStatement() ast.ElementID {
	kw := p.advance()
	open, cond, closeTok := p.parseParenCondition()
	stmt := p.parseEmbeddedStatement()
	var elseClause ast.ElementID
	if p.at(token.KwElse) {
		elseKw := p.advance()
		elseClause = p.b.Node(ast.KindElseClause, elseKw, p.parseEmbeddedStatement())
	}
	return p.b.Node(ast.KindIfStatement, kw, open, cond, closeTok, stmt, elseClause)
}

func (p *Parser) parseWhileStatement() ast.ElementID {
	kw := p.advance()
	open, cond, closeTok := p.parseParenCondition()
	stmt := p.parseEmbeddedStatement()
	return p.b.Node(ast.KindWhileStatement, kw, open, cond, closeTok, stmt)
}

func (p *Parser) parseWithStatement() ast.ElementID {
	kw := p.advance()
	open, expr, closeTok := p.parseParenCondition()
	stmt := p.parseEmbeddedStatement()
	return p.b.Node(ast.KindWithStatement, kw, open, expr, closeTok, stmt)
}

// parseDoStatement: do stmt while (cond);
func (p *Parser) parseDoStatement() ast.ElementID {
	kw := p.advance()
	stmt := p.parseEmbeddedStatement()
	whileKw := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body")
	var open, cond, closeTok ast.ElementID
	if whileKw.IsValid() {
		open, cond, closeTok = p.parseParenCondition()
	}
	// после do-while точка с запятой вставляется всегда
	semi := p.optional(token.Semicolon)
	return p.b.Node(ast.KindDoStatement, kw, stmt, whileKw, open, cond, closeTok, semi)
}

// parseForStatement handles both 'for (init; cond; incr)' and 'for (x in expr)'.
func (p *Parser) parseForStatement() ast.ElementID {
	kw := p.advance()
	open := p.expect(token.LParen, diag.SynForBadHeader, "expected '(' after 'for'")
	var decl, init ast.ElementID
	declarators := 0
	switch {
	case p.atOr(token.KwVar, token.KwLet, token.KwConst):
		decl, declarators = p.parseVariableDeclaration(true)
	case !p.at(token.Semicolon):
		init = p.parseExpression(true)
	}
	if p.at(token.KwIn) && (declarators == 1 || !decl.IsValid() && init.IsValid()) {
		in := p.advance()
		expr := p.parseExpression(false)
		if !expr.IsValid() {
			p.err(diag.SynExpectExpression, "expected expression after 'in'")
		}
		closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')' after for-in header")
		stmt := p.parseEmbeddedStatement()
		return p.b.Node(ast.KindForInStatement, kw, open, decl, init, in, expr, closeTok, stmt)
	}
	first := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' in for header")
	var cond ast.ElementID
	if !p.at(token.Semicolon) {
		cond = p.parseExpression(false)
	}
	second := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' in for header")
	var incr ast.ElementID
	if !p.at(token.RParen) {
		incr = p.parseExpression(false)
	}
	closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')' after for header")
	stmt := p.parseEmbeddedStatement()
	return p.b.Node(ast.KindForStatement, kw, open, decl, init, first, cond, second, incr, closeTok, stmt)
}

// parseSwitchStatement: switch (e) { case x: ...; default: ... }
func (p *Parser) parseSwitchStatement() ast.ElementID {
	kw := p.advance()
	open, expr, closeTok := p.parseParenCondition()
	openBrace := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after switch header")
	var clauses []ast.ElementID
	for openBrace.IsValid() && !p.atOr(token.RBrace, token.EOF) {
		switch {
		case p.at(token.KwCase):
			caseKw := p.advance()
			value := p.parseExpression(false)
			if !value.IsValid() {
				p.err(diag.SynExpectExpression, "expected case expression")
			}
			colon := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case expression")
			stmts := p.parseStatementList(token.KwCase, token.KwDefault, token.RBrace)
			clauses = append(clauses, p.b.Node(ast.KindCaseSwitchClause, caseKw, value, colon, stmts))
		case p.at(token.KwDefault):
			defKw := p.advance()
			colon := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after 'default'")
			stmts := p.parseStatementList(token.KwCase, token.KwDefault, token.RBrace)
			clauses = append(clauses, p.b.Node(ast.KindDefaultSwitchClause, defKw, colon, stmts))
		default:
			p.skipUnexpected(diag.SynUnexpectedToken, "expected 'case' or 'default', got")
		}
	}
	closeBrace := p.expectClose(openBrace, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch")
	return p.b.Node(ast.KindSwitchStatement, kw, open, expr, closeTok, openBrace, p.b.List(clauses...), closeBrace)
}

// parseTryStatement: try { } catch (e) { } finally { }
func (p *Parser) parseTryStatement() ast.ElementID {
	kw := p.advance()
	block := p.parseRequiredBody()
	var catchClause, finallyClause ast.ElementID
	if p.at(token.KwCatch) {
		catchKw := p.advance()
		open := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'catch'")
		id := p.expectIdent()
		typ := p.parseTypeAnnotation()
		closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')' after catch variable")
		body := p.parseRequiredBody()
		catchClause = p.b.Node(ast.KindCatchClause, catchKw, open, id, typ, closeTok, body)
	}
	if p.at(token.KwFinally) {
		finKw := p.advance()
		finallyClause = p.b.Node(ast.KindFinallyClause, finKw, p.parseRequiredBody())
	}
	if !catchClause.IsValid() && !finallyClause.IsValid() {
		p.err(diag.SynUnexpectedToken, "expected 'catch' or 'finally' after try block")
	}
	return p.b.Node(ast.KindTryStatement, kw, block, catchClause, finallyClause)
}
