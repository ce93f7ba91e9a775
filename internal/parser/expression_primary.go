package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// startsExpression: может ли текущий токен начинать выражение.
func (p *Parser) startsExpression() bool {
	tok := p.peek()
	if tok.IsIdent() || tok.IsLiteral() || isPrefixOperator(tok.Kind) {
		return true
	}
	switch tok.Kind {
	case token.KwThis, token.KwSuper, token.KwTrue, token.KwFalse, token.KwNull,
		token.KwNew, token.KwFunction, token.LParen, token.LBracket, token.LBrace:
		return true
	default:
		return false
	}
}

func (p *Parser) parsePrimary() ast.ElementID {
	tok := p.peek()
	if tok.IsIdent() || tok.IsLiteral() {
		return p.advance()
	}
	switch tok.Kind {
	case token.KwThis, token.KwSuper:
		return p.advance()
	case token.LParen:
		open := p.advance()
		expr := p.parseExpression(false)
		if !expr.IsValid() {
			p.err(diag.SynExpectExpression, "expected expression after '('")
		}
		closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')'")
		return p.b.Node(ast.KindParenthesizedExpression, open, expr, closeTok)
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.KwFunction:
		return p.parseFunctionExpression()
	}
	p.err(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
	return ast.NoElementID
}

// parseArrayLiteral: [a, b, c]
func (p *Parser) parseArrayLiteral() ast.ElementID {
	open := p.advance()
	var children []ast.ElementID
	for !p.atOr(token.RBracket, token.EOF) {
		item := p.parseAssignment(false)
		if !item.IsValid() {
			break
		}
		children = append(children, item)
		if !p.at(token.Comma) {
			break
		}
		children = append(children, p.advance())
	}
	closeTok := p.expectClose(open, token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	return p.b.Node(ast.KindArrayLiteralExpression, open, p.b.SeparatedList(children...), closeTok)
}

// parseObjectLiteral: { a: 1, "b": 2 }
func (p *Parser) parseObjectLiteral() ast.ElementID {
	open := p.advance()
	var children []ast.ElementID
	for !p.atOr(token.RBrace, token.EOF) {
		if !isMemberName(p.peek()) {
			p.err(diag.SynExpectIdentifier, "expected property name, got '"+p.peek().Text+"'")
			break
		}
		name := p.advance()
		colon := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after property name")
		value := p.parseAssignment(false)
		if !value.IsValid() {
			p.err(diag.SynExpectExpression, "expected property value")
		}
		children = append(children, p.b.Node(ast.KindPropertyAssignment, name, colon, value))
		if !p.at(token.Comma) {
			break
		}
		children = append(children, p.advance())
	}
	closeTok := p.expectClose(open, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object literal")
	return p.b.Node(ast.KindObjectLiteralExpression, open, p.b.SeparatedList(children...), closeTok)
}

// parseFunctionExpression: function name?(params) { body }
func (p *Parser) parseFunctionExpression() ast.ElementID {
	kw := p.advance()
	name := ast.NoElementID
	if p.atIdent() {
		name = p.advance()
	}
	sig := p.parseCallSignature()
	body := p.parseRequiredBody()
	return p.b.Node(ast.KindFunctionExpression, kw, name, sig, body)
}
