package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// parseCallSignature: (params): T
func (p *Parser) parseCallSignature() ast.ElementID {
	params := p.parseParameterList()
	typ := p.parseTypeAnnotation()
	return p.b.Node(ast.KindCallSignature, params, typ)
}

func (p *Parser) parseParameterList() ast.ElementID {
	open := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	var children []ast.ElementID
	for open.IsValid() && !p.atOr(token.RParen, token.EOF) {
		param := p.parseParameter()
		if !param.IsValid() {
			break
		}
		children = append(children, param)
		if !p.at(token.Comma) {
			break
		}
		children = append(children, p.advance())
	}
	closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	return p.b.Node(ast.KindParameterList, open, p.b.SeparatedList(children...), closeTok)
}

// parseParameter: ...rest | public x?: T = init
func (p *Parser) parseParameter() ast.ElementID {
	dots := p.optional(token.DotDotDot)
	n := 0
	for isClassModifier(p.peekAt(n).Kind) && p.peekAt(n+1).IsIdent() {
		n++
	}
	mods := p.parseModifiers(n)
	name := p.expectIdent()
	if !name.IsValid() && !dots.IsValid() && n == 0 {
		return ast.NoElementID
	}
	q := p.optional(token.Question)
	typ := p.parseTypeAnnotation()
	init := p.parseInitializer(false)
	return p.b.Node(ast.KindParameter, dots, mods, name, q, typ, init)
}

// parseTypeAnnotation: ': T' или ничего
func (p *Parser) parseTypeAnnotation() ast.ElementID {
	if !p.at(token.Colon) {
		return ast.NoElementID
	}
	colon := p.advance()
	typ := p.parseType()
	return p.b.Node(ast.KindTypeAnnotation, colon, typ)
}

func (p *Parser) parseType() ast.ElementID {
	var typ ast.ElementID
	switch {
	case p.at(token.KwVoid):
		typ = p.advance()
	case p.at(token.LBrace):
		typ = p.parseObjectType()
	case p.at(token.LParen):
		typ = p.parseFunctionType()
	case p.atIdent():
		typ = p.parseEntityName()
	default:
		p.err(diag.SynExpectType, "expected type, got '"+p.peek().Text+"'")
		return ast.NoElementID
	}
	for p.at(token.LBracket) && p.peekAt(1).Kind == token.RBracket {
		open := p.advance()
		closeTok := p.advance()
		typ = p.b.Node(ast.KindArrayType, typ, open, closeTok)
	}
	return typ
}

// parseFunctionType: (a: T) => R
func (p *Parser) parseFunctionType() ast.ElementID {
	params := p.parseParameterList()
	arrow := p.expect(token.FatArrow, diag.SynExpectType, "expected '=>' in function type")
	ret := p.parseType()
	return p.b.Node(ast.KindFunctionType, params, arrow, ret)
}

// parseObjectType: { a: T; m(x): R; (x): R }
func (p *Parser) parseObjectType() ast.ElementID {
	open := p.expect(token.LBrace, diag.SynExpectBody, "expected '{'")
	var members []ast.ElementID
	for open.IsValid() && !p.atOr(token.RBrace, token.EOF) {
		start := p.pos
		if m := p.parseTypeMember(); m.IsValid() {
			members = append(members, m)
		}
		if p.pos == start {
			p.skipUnexpected(diag.SynUnexpectedToken, "unexpected token in type literal")
		}
	}
	closeTok := p.expectClose(open, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close type literal")
	return p.b.Node(ast.KindObjectType, open, p.b.List(members...), closeTok)
}

func (p *Parser) parseTypeMember() ast.ElementID {
	var name ast.ElementID
	if !p.at(token.LParen) {
		if !isMemberName(p.peek()) {
			return ast.NoElementID
		}
		name = p.advance()
	}
	q := p.optional(token.Question)
	if p.at(token.LParen) {
		sig := p.parseCallSignature()
		sep := p.typeMemberSeparator()
		return p.b.Node(ast.KindMethodSignature, name, q, sig, sep)
	}
	typ := p.parseTypeAnnotation()
	sep := p.typeMemberSeparator()
	return p.b.Node(ast.KindPropertySignature, name, q, typ, sep)
}

func (p *Parser) typeMemberSeparator() ast.ElementID {
	if p.atOr(token.Semicolon, token.Comma) {
		return p.advance()
	}
	if !p.at(token.RBrace) && !p.newlineBefore() {
		p.err(diag.SynExpectSemicolon, "expected ';' between type members")
	}
	return ast.NoElementID
}
