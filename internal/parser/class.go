package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// parseClassDeclaration: class C extends B { members }
func (p *Parser) parseClassDeclaration(mods ast.ElementID) ast.ElementID {
	kw := p.advance()
	name := p.expectIdent()
	ext := p.parseExtendsClause()
	open := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after class name")
	var members []ast.ElementID
	for open.IsValid() && !p.atOr(token.RBrace, token.EOF) {
		start := p.pos
		if p.at(token.Semicolon) {
			p.skip()
			continue
		}
		if m := p.parseClassMember(); m.IsValid() {
			members = append(members, m)
		}
		if p.pos == start {
			p.skipUnexpected(diag.SynUnexpectedToken, "unexpected token in class body")
		}
	}
	closeTok := p.expectClose(open, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close class body")
	return p.b.Node(ast.KindClassDeclaration, mods, kw, name, ext, open, p.b.List(members...), closeTok)
}

func isClassModifier(k token.Kind) bool {
	return k == token.KwPublic || k == token.KwPrivate || k == token.KwStatic
}

// isMemberName: может ли токен быть именем члена класса.
func isMemberName(tok token.Token) bool {
	return tok.IsIdentifierName() || tok.Kind == token.StringLit || tok.Kind == token.NumberLit
}

// classModifierRun counts modifiers, stopping where a modifier word is really the member name.
func (p *Parser) classModifierRun() int {
	n := 0
	for isClassModifier(p.peekAt(n).Kind) && isMemberName(p.peekAt(n+1)) {
		n++
	}
	return n
}

func (p *Parser) parseClassMember() ast.ElementID {
	n := p.classModifierRun()
	head, next := p.peekAt(n), p.peekAt(n+1)
	switch {
	case head.Kind == token.KwConstructor && next.Kind == token.LParen:
		mods := p.parseModifiers(n)
		kw := p.advance()
		sig := p.parseCallSignature()
		body, semi := p.parseOptionalBody()
		return p.b.Node(ast.KindConstructorDeclaration, mods, kw, sig, body, semi)
	case (head.Kind == token.KwGet || head.Kind == token.KwSet) && isMemberName(next):
		kind := ast.KindGetAccessor
		if head.Kind == token.KwSet {
			kind = ast.KindSetAccessor
		}
		mods := p.parseModifiers(n)
		kw := p.advance()
		name := p.advance()
		sig := p.parseCallSignature()
		body := p.parseRequiredBody()
		return p.b.Node(kind, mods, kw, name, sig, body)
	case isMemberName(head) && next.Kind == token.LParen:
		mods := p.parseModifiers(n)
		name := p.advance()
		sig := p.parseCallSignature()
		body, semi := p.parseOptionalBody()
		return p.b.Node(ast.KindMemberFunctionDeclaration, mods, name, sig, body, semi)
	case isMemberName(head):
		mods := p.parseModifiers(n)
		name := p.advance()
		typ := p.parseTypeAnnotation()
		init := p.parseInitializer(false)
		decl := p.b.Node(ast.KindVariableDeclarator, name, typ, init)
		semi := p.semicolon()
		return p.b.Node(ast.KindMemberVariableDeclaration, mods, decl, semi)
	}
	return ast.NoElementID
}
