package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// modifierRun считает подряд идущие модификаторы, не съедая их.
func (p *Parser) modifierRun(isMod func(token.Kind) bool) int {
	n := 0
	for isMod(p.peekAt(n).Kind) {
		n++
	}
	return n
}

func (p *Parser) parseModifiers(n int) ast.ElementID {
	mods := make([]ast.ElementID, 0, n)
	for range n {
		mods = append(mods, p.advance())
	}
	return p.b.List(mods...)
}

// parseExportAssignment: export = name;
func (p *Parser) parseExportAssignment() ast.ElementID {
	kw := p.advance()
	eq := p.advance()
	name := p.expectIdent()
	semi := p.semicolon()
	return p.b.Node(ast.KindExportAssignment, kw, eq, name, semi)
}

// parseModuleDeclaration: module A.B { ... } | module "name" { ... }
func (p *Parser) parseModuleDeclaration(mods ast.ElementID) ast.ElementID {
	kw := p.advance()
	var name ast.ElementID
	if p.at(token.StringLit) {
		name = p.advance()
	} else {
		name = p.parseEntityName()
	}
	open := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after module name")
	elems := p.parseModuleElements(token.RBrace)
	closeTok := p.expectClose(open, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close module body")
	return p.b.Node(ast.KindModuleDeclaration, mods, kw, name, open, elems, closeTok)
}

// parseEntityName читает A или A.B.C как левоассоциативную цепочку QualifiedName.
func (p *Parser) parseEntityName() ast.ElementID {
	left := p.expectIdent()
	for p.at(token.Dot) && left.IsValid() {
		dot := p.advance()
		right := p.expectIdentifierName()
		left = p.b.Node(ast.KindQualifiedName, left, dot, right)
	}
	return left
}

func (p *Parser) expectIdentifierName() ast.ElementID {
	if p.peek().IsIdentifierName() {
		return p.advance()
	}
	p.err(diag.SynExpectIdentifier, "expected name after '.'")
	return ast.NoElementID
}

// expectClose reports a missing closer; with no opener there is nothing to balance.
func (p *Parser) expectClose(open ast.ElementID, k token.Kind, code diag.Code, msg string) ast.ElementID {
	if p.at(k) {
		return p.advance()
	}
	if open.IsValid() {
		p.err(code, msg)
	}
	return ast.NoElementID
}

func (p *Parser) parseInterfaceDeclaration(mods ast.ElementID) ast.ElementID {
	kw := p.advance()
	name := p.expectIdent()
	ext := p.parseExtendsClause()
	body := p.parseObjectType()
	return p.b.Node(ast.KindInterfaceDeclaration, mods, kw, name, ext, body)
}

// parseExtendsClause: extends A, B.C
func (p *Parser) parseExtendsClause() ast.ElementID {
	if !p.at(token.KwExtends) {
		return ast.NoElementID
	}
	kw := p.advance()
	var children []ast.ElementID
	for {
		name := p.parseEntityName()
		if !name.IsValid() {
			break
		}
		children = append(children, name)
		if !p.at(token.Comma) {
			break
		}
		children = append(children, p.advance())
	}
	return p.b.Node(ast.KindExtendsClause, kw, p.b.SeparatedList(children...))
}

// parseEnumDeclaration: enum E { A, B = 1 }
func (p *Parser) parseEnumDeclaration(mods ast.ElementID) ast.ElementID {
	kw := p.advance()
	name := p.expectIdent()
	open := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after enum name")
	var children []ast.ElementID
	for open.IsValid() && !p.atOr(token.RBrace, token.EOF) {
		start := p.pos
		elName := p.expectPropertyName()
		init := p.parseInitializer(false)
		if elName.IsValid() {
			children = append(children, p.b.Node(ast.KindEnumElement, elName, init))
		}
		if p.at(token.Comma) {
			if len(children)%2 == 1 {
				children = append(children, p.advance())
			} else {
				p.skip()
			}
			continue
		}
		if p.pos == start {
			p.skipUnexpected(diag.SynUnexpectedToken, "unexpected token in enum")
			continue
		}
		if !p.at(token.RBrace) {
			p.err(diag.SynUnexpectedToken, "expected ',' or '}' in enum")
			break
		}
	}
	closeTok := p.expectClose(open, token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum")
	return p.b.Node(ast.KindEnumDeclaration, mods, kw, name, open, p.b.SeparatedList(children...), closeTok)
}

// parseImportDeclaration: import x = require("m"); | import x = A.B;
func (p *Parser) parseImportDeclaration(mods ast.ElementID) ast.ElementID {
	kw := p.advance()
	name := p.expectIdent()
	eq := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in import declaration")
	var ref ast.ElementID
	if p.at(token.KwRequire) && p.peekAt(1).Kind == token.LParen {
		req := p.advance()
		open := p.advance()
		value := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module name string")
		closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')' after module name")
		ref = p.b.Node(ast.KindExternalModuleReference, req, open, value, closeTok)
	} else if eq.IsValid() {
		ref = p.parseEntityName()
	}
	semi := p.semicolon()
	return p.b.Node(ast.KindImportDeclaration, mods, kw, name, eq, ref, semi)
}

// parseFunctionDeclaration: function f(a, b): T { ... } | function f(): T;
func (p *Parser) parseFunctionDeclaration(mods ast.ElementID) ast.ElementID {
	kw := p.advance()
	name := p.expectIdent()
	sig := p.parseCallSignature()
	body, semi := p.parseOptionalBody()
	return p.b.Node(ast.KindFunctionDeclaration, mods, kw, name, sig, body, semi)
}

// parseOptionalBody возвращает либо блок, либо ';' перегрузки.
func (p *Parser) parseOptionalBody() (body, semi ast.ElementID) {
	if p.at(token.LBrace) {
		return p.parseBlock(), ast.NoElementID
	}
	return ast.NoElementID, p.semicolon()
}

// parseRequiredBody parses a body that the grammar cannot omit. A missing one is
// reported and replaced by an empty block without braces.
func (p *Parser) parseRequiredBody() ast.ElementID {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	p.err(diag.SynExpectBody, "expected '{'")
	return p.b.Node(ast.KindBlock, ast.NoElementID, p.b.List(), ast.NoElementID)
}

// parseVariableStatement: var a = 1, b;
func (p *Parser) parseVariableStatement(mods ast.ElementID) ast.ElementID {
	decl, _ := p.parseVariableDeclaration(false)
	semi := p.semicolon()
	return p.b.Node(ast.KindVariableStatement, mods, decl, semi)
}

// parseVariableDeclaration also returns the number of declarators read.
func (p *Parser) parseVariableDeclaration(noIn bool) (ast.ElementID, int) {
	kw := p.advance()
	var children []ast.ElementID
	count := 0
	for {
		if !p.atIdent() {
			p.err(diag.SynExpectIdentifier, "expected variable name")
			break
		}
		children = append(children, p.parseVariableDeclarator(noIn))
		count++
		if !p.at(token.Comma) {
			break
		}
		children = append(children, p.advance())
	}
	return p.b.Node(ast.KindVariableDeclaration, kw, p.b.SeparatedList(children...)), count
}

func (p *Parser) parseVariableDeclarator(noIn bool) ast.ElementID {
	name := p.advance()
	typ := p.parseTypeAnnotation()
	init := p.parseInitializer(noIn)
	return p.b.Node(ast.KindVariableDeclarator, name, typ, init)
}

// parseInitializer: = expr
func (p *Parser) parseInitializer(noIn bool) ast.ElementID {
	if !p.at(token.Assign) {
		return ast.NoElementID
	}
	eq := p.advance()
	value := p.parseAssignment(noIn)
	if !value.IsValid() {
		p.err(diag.SynExpectExpression, "expected initializer expression")
	}
	return p.b.Node(ast.KindEqualsValueClause, eq, value)
}
