package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/token"
)

// parseExpression: assignment (',' assignment)*
func (p *Parser) parseExpression(noIn bool) ast.ElementID {
	left := p.parseAssignment(noIn)
	for left.IsValid() && p.at(token.Comma) {
		op := p.advance()
		right := p.parseAssignment(noIn)
		if !right.IsValid() {
			p.err(diag.SynExpectExpression, "expected expression after ','")
		}
		left = p.b.Node(ast.KindCommaExpression, left, op, right)
	}
	return left
}

func (p *Parser) parseAssignment(noIn bool) ast.ElementID {
	if p.atIdent() && p.peekAt(1).Kind == token.FatArrow {
		return p.parseSimpleArrow(noIn)
	}
	if p.at(token.LParen) && p.isParenthesizedArrow() {
		return p.parseParenthesizedArrow(noIn)
	}
	left := p.parseConditional(noIn)
	if left.IsValid() && p.peek().Kind.IsAssignment() {
		op := p.advance()
		right := p.parseAssignment(noIn)
		if !right.IsValid() {
			p.err(diag.SynExpectExpression, "expected expression after assignment operator")
		}
		return p.b.Node(ast.KindAssignmentExpression, left, op, right)
	}
	return left
}

func (p *Parser) parseConditional(noIn bool) ast.ElementID {
	cond := p.parseBinary(precNone, noIn)
	if !cond.IsValid() || !p.at(token.Question) {
		return cond
	}
	q := p.advance()
	whenTrue := p.parseAssignment(false)
	colon := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression")
	whenFalse := p.parseAssignment(noIn)
	return p.b.Node(ast.KindConditionalExpression, cond, q, whenTrue, colon, whenFalse)
}

// parseBinary: разбор по приоритетам, все операторы левоассоциативны.
func (p *Parser) parseBinary(minPrec int, noIn bool) ast.ElementID {
	left := p.parseUnary()
	if !left.IsValid() {
		return left
	}
	for {
		prec := binaryPrecedence(p.peek().Kind, noIn)
		if prec == precNone || prec <= minPrec {
			return left
		}
		op := p.advance()
		right := p.parseBinary(prec, noIn)
		if !right.IsValid() {
			p.err(diag.SynExpectExpression, "expected expression after '"+p.toks[p.pos-1].Text+"'")
		}
		left = p.b.Node(ast.KindBinaryExpression, left, op, right)
	}
}

func (p *Parser) parseUnary() ast.ElementID {
	if isPrefixOperator(p.peek().Kind) {
		op := p.advance()
		operand := p.parseUnary()
		if !operand.IsValid() {
			p.err(diag.SynExpectExpression, "expected operand")
		}
		return p.b.Node(ast.KindPrefixUnaryExpression, op, operand)
	}
	expr := p.parseLeftHandSide()
	if expr.IsValid() && p.atOr(token.PlusPlus, token.MinusMinus) && !p.newlineBefore() {
		op := p.advance()
		return p.b.Node(ast.KindPostfixUnaryExpression, expr, op)
	}
	return expr
}

// parseLeftHandSide: member access, element access and calls over a primary or 'new'.
func (p *Parser) parseLeftHandSide() ast.ElementID {
	var expr ast.ElementID
	if p.at(token.KwNew) {
		expr = p.parseNew()
	} else {
		expr = p.parsePrimary()
	}
	return p.parseAccessChain(expr, true)
}

func (p *Parser) parseAccessChain(expr ast.ElementID, calls bool) ast.ElementID {
	for expr.IsValid() {
		switch {
		case p.at(token.Dot):
			dot := p.advance()
			name := p.expectIdentifierName()
			expr = p.b.Node(ast.KindMemberAccessExpression, expr, dot, name)
		case p.at(token.LBracket):
			open := p.advance()
			arg := p.parseExpression(false)
			if !arg.IsValid() {
				p.err(diag.SynExpectExpression, "expected index expression")
			}
			closeTok := p.expectClose(open, token.RBracket, diag.SynUnclosedBracket, "expected ']'")
			expr = p.b.Node(ast.KindElementAccessExpression, expr, open, arg, closeTok)
		case calls && p.at(token.LParen):
			expr = p.b.Node(ast.KindInvocationExpression, expr, p.parseArgumentList())
		default:
			return expr
		}
	}
	return expr
}

// parseNew: new C(args) | new C
func (p *Parser) parseNew() ast.ElementID {
	kw := p.advance()
	var target ast.ElementID
	if p.at(token.KwNew) {
		target = p.parseNew()
	} else {
		target = p.parseAccessChain(p.parsePrimary(), false)
	}
	if !target.IsValid() {
		p.err(diag.SynExpectExpression, "expected constructor after 'new'")
	}
	var args ast.ElementID
	if p.at(token.LParen) {
		args = p.parseArgumentList()
	}
	return p.b.Node(ast.KindObjectCreationExpression, kw, target, args)
}

func (p *Parser) parseArgumentList() ast.ElementID {
	open := p.advance()
	var children []ast.ElementID
	for !p.atOr(token.RParen, token.EOF) {
		arg := p.parseAssignment(false)
		if !arg.IsValid() {
			p.err(diag.SynExpectExpression, "expected argument")
			break
		}
		children = append(children, arg)
		if !p.at(token.Comma) {
			break
		}
		children = append(children, p.advance())
	}
	closeTok := p.expectClose(open, token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	return p.b.Node(ast.KindArgumentList, open, p.b.SeparatedList(children...), closeTok)
}

func (p *Parser) parseSimpleArrow(noIn bool) ast.ElementID {
	name := p.advance()
	param := p.b.Node(ast.KindParameter, ast.NoElementID, p.b.List(), name, ast.NoElementID, ast.NoElementID, ast.NoElementID)
	arrow := p.advance()
	body := p.parseArrowBody(noIn)
	return p.b.Node(ast.KindSimpleArrowFunctionExpression, param, arrow, body)
}

func (p *Parser) parseParenthesizedArrow(noIn bool) ast.ElementID {
	sig := p.parseCallSignature()
	arrow := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>'")
	body := p.parseArrowBody(noIn)
	return p.b.Node(ast.KindParenthesizedArrowFunctionExpression, sig, arrow, body)
}

func (p *Parser) parseArrowBody(noIn bool) ast.ElementID {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	body := p.parseAssignment(noIn)
	if !body.IsValid() {
		p.err(diag.SynExpectExpression, "expected arrow function body")
	}
	return body
}

// isParenthesizedArrow смотрит вперёд до парной ')' и проверяет, что дальше идёт
// '=>' или аннотация возвращаемого типа с '=>'.
func (p *Parser) isParenthesizedArrow() bool {
	depth := 0
	i := 0
	for ; ; i++ {
		k := p.peekAt(i).Kind
		switch k {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.EOF:
			return false
		}
		if depth == 0 {
			break
		}
	}
	i++
	switch p.peekAt(i).Kind {
	case token.FatArrow:
		return true
	case token.Colon:
	default:
		return false
	}
	// ': Name.Name[][] =>' или ': void =>'
	i++
	if p.peekAt(i).Kind == token.KwVoid {
		i++
	} else {
		if !p.peekAt(i).IsIdent() {
			return false
		}
		i++
		for p.peekAt(i).Kind == token.Dot && p.peekAt(i+1).IsIdentifierName() {
			i += 2
		}
	}
	for p.peekAt(i).Kind == token.LBracket && p.peekAt(i+1).Kind == token.RBracket {
		i += 2
	}
	return p.peekAt(i).Kind == token.FatArrow
}
