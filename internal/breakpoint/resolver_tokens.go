package breakpoint

import (
	"stopline/internal/ast"
	"stopline/internal/token"
)

func (r *resolver) breakpointSpanOfToken(tok ast.ElementID) SpanInfo {
	// a token reached twice means two token rules point at each other (e.g. "do ;")
	if _, again := r.seen[tok]; again {
		return r.escalate(tok)
	}
	r.seen[tok] = struct{}{}

	switch r.tree.TokenKind(tok) {
	case token.LBrace:
		return r.breakpointSpanOfOpenBrace(tok)
	case token.RBrace:
		return r.breakpointSpanOfCloseBrace(tok)
	case token.Comma:
		return r.breakpointSpanOfComma(tok)
	case token.Semicolon, token.EOF:
		return r.breakpointSpanIfStartsOnSameLine(r.tree.PrevToken(tok))
	case token.RParen:
		switch r.tree.Kind(r.tree.ContainingNode(tok)) {
		case ast.KindForStatement, ast.KindParameterList:
			return r.breakpointSpanOf(r.tree.PrevToken(tok))
		}
	case token.KwDo:
		if r.tree.IsKind(r.tree.Parent(tok), ast.KindDoStatement) {
			next := r.tree.NextToken(tok)
			if next.IsValid() && r.startsOnCallerLine(next) {
				return r.breakpointSpanOf(next)
			}
		}
	default:
		if r.isClauseExpression(tok) {
			return r.spanOf(tok)
		}
	}
	return r.escalate(tok)
}

func (r *resolver) breakpointSpanIfStartsOnSameLine(id ast.ElementID) SpanInfo {
	if !id.IsValid() || !r.startsOnCallerLine(id) {
		return None()
	}
	return r.breakpointSpanOf(id)
}

// breakpointSpanOfComma binds a separator of a declaration, enum or parameter list
// to the item before it.
func (r *resolver) breakpointSpanOfComma(comma ast.ElementID) SpanInfo {
	list := r.tree.Parent(comma)
	if !r.tree.IsSeparator(comma) {
		return r.escalate(comma)
	}
	switch r.tree.Kind(r.tree.Parent(list)) {
	case ast.KindVariableDeclaration, ast.KindEnumDeclaration, ast.KindParameterList:
		if idx := r.tree.ChildIndex(comma); idx > 0 {
			return r.breakpointSpanOf(r.tree.Children(list)[idx-1])
		}
		return None()
	}
	return r.escalate(comma)
}

// braceOwner returns the construct a brace belongs to. For a block the owner is
// what the block is the body of; body is the block itself.
func (r *resolver) braceOwner(brace ast.ElementID) (owner, body ast.ElementID) {
	body = r.tree.ContainingNode(brace)
	owner = body
	if r.tree.IsKind(body, ast.KindBlock) {
		if c := r.tree.ContainingNode(body); c.IsValid() {
			owner = c
		}
	}
	return owner, body
}

func (r *resolver) breakpointSpanOfOpenBrace(brace ast.ElementID) SpanInfo {
	owner, body := r.braceOwner(brace)
	switch k := r.tree.Kind(owner); k {
	case ast.KindBlock, ast.KindSourceUnit, ast.KindLabeledStatement:
		return r.firstStatementOf(body)

	case ast.KindModuleDeclaration, ast.KindClassDeclaration, ast.KindFunctionDeclaration,
		ast.KindConstructorDeclaration, ast.KindMemberFunctionDeclaration, ast.KindGetAccessor,
		ast.KindSetAccessor, ast.KindFunctionExpression:
		if r.tree.IsAmbient(owner) {
			return None()
		}
		if !r.startsOnCallerLine(owner) {
			return r.firstChildOf(r.bodyList(owner))
		}
		return r.headerBefore(owner, brace)

	case ast.KindEnumDeclaration:
		if r.tree.IsAmbient(owner) {
			return None()
		}
		if !r.startsOnCallerLine(owner) {
			return r.firstChildOf(r.tree.Field(owner, ast.FieldElements))
		}
		return r.headerBefore(owner, brace)

	case ast.KindIfStatement, ast.KindForInStatement, ast.KindWhileStatement, ast.KindCatchClause:
		if !r.startsOnCallerLine(owner) {
			return r.firstStatementOf(body)
		}
		return r.breakpointSpanOfNode(owner)

	case ast.KindDoStatement, ast.KindElseClause, ast.KindCaseSwitchClause, ast.KindDefaultSwitchClause,
		ast.KindWithStatement, ast.KindTryStatement, ast.KindFinallyClause:
		return r.firstStatementOf(body)

	case ast.KindForStatement:
		if !r.startsOnCallerLine(owner) {
			return r.firstStatementOf(body)
		}
		return r.breakpointSpanOf(r.tree.PrevToken(brace))

	case ast.KindSwitchStatement:
		if !r.startsOnCallerLine(owner) {
			clauses := r.tree.Field(owner, ast.FieldClauses)
			if r.tree.ItemCount(clauses) == 0 {
				return None()
			}
			return r.firstChildOf(r.tree.Field(r.tree.Item(clauses, 0), ast.FieldStatements))
		}
		return r.breakpointSpanOfNode(owner)
	}
	return None()
}

func (r *resolver) breakpointSpanOfCloseBrace(brace ast.ElementID) SpanInfo {
	owner, body := r.braceOwner(brace)
	switch k := r.tree.Kind(owner); k {
	case ast.KindBlock, ast.KindSourceUnit, ast.KindLabeledStatement:
		return r.lastStatementOf(body)

	case ast.KindModuleDeclaration, ast.KindClassDeclaration, ast.KindFunctionDeclaration,
		ast.KindConstructorDeclaration, ast.KindMemberFunctionDeclaration, ast.KindGetAccessor,
		ast.KindSetAccessor, ast.KindFunctionExpression:
		if r.tree.IsAmbient(owner) {
			return None()
		}
		list := r.bodyList(owner)
		if r.tree.ItemCount(list) > 0 {
			return r.lastChildOf(list)
		}
		if k == ast.KindModuleDeclaration {
			return None()
		}
		return r.spanOf(brace)

	case ast.KindEnumDeclaration:
		if r.tree.IsAmbient(owner) {
			return None()
		}
		return r.spanOf(brace)

	case ast.KindIfStatement, ast.KindForInStatement, ast.KindWhileStatement, ast.KindCatchClause,
		ast.KindDoStatement, ast.KindForStatement, ast.KindElseClause, ast.KindCaseSwitchClause,
		ast.KindDefaultSwitchClause, ast.KindWithStatement, ast.KindTryStatement, ast.KindFinallyClause:
		return r.lastStatementOf(body)

	case ast.KindSwitchStatement:
		clauses := r.tree.Field(owner, ast.FieldClauses)
		n := r.tree.ItemCount(clauses)
		if n == 0 {
			return None()
		}
		return r.lastChildOf(r.tree.Field(r.tree.Item(clauses, n-1), ast.FieldStatements))
	}
	return None()
}

// headerBefore spans a declaration from its start to the token preceding its body brace.
func (r *resolver) headerBefore(decl, brace ast.ElementID) SpanInfo {
	prev := r.tree.PrevToken(brace)
	sp, ok := r.tree.Span(prev)
	if !ok {
		return r.spanOf(decl)
	}
	return r.withLimChar(decl, sp.End)
}

// bodyList is the member or statement list of a declaration with a body.
func (r *resolver) bodyList(decl ast.ElementID) ast.ElementID {
	switch r.tree.Kind(decl) {
	case ast.KindModuleDeclaration:
		return r.tree.Field(decl, ast.FieldElements)
	case ast.KindClassDeclaration:
		return r.tree.Field(decl, ast.FieldMembers)
	default:
		return r.tree.Field(r.tree.Field(decl, ast.FieldBody), ast.FieldStatements)
	}
}
