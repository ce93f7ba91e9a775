package breakpoint

import (
	"stopline/internal/ast"
)

func (r *resolver) breakpointSpanOfNode(node ast.ElementID) SpanInfo {
	t := r.tree
	switch k := t.Kind(node); k {
	case ast.KindSourceUnit:
		return None()

	case ast.KindModuleDeclaration, ast.KindClassDeclaration, ast.KindFunctionDeclaration,
		ast.KindConstructorDeclaration, ast.KindMemberFunctionDeclaration, ast.KindGetAccessor,
		ast.KindSetAccessor, ast.KindFunctionExpression:
		return r.breakpointSpanOfDeclarationWithBody(node)

	case ast.KindInterfaceDeclaration:
		return None()

	case ast.KindVariableDeclarator:
		return r.breakpointSpanOfVariableDeclarator(node)
	case ast.KindVariableDeclaration:
		return r.breakpointSpanOfVariableDeclaration(node)
	case ast.KindVariableStatement:
		return r.breakpointSpanOfVariableStatement(node)
	case ast.KindParameter:
		return r.breakpointSpanOfParameter(node)
	case ast.KindMemberVariableDeclaration:
		return r.breakpointSpanOfMemberVariable(node)

	case ast.KindImportDeclaration:
		if t.IsAmbient(node) {
			return None()
		}
		return r.createSpan(node, t.Field(node, ast.FieldModifiers), t.Field(node, ast.FieldKeyword),
			t.Field(node, ast.FieldName), t.Field(node, ast.FieldEquals), t.Field(node, ast.FieldModuleReference))
	case ast.KindExportAssignment:
		if t.IsAmbient(node) {
			return None()
		}
		return r.createSpan(node, t.Field(node, ast.FieldKeyword), t.Field(node, ast.FieldEquals), t.Field(node, ast.FieldIdentifier))
	case ast.KindEnumDeclaration, ast.KindEnumElement:
		if t.IsAmbient(node) {
			return None()
		}
		return r.spanOf(node)

	case ast.KindIfStatement, ast.KindWhileStatement, ast.KindSwitchStatement:
		return r.createSpan(node, t.Field(node, ast.FieldKeyword), t.Field(node, ast.FieldOpenParen),
			t.Field(node, ast.FieldCondition), t.Field(node, ast.FieldExpression), t.Field(node, ast.FieldCloseParen))
	case ast.KindDoStatement:
		return r.createSpan(node, t.Field(node, ast.FieldWhileKeyword), t.Field(node, ast.FieldOpenParen),
			t.Field(node, ast.FieldCondition), t.Field(node, ast.FieldCloseParen))
	case ast.KindForInStatement:
		return r.createSpan(node, t.Field(node, ast.FieldKeyword), t.Field(node, ast.FieldOpenParen),
			t.Field(node, ast.FieldDeclaration), t.Field(node, ast.FieldLeft), t.Field(node, ast.FieldInKeyword),
			t.Field(node, ast.FieldExpression), t.Field(node, ast.FieldCloseParen))
	case ast.KindCatchClause:
		return r.createSpan(node, t.Field(node, ast.FieldKeyword), t.Field(node, ast.FieldOpenParen),
			t.Field(node, ast.FieldIdentifier), t.Field(node, ast.FieldTypeAnnotation), t.Field(node, ast.FieldCloseParen))
	case ast.KindForStatement:
		return r.breakpointSpanOfFor(node)

	case ast.KindElseClause, ast.KindWithStatement, ast.KindLabeledStatement:
		return r.breakpointSpanOf(t.Field(node, ast.FieldStatement))
	case ast.KindCaseSwitchClause, ast.KindDefaultSwitchClause:
		return r.firstChildOf(t.Field(node, ast.FieldStatements))
	case ast.KindTryStatement, ast.KindFinallyClause:
		return r.firstStatementOf(t.Field(node, ast.FieldBlock))
	case ast.KindBlock:
		return r.firstStatementOf(node)

	case ast.KindParenthesizedArrowFunctionExpression, ast.KindSimpleArrowFunctionExpression:
		return r.breakpointSpanOfArrow(node)

	case ast.KindExpressionStatement, ast.KindReturnStatement, ast.KindThrowStatement,
		ast.KindBreakStatement, ast.KindContinueStatement, ast.KindDebuggerStatement, ast.KindEmptyStatement:
		return r.breakpointSpanOfStatement(node)

	default:
		if k.IsStatement() {
			return r.breakpointSpanOfStatement(node)
		}
		if isExpressionKind(k) {
			return r.breakpointSpanOfExpression(node)
		}
		return r.escalate(node)
	}
}

func (r *resolver) breakpointSpanOfDeclarationWithBody(decl ast.ElementID) SpanInfo {
	t := r.tree
	if t.IsAmbient(decl) {
		return None()
	}
	k := t.Kind(decl)
	switch k {
	case ast.KindFunctionDeclaration, ast.KindConstructorDeclaration, ast.KindMemberFunctionDeclaration:
		if !t.Field(decl, ast.FieldBody).IsValid() {
			// overload signature
			return None()
		}
	case ast.KindFunctionExpression, ast.KindGetAccessor, ast.KindSetAccessor:
		if !t.Field(decl, ast.FieldBody).IsValid() {
			r.violate(decl, k.String()+" without body")
		}
	}
	if r.isNestedDeclaration(decl) {
		return r.spanOf(decl)
	}
	if k == ast.KindModuleDeclaration || k == ast.KindClassDeclaration {
		return r.firstChildOf(r.bodyList(decl))
	}
	return r.firstStatementOf(t.Field(decl, ast.FieldBody))
}

// isNestedDeclaration: the declaration is a breakpoint on its own rather than a way into its body.
func (r *resolver) isNestedDeclaration(decl ast.ElementID) bool {
	t := r.tree
	k := t.Kind(decl)
	if k == ast.KindModuleDeclaration && t.IsKind(t.Field(decl, ast.FieldName), ast.KindQualifiedName) {
		return true
	}
	if k.IsClassElement() {
		return true
	}
	return k.IsModuleElement() && !t.IsKind(t.ContainingNode(decl), ast.KindSourceUnit)
}

func (r *resolver) hasInitializer(declarator ast.ElementID) bool {
	return r.tree.Field(declarator, ast.FieldInitializer).IsValid()
}

func (r *resolver) breakpointSpanOfVariableDeclarator(decl ast.ElementID) SpanInfo {
	t := r.tree
	if t.IsAmbient(decl) || !r.hasInitializer(decl) {
		return None()
	}
	container := t.ContainingNode(decl)
	switch t.Kind(container) {
	case ast.KindVariableDeclaration:
		if t.Item(t.Parent(decl), 0) == decl {
			return r.breakpointSpanOfVariableDeclaration(container)
		}
		return r.spanOf(decl)
	case ast.KindMemberVariableDeclaration:
		return r.breakpointSpanOfMemberVariable(container)
	}
	return r.spanOf(decl)
}

func (r *resolver) breakpointSpanOfVariableDeclaration(decl ast.ElementID) SpanInfo {
	t := r.tree
	if t.IsAmbient(decl) {
		return None()
	}
	if container := t.ContainingNode(decl); t.IsKind(container, ast.KindVariableStatement) {
		return r.breakpointSpanOfVariableStatement(container)
	}
	first := t.Item(t.Field(decl, ast.FieldDeclarators), 0)
	if !first.IsValid() || !r.hasInitializer(first) {
		return None()
	}
	sp, _ := t.Span(first)
	return r.withLimChar(decl, sp.End)
}

// breakpointSpanOfVariableStatement anchors one breakpoint per statement: from the
// statement start through the first declarator, or the first later declarator that
// has an initializer.
func (r *resolver) breakpointSpanOfVariableStatement(stmt ast.ElementID) SpanInfo {
	t := r.tree
	if t.IsAmbient(stmt) {
		return None()
	}
	list := t.Field(t.Field(stmt, ast.FieldDeclaration), ast.FieldDeclarators)
	n := t.ItemCount(list)
	if n == 0 {
		return None()
	}
	if first := t.Item(list, 0); r.hasInitializer(first) {
		sp, _ := t.Span(first)
		return r.withLimChar(stmt, sp.End)
	}
	for i := 1; i < n; i++ {
		if d := t.Item(list, i); r.hasInitializer(d) {
			return r.spanOf(d)
		}
	}
	return None()
}

func (r *resolver) breakpointSpanOfParameter(param ast.ElementID) SpanInfo {
	t := r.tree
	if container := t.ContainingNode(param); t.IsKind(container, ast.KindSimpleArrowFunctionExpression) {
		return r.breakpointSpanOfArrow(container)
	}
	if t.IsAmbient(param) {
		return None()
	}
	if t.Field(param, ast.FieldDotDotDot).IsValid() || t.Field(param, ast.FieldInitializer).IsValid() ||
		t.ItemCount(t.Field(param, ast.FieldModifiers)) > 0 {
		return r.spanOf(param)
	}
	return None()
}

func (r *resolver) breakpointSpanOfMemberVariable(member ast.ElementID) SpanInfo {
	t := r.tree
	if t.IsAmbient(member) {
		return None()
	}
	decl := t.Field(member, ast.FieldDeclarator)
	if !r.hasInitializer(decl) {
		return None()
	}
	return r.createSpan(member, t.Field(member, ast.FieldModifiers), decl)
}

func (r *resolver) breakpointSpanOfFor(stmt ast.ElementID) SpanInfo {
	t := r.tree
	if decl := t.Field(stmt, ast.FieldDeclaration); decl.IsValid() {
		return r.breakpointSpanOf(decl)
	}
	init := t.Field(stmt, ast.FieldInitializer)
	if !init.IsValid() {
		return None()
	}
	if t.IsToken(init) {
		return r.spanOf(init)
	}
	return r.breakpointSpanOf(init)
}

func (r *resolver) breakpointSpanOfArrow(arrow ast.ElementID) SpanInfo {
	t := r.tree
	body := t.Field(arrow, ast.FieldBody)
	switch {
	case t.IsKind(body, ast.KindBlock):
		return r.firstStatementOf(body)
	case t.IsToken(body):
		return r.spanOf(body)
	default:
		return r.breakpointSpanOf(body)
	}
}

// ownsStatements lists containers under which a plain statement is its own breakpoint.
func ownsStatements(k ast.Kind) bool {
	switch k {
	case ast.KindModuleDeclaration, ast.KindClassDeclaration, ast.KindFunctionDeclaration,
		ast.KindConstructorDeclaration, ast.KindMemberFunctionDeclaration, ast.KindGetAccessor,
		ast.KindSetAccessor, ast.KindBlock, ast.KindIfStatement, ast.KindElseClause,
		ast.KindForInStatement, ast.KindForStatement, ast.KindWhileStatement, ast.KindDoStatement,
		ast.KindSwitchStatement, ast.KindCaseSwitchClause, ast.KindDefaultSwitchClause,
		ast.KindWithStatement, ast.KindTryStatement, ast.KindCatchClause, ast.KindFinallyClause,
		ast.KindLabeledStatement:
		return true
	default:
		return false
	}
}

func (r *resolver) breakpointSpanOfStatement(stmt ast.ElementID) SpanInfo {
	t := r.tree
	k := t.Kind(stmt)
	if k == ast.KindEmptyStatement {
		return None()
	}
	if container := t.ContainingNode(stmt); t.Kind(container).IsStatement() && !ownsStatements(t.Kind(container)) {
		return r.breakpointSpanOf(container)
	}
	switch k {
	case ast.KindExpressionStatement:
		return r.spanOf(t.Field(stmt, ast.FieldExpression))
	case ast.KindReturnStatement, ast.KindThrowStatement:
		return r.createSpan(stmt, t.Field(stmt, ast.FieldKeyword), t.Field(stmt, ast.FieldExpression))
	case ast.KindBreakStatement, ast.KindContinueStatement:
		return r.createSpan(stmt, t.Field(stmt, ast.FieldKeyword), t.Field(stmt, ast.FieldLabel))
	case ast.KindDebuggerStatement:
		return r.spanOf(t.Field(stmt, ast.FieldKeyword))
	}
	return r.spanOf(stmt)
}

// breakpointSpanOfExpression keeps an expression only where it is a clause of its
// own: a for-loop header part or a concise arrow body. A comma expression there
// binds to its left operand.
func (r *resolver) breakpointSpanOfExpression(expr ast.ElementID) SpanInfo {
	t := r.tree
	if !r.isClauseExpression(expr) {
		return r.escalate(expr)
	}
	if t.IsKind(expr, ast.KindCommaExpression) {
		left := t.Field(expr, ast.FieldLeft)
		if t.IsToken(left) {
			return r.spanOf(left)
		}
		return r.breakpointSpanOf(left)
	}
	return r.spanOf(expr)
}

// isClauseExpression reports whether expr, looking through enclosing comma
// expressions, fills a for-loop clause or a concise arrow body.
func (r *resolver) isClauseExpression(expr ast.ElementID) bool {
	t := r.tree
	cur := r.commaChainTop(expr)
	switch k := t.Kind(t.Parent(cur)); {
	case k == ast.KindForStatement:
		switch t.FieldOf(cur) {
		case ast.FieldInitializer, ast.FieldCondition, ast.FieldIncrementor:
			return true
		}
	case k.IsArrowFunction():
		return t.FieldOf(cur) == ast.FieldBody && !t.IsKind(cur, ast.KindBlock)
	}
	return false
}

// commaChainTop returns the outermost comma expression holding expr as an
// operand, or expr itself. Memoized like enclosingTypeAnnotation.
func (r *resolver) commaChainTop(expr ast.ElementID) ast.ElementID {
	t := r.tree
	top := expr
	var path []ast.ElementID
	for p := t.Parent(expr); t.IsKind(p, ast.KindCommaExpression); p = t.Parent(p) {
		if memo, ok := r.commaTop[p]; ok {
			top = memo
			break
		}
		path = append(path, p)
		top = p
	}
	for _, p := range path {
		r.commaTop[p] = top
	}
	return top
}

func isExpressionKind(k ast.Kind) bool {
	return k >= ast.KindBinaryExpression && k <= ast.KindSimpleArrowFunctionExpression
}
