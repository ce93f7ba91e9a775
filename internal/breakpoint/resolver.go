package breakpoint

import (
	"stopline/internal/ast"
	"stopline/internal/source"
)

// resolver holds the state of one query. It is never shared between calls.
type resolver struct {
	tree       *ast.Tree
	lines      *source.LineMap
	callerLine uint32
	seen       map[ast.ElementID]struct{}      // tokens already dispatched
	annAt      map[ast.ElementID]ast.ElementID // outermost type annotation at or above an element
	commaTop   map[ast.ElementID]ast.ElementID // outermost comma expression of a chain
	depth      int
	maxDepth   int
}

func newResolver(tree *ast.Tree, lines *source.LineMap, callerLine uint32) *resolver {
	return &resolver{
		tree:       tree,
		lines:      lines,
		callerLine: callerLine,
		seen:       make(map[ast.ElementID]struct{}, 8),
		annAt:      make(map[ast.ElementID]ast.ElementID, 16),
		commaTop:   make(map[ast.ElementID]ast.ElementID),
		maxDepth:   4*int(tree.Len()) + 16,
	}
}

// Resolve returns the breakpoint span for a caret at offset, or None when no
// breakpoint can be placed there. A non-nil error is always an *InvariantError.
func Resolve(tree *ast.Tree, offset uint32) (info SpanInfo, err error) {
	if tree == nil || tree.File == nil || tree.IsDeclarationsOnly() {
		return None(), nil
	}
	tok := FindToken(tree, offset)
	if !tok.IsValid() || tree.IsAmbient(tok) {
		return None(), nil
	}
	lines := tree.File.Lines
	tokStart, _ := tree.Start(tok)
	callerLine := lines.LineOf(offset)
	if callerLine < lines.LineOf(tokStart) {
		return None(), nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			v, ok := rec.(invariantViolation)
			if !ok {
				panic(rec)
			}
			info = None()
			err = &InvariantError{Element: v.id, Kind: v.kind, Reason: v.reason}
		}
	}()
	r := newResolver(tree, lines, callerLine)
	return r.breakpointSpanOf(tok), nil
}

// breakpointSpanOf is the single dispatch point for tokens and nodes.
func (r *resolver) breakpointSpanOf(id ast.ElementID) SpanInfo {
	if !id.IsValid() {
		return None()
	}
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.maxDepth {
		r.violate(id, "resolution does not terminate")
	}

	if ann := r.enclosingTypeAnnotation(id); ann.IsValid() {
		if r.startsOnCallerLine(ann) {
			return r.breakpointSpanOfNode(ann)
		}
		return None()
	}

	e := r.tree.Get(id)
	switch {
	case e.IsToken():
		return r.breakpointSpanOfToken(id)
	case e.IsNode():
		return r.breakpointSpanOfNode(id)
	default:
		// списки сами по себе точек не дают
		return r.escalate(id)
	}
}

// escalate resolves the nearest enclosing node instead of id.
func (r *resolver) escalate(id ast.ElementID) SpanInfo {
	return r.breakpointSpanOf(r.tree.ContainingNode(id))
}

// enclosingTypeAnnotation returns the outermost type annotation strictly above id.
// Ancestors are memoized per query, so repeated escalation stays linear in depth.
func (r *resolver) enclosingTypeAnnotation(id ast.ElementID) ast.ElementID {
	start := r.tree.Parent(id)
	if !start.IsValid() {
		return ast.NoElementID
	}
	var path []ast.ElementID
	found := ast.NoElementID
	for p := start; p.IsValid(); p = r.tree.Parent(p) {
		if ann, ok := r.annAt[p]; ok {
			found = ann
			break
		}
		path = append(path, p)
	}
	// сверху вниз: первая встреченная аннотация и есть внешняя
	for i := len(path) - 1; i >= 0; i-- {
		if !found.IsValid() && r.tree.IsKind(path[i], ast.KindTypeAnnotation) {
			found = path[i]
		}
		r.annAt[path[i]] = found
	}
	return r.annAt[start]
}

func (r *resolver) lineOf(off uint32) uint32 { return r.lines.LineOf(off) }

// startLine is the line of the first token of id; 0 for elements without tokens.
func (r *resolver) startLine(id ast.ElementID) uint32 {
	start, ok := r.tree.Start(id)
	if !ok {
		return 0
	}
	return r.lineOf(start)
}

func (r *resolver) startsOnCallerLine(id ast.ElementID) bool {
	return r.startLine(id) == r.callerLine
}

// canHaveBreakpointInBlock: a block that emits code and is not empty.
func (r *resolver) canHaveBreakpointInBlock(block ast.ElementID) bool {
	if !r.tree.IsKind(block, ast.KindBlock) {
		return false
	}
	if r.tree.ItemCount(r.tree.Field(block, ast.FieldStatements)) == 0 {
		return false
	}
	return !r.tree.IsAmbient(block)
}

func (r *resolver) firstStatementOf(block ast.ElementID) SpanInfo {
	if !r.canHaveBreakpointInBlock(block) {
		return None()
	}
	return r.firstChildOf(r.tree.Field(block, ast.FieldStatements))
}

func (r *resolver) lastStatementOf(block ast.ElementID) SpanInfo {
	if !r.canHaveBreakpointInBlock(block) {
		return None()
	}
	return r.lastChildOf(r.tree.Field(block, ast.FieldStatements))
}

// firstChildOf resolves the first item of a list; a nested block descends into its statements.
func (r *resolver) firstChildOf(list ast.ElementID) SpanInfo {
	if r.tree.ItemCount(list) == 0 {
		return None()
	}
	return r.childOf(r.tree.Item(list, 0), r.firstStatementOf)
}

func (r *resolver) lastChildOf(list ast.ElementID) SpanInfo {
	n := r.tree.ItemCount(list)
	if n == 0 {
		return None()
	}
	return r.childOf(r.tree.Item(list, n-1), r.lastStatementOf)
}

func (r *resolver) childOf(child ast.ElementID, inBlock func(ast.ElementID) SpanInfo) SpanInfo {
	if r.tree.IsKind(child, ast.KindBlock) {
		return inBlock(child)
	}
	return r.breakpointSpanOf(child)
}
