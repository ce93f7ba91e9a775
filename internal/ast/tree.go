package ast

import (
	"stopline/internal/source"
	"stopline/internal/token"
)

// Tree is an immutable syntax tree for one source file. All methods are safe
// for concurrent use.
type Tree struct {
	File       *source.File
	root       ElementID
	elems      *Arena[Element]
	tokens     []token.Token
	tokenElems []ElementID
}

func (t *Tree) Root() ElementID { return t.root }

// Len returns the number of elements in the tree.
func (t *Tree) Len() uint32 { return t.elems.Len() }

// Get returns the element for id, or nil. The result must not be modified.
func (t *Tree) Get(id ElementID) *Element {
	return t.elems.Get(uint32(id))
}

func (t *Tree) Kind(id ElementID) Kind {
	if e := t.Get(id); e != nil {
		return e.Kind
	}
	return KindInvalid
}

func (t *Tree) IsNode(id ElementID) bool  { return t.Get(id).IsNode() }
func (t *Tree) IsToken(id ElementID) bool { return t.Get(id).IsToken() }

// IsKind reports whether id is a node of kind k.
func (t *Tree) IsKind(id ElementID, k Kind) bool {
	e := t.Get(id)
	return e.IsNode() && e.Kind == k
}

// Token returns the token behind a token element.
func (t *Tree) Token(id ElementID) (token.Token, bool) {
	e := t.Get(id)
	if !e.IsToken() {
		return token.Token{}, false
	}
	return t.tokens[e.tok], true
}

// TokenKind returns the token kind of a token element, or token.Invalid.
func (t *Tree) TokenKind(id ElementID) token.Kind {
	if tok, ok := t.Token(id); ok {
		return tok.Kind
	}
	return token.Invalid
}

// Tokens returns the ordered token elements of the tree, ending with EOF when present.
func (t *Tree) Tokens() []ElementID { return t.tokenElems }

func (t *Tree) Parent(id ElementID) ElementID {
	if e := t.Get(id); e != nil {
		return e.Parent
	}
	return NoElementID
}

// ContainingNode returns the nearest ancestor that is a node (lists are skipped).
func (t *Tree) ContainingNode(id ElementID) ElementID {
	for p := t.Parent(id); p.IsValid(); p = t.Parent(p) {
		if t.IsNode(p) {
			return p
		}
	}
	return NoElementID
}

// Field returns the child stored in slot f of node id, or NoElementID.
func (t *Tree) Field(id ElementID, f Field) ElementID {
	e := t.Get(id)
	if !e.IsNode() || !HasField(e.Kind, f) {
		return NoElementID
	}
	return e.Children[fieldIndex[e.Kind][f]]
}

// FieldOf reports which slot of its parent node id occupies.
func (t *Tree) FieldOf(id ElementID) Field {
	p := t.Get(t.Parent(id))
	if !p.IsNode() {
		return FieldNone
	}
	for i, c := range p.Children {
		if c == id {
			return layouts[p.Kind][i]
		}
	}
	return FieldNone
}

// Children returns the raw children; for separated lists this includes separators.
func (t *Tree) Children(id ElementID) []ElementID {
	if e := t.Get(id); e != nil {
		return e.Children
	}
	return nil
}

// ChildIndex returns the raw position of id among its parent's children, or -1.
func (t *Tree) ChildIndex(id ElementID) int {
	for i, c := range t.Children(t.Parent(id)) {
		if c == id {
			return i
		}
	}
	return -1
}

// ItemCount returns the number of non-separator elements of a list.
func (t *Tree) ItemCount(list ElementID) int {
	e := t.Get(list)
	switch {
	case e == nil:
		return 0
	case e.Class == ClassSeparatedList:
		return (len(e.Children) + 1) / 2
	case e.Class == ClassList:
		return len(e.Children)
	default:
		return 0
	}
}

// Item returns the i-th non-separator element of a list.
func (t *Tree) Item(list ElementID, i int) ElementID {
	e := t.Get(list)
	if e == nil || i < 0 || i >= t.ItemCount(list) {
		return NoElementID
	}
	if e.Class == ClassSeparatedList {
		return e.Children[2*i]
	}
	return e.Children[i]
}

// IsSeparator reports whether id is a separator token inside a separated list.
func (t *Tree) IsSeparator(id ElementID) bool {
	p := t.Get(t.Parent(id))
	return p != nil && p.Class == ClassSeparatedList && t.ChildIndex(id)%2 == 1
}

// FirstToken returns the first token element under id, or NoElementID for empty elements.
func (t *Tree) FirstToken(id ElementID) ElementID {
	e := t.Get(id)
	if e == nil || e.first < 0 {
		return NoElementID
	}
	return t.tokenElems[e.first]
}

// LastToken returns the last token element under id, or NoElementID for empty elements.
func (t *Tree) LastToken(id ElementID) ElementID {
	e := t.Get(id)
	if e == nil || e.last < 0 {
		return NoElementID
	}
	return t.tokenElems[e.last]
}

// Span is the trivia-free extent of id. Elements without tokens have no span.
func (t *Tree) Span(id ElementID) (source.Span, bool) {
	first, last := t.FirstToken(id), t.LastToken(id)
	if !first.IsValid() {
		return source.Span{}, false
	}
	a, _ := t.Token(first)
	z, _ := t.Token(last)
	return source.Span{File: a.Span.File, Start: a.Span.Start, End: z.Span.End}, true
}

// FullSpan is Span extended by leading trivia of the first token and trailing trivia of the last.
func (t *Tree) FullSpan(id ElementID) (source.Span, bool) {
	first, last := t.FirstToken(id), t.LastToken(id)
	if !first.IsValid() {
		return source.Span{}, false
	}
	a, _ := t.Token(first)
	z, _ := t.Token(last)
	return source.Span{File: a.Span.File, Start: a.FullSpan().Start, End: z.FullSpan().End}, true
}

// Start returns the first offset of id's span.
func (t *Tree) Start(id ElementID) (uint32, bool) {
	sp, ok := t.Span(id)
	return sp.Start, ok
}

// PrevToken returns the token element preceding the token id in source order.
func (t *Tree) PrevToken(id ElementID) ElementID {
	e := t.Get(id)
	if !e.IsToken() || e.tok == 0 {
		return NoElementID
	}
	return t.tokenElems[e.tok-1]
}

// NextToken returns the token element following the token id in source order.
func (t *Tree) NextToken(id ElementID) ElementID {
	e := t.Get(id)
	if !e.IsToken() || int(e.tok)+1 >= len(t.tokenElems) {
		return NoElementID
	}
	return t.tokenElems[e.tok+1]
}

// Text returns the source text of id's span.
func (t *Tree) Text(id ElementID) string {
	sp, ok := t.Span(id)
	if !ok || t.File == nil {
		return ""
	}
	return string(t.File.Content[sp.Start:sp.End])
}

// LineOf returns the 1-based line of an offset in the tree's file.
func (t *Tree) LineOf(off uint32) uint32 {
	return t.File.Lines.LineOf(off)
}

// Walk visits id and its descendants in pre-order. Returning false from fn skips the subtree.
func (t *Tree) Walk(id ElementID, fn func(id ElementID, depth int) bool) {
	t.walk(id, 0, fn)
}

func (t *Tree) walk(id ElementID, depth int, fn func(ElementID, int) bool) {
	e := t.Get(id)
	if e == nil || !fn(id, depth) {
		return
	}
	for _, c := range e.Children {
		t.walk(c, depth+1, fn)
	}
}
