package ast

// Element is one entry of the tree arena. Children are owned top-down;
// Parent is a plain back handle used only for upward navigation.
type Element struct {
	Class  Class
	Kind   Kind
	Parent ElementID
	// Shared marks elements reused verbatim from an earlier tree version.
	Shared bool
	// Children holds node slots (see Layout), list items, or items interleaved
	// with separators for separated lists. Tokens have none.
	Children []ElementID
	tok      int32 // index into Tree.tokens for ClassToken, -1 otherwise
	// first/last token index under the element, -1 for elements without tokens.
	// Filled bottom-up by the builder so spans cost O(1).
	first, last int32
	ambient     bool // set by Builder.Finish
}

func (e *Element) IsNode() bool  { return e != nil && e.Class == ClassNode }
func (e *Element) IsToken() bool { return e != nil && e.Class == ClassToken }
func (e *Element) IsList() bool {
	return e != nil && (e.Class == ClassList || e.Class == ClassSeparatedList)
}
