package ast

import (
	"fmt"

	"fortio.org/safecast"

	"stopline/internal/source"
	"stopline/internal/token"
)

// Builder allocates elements bottom-up. Tokens must be added in source order.
// Finish freezes the result into an immutable Tree; the builder is unusable afterwards.
type Builder struct {
	file       *source.File
	elems      *Arena[Element]
	tokens     []token.Token
	tokenElems []ElementID
	done       bool
}

func NewBuilder(file *source.File, capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{
		file:       file,
		elems:      NewArena[Element](capHint),
		tokens:     make([]token.Token, 0, capHint/2),
		tokenElems: make([]ElementID, 0, capHint/2),
	}
}

func (b *Builder) alloc(e Element) ElementID {
	if b.done {
		panic("ast: builder used after Finish")
	}
	return ElementID(b.elems.Allocate(e))
}

// Token appends tok to the token stream and returns its element.
func (b *Builder) Token(tok token.Token) ElementID {
	if n := len(b.tokens); n > 0 && tok.Span.Start < b.tokens[n-1].Span.End {
		panic(fmt.Errorf("ast: token %v at %d added out of order", tok.Kind, tok.Span.Start))
	}
	idx, err := safecast.Conv[int32](len(b.tokens))
	if err != nil {
		panic(fmt.Errorf("ast: token count overflow: %w", err))
	}
	id := b.alloc(Element{Class: ClassToken, Kind: KindToken, tok: idx, first: idx, last: idx})
	b.tokens = append(b.tokens, tok)
	b.tokenElems = append(b.tokenElems, id)
	return id
}

// Node creates a node of kind k. children must follow Layout(k); absent slots are NoElementID.
func (b *Builder) Node(k Kind, children ...ElementID) ElementID {
	if len(children) != len(Layout(k)) {
		panic(fmt.Errorf("ast: %v expects %d children, got %d", k, len(Layout(k)), len(children)))
	}
	return b.parent(Element{Class: ClassNode, Kind: k, tok: -1}, children)
}

// List creates a plain list. Empty lists are marked shared, like the empty-list singleton
// an incremental parser would reuse.
func (b *Builder) List(items ...ElementID) ElementID {
	return b.parent(Element{Class: ClassList, Kind: KindList, Shared: len(items) == 0, tok: -1}, items)
}

// SeparatedList creates a list whose children alternate item, separator, item, ...
func (b *Builder) SeparatedList(children ...ElementID) ElementID {
	return b.parent(Element{Class: ClassSeparatedList, Kind: KindSeparatedList, Shared: len(children) == 0, tok: -1}, children)
}

func (b *Builder) parent(e Element, children []ElementID) ElementID {
	e.Children = append([]ElementID(nil), children...)
	e.first, e.last = -1, -1
	for _, c := range children {
		if !c.IsValid() {
			continue
		}
		child := b.elems.Get(uint32(c))
		if child == nil {
			panic(fmt.Errorf("ast: unknown child %d", c))
		}
		if child.first < 0 {
			continue
		}
		if e.first < 0 {
			e.first = child.first
		}
		e.last = child.last
	}
	id := b.alloc(e)
	for _, c := range children {
		if !c.IsValid() {
			continue
		}
		child := b.elems.Get(uint32(c))
		if child.Parent.IsValid() {
			panic(fmt.Errorf("ast: element %d already has parent %d", c, child.Parent))
		}
		child.Parent = id
	}
	return id
}

// MarkShared flags id as reused from a previous tree version.
func (b *Builder) MarkShared(id ElementID) {
	if e := b.elems.Get(uint32(id)); e != nil {
		e.Shared = true
	}
}

// Finish returns the immutable tree rooted at root.
func (b *Builder) Finish(root ElementID) *Tree {
	if b.elems.Get(uint32(root)) == nil {
		panic("ast: Finish with invalid root")
	}
	b.done = true
	t := &Tree{
		File:       b.file,
		root:       root,
		elems:      b.elems,
		tokens:     b.tokens,
		tokenElems: b.tokenElems,
	}
	t.markAmbient()
	return t
}
