package ast

import "stopline/internal/token"

// HasModifier reports whether node id carries modifier kind m in its Modifiers list.
func (t *Tree) HasModifier(id ElementID, m token.Kind) bool {
	mods := t.Field(id, FieldModifiers)
	for _, c := range t.Children(mods) {
		if t.TokenKind(c) == m {
			return true
		}
	}
	return false
}

// IsAmbient reports whether id produces no emitted code: it or an enclosing
// declaration is marked 'declare', or it sits inside an interface.
func (t *Tree) IsAmbient(id ElementID) bool {
	e := t.Get(id)
	return e != nil && e.ambient
}

func (t *Tree) declaresAmbient(id ElementID) bool {
	e := t.Get(id)
	if !e.IsNode() {
		return false
	}
	return e.Kind == KindInterfaceDeclaration || t.HasModifier(id, token.KwDeclare)
}

// markAmbient propagates the ambient flag top-down once; the tree is immutable afterwards.
func (t *Tree) markAmbient() {
	stack := []ElementID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := t.Get(id)
		if e == nil {
			continue
		}
		if p := t.Get(e.Parent); p != nil && p.ambient {
			e.ambient = true
		} else {
			e.ambient = t.declaresAmbient(id)
		}
		for _, c := range e.Children {
			if c.IsValid() {
				stack = append(stack, c)
			}
		}
	}
}

// IsDeclarationsOnly reports whether no code is emitted for the file at all:
// a *.d.ts file, or a file whose top-level elements are all ambient or interfaces.
func (t *Tree) IsDeclarationsOnly() bool {
	if t.File != nil && t.File.IsDeclarationFile() {
		return true
	}
	elems := t.Field(t.root, FieldElements)
	n := t.ItemCount(elems)
	if n == 0 {
		return false
	}
	for i := range n {
		if !t.IsAmbient(t.Item(elems, i)) {
			return false
		}
	}
	return true
}
