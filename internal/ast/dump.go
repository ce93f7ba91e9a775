package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree: kinds, slot names and spans.
func (t *Tree) Dump(w io.Writer) error {
	var err error
	t.Walk(t.root, func(id ElementID, depth int) bool {
		if err != nil {
			return false
		}
		e := t.Get(id)
		var label string
		switch e.Class {
		case ClassToken:
			tok, _ := t.Token(id)
			label = fmt.Sprintf("%v %q", tok.Kind, tok.Text)
		case ClassNode:
			label = e.Kind.String()
		default:
			label = fmt.Sprintf("%v[%d]", e.Class, t.ItemCount(id))
		}
		if f := t.FieldOf(id); f != FieldNone {
			label = f.String() + ": " + label
		}
		if e.Shared {
			label += " (shared)"
		}
		sp, ok := t.Span(id)
		pos := "-"
		if ok {
			pos = fmt.Sprintf("%d..%d", sp.Start, sp.End)
		}
		_, err = fmt.Fprintf(w, "%s%s @%s\n", strings.Repeat("  ", depth), label, pos)
		return true
	})
	return err
}
