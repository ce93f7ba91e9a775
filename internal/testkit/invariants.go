// Package testkit checks structural invariants of parsed trees. Tests and
// fuzz targets call it after every parse.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"stopline/internal/ast"
	"stopline/internal/token"
)

// CheckTree runs every invariant and joins the violations it finds.
func CheckTree(tree *ast.Tree) error {
	if tree == nil || tree.File == nil {
		return errors.New("nil tree or file")
	}
	return errors.Join(
		CheckTokensTile(tree),
		CheckStructure(tree),
		CheckSpansNest(tree),
	)
}

// CheckTokensTile verifies that the full spans of the tree's tokens, in order,
// cover the file content exactly with no gaps or overlaps, and that the last token is EOF.
func CheckTokensTile(tree *ast.Tree) error {
	size, err := safecast.Conv[uint32](len(tree.File.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	toks := tree.Tokens()
	if len(toks) == 0 {
		return errors.New("tree has no tokens")
	}
	var pos uint32
	for i, id := range toks {
		tok, ok := tree.Token(id)
		if !ok {
			return fmt.Errorf("token #%d (element %d) is not a token", i, id)
		}
		full := tok.FullSpan()
		if full.Start != pos {
			return fmt.Errorf("token #%d %v %q: full span starts at %d, want %d", i, tok.Kind, tok.Text, full.Start, pos)
		}
		if tok.Span.Start < full.Start || tok.Span.End > full.End {
			return fmt.Errorf("token #%d %v: span %v outside full span %v", i, tok.Kind, tok.Span, full)
		}
		pos = full.End
	}
	if pos != size {
		return fmt.Errorf("tokens end at %d, file has %d bytes", pos, size)
	}
	last, _ := tree.Token(toks[len(toks)-1])
	if last.Kind != token.EOF {
		return fmt.Errorf("last token is %v, want EOF", last.Kind)
	}
	return nil
}

// CheckStructure verifies parent links, node layouts and separated-list alternation.
func CheckStructure(tree *ast.Tree) error {
	var errs []error
	root := tree.Root()
	if tree.Parent(root).IsValid() {
		errs = append(errs, fmt.Errorf("root %d has a parent", root))
	}
	tree.Walk(root, func(id ast.ElementID, _ int) bool {
		e := tree.Get(id)
		for i, c := range e.Children {
			if !c.IsValid() {
				if e.IsList() {
					errs = append(errs, fmt.Errorf("%v %d: absent child at %d", e.Class, id, i))
				}
				continue
			}
			if p := tree.Parent(c); p != id {
				errs = append(errs, fmt.Errorf("element %d: parent is %d, want %d", c, p, id))
			}
		}
		switch e.Class {
		case ast.ClassNode:
			if want := len(ast.Layout(e.Kind)); len(e.Children) != want {
				errs = append(errs, fmt.Errorf("%v %d: %d children, layout has %d", e.Kind, id, len(e.Children), want))
			}
		case ast.ClassSeparatedList:
			for i, c := range e.Children {
				if i%2 == 1 && !tree.IsToken(c) {
					errs = append(errs, fmt.Errorf("separated list %d: separator at %d is not a token", id, i))
				}
			}
		case ast.ClassList, ast.ClassToken:
		}
		if e.Shared && len(e.Children) != 0 {
			errs = append(errs, fmt.Errorf("%v %d: shared element with children", e.Class, id))
		}
		return true
	})
	return errors.Join(errs...)
}

// CheckSpansNest verifies that every child span lies within its parent's span
// and that siblings appear in source order.
func CheckSpansNest(tree *ast.Tree) error {
	var errs []error
	tree.Walk(tree.Root(), func(id ast.ElementID, _ int) bool {
		outer, ok := tree.Span(id)
		if !ok {
			return true
		}
		var prevEnd uint32
		for _, c := range tree.Children(id) {
			inner, ok := tree.Span(c)
			if !ok {
				continue
			}
			if !inner.Within(outer) {
				errs = append(errs, fmt.Errorf("element %d span %v outside parent %d span %v", c, inner, id, outer))
			}
			if inner.Start < prevEnd {
				errs = append(errs, fmt.Errorf("element %d starts at %d before previous sibling end %d", c, inner.Start, prevEnd))
			}
			prevEnd = inner.End
		}
		return true
	})
	return errors.Join(errs...)
}
