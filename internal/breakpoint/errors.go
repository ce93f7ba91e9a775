package breakpoint

import (
	"errors"
	"fmt"

	"stopline/internal/ast"
)

// ErrInvariant is matched by every *InvariantError.
var ErrInvariant = errors.New("breakpoint: tree invariant violated")

// InvariantError reports a tree shape the resolver cannot accept, such as a
// function expression without a body. It points at a parser bug, not at a bad caret.
type InvariantError struct {
	Element ast.ElementID
	Kind    ast.Kind
	Reason  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("breakpoint: %s (%v #%d)", e.Reason, e.Kind, e.Element)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// invariantViolation is the panic payload used inside the resolver; Resolve turns it into *InvariantError.
type invariantViolation struct {
	id     ast.ElementID
	kind   ast.Kind
	reason string
}

func (r *resolver) violate(id ast.ElementID, reason string) {
	panic(invariantViolation{id: id, kind: r.tree.Kind(id), reason: reason})
}
