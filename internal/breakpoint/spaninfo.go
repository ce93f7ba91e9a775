package breakpoint

import (
	"fmt"

	"stopline/internal/ast"
	"stopline/internal/source"
)

// SpanInfo is the outcome of a resolution: a span, or none at all (the zero value).
type SpanInfo struct {
	span  source.Span
	valid bool
}

func Some(sp source.Span) SpanInfo { return SpanInfo{span: sp, valid: true} }

func None() SpanInfo { return SpanInfo{} }

func (s SpanInfo) Valid() bool { return s.valid }

// Span returns the breakpoint span; it is the zero Span when !Valid().
func (s SpanInfo) Span() source.Span { return s.span }

func (s SpanInfo) Start() uint32 { return s.span.Start }

func (s SpanInfo) End() uint32 { return s.span.End }

func (s SpanInfo) String() string {
	if !s.valid {
		return "none"
	}
	return fmt.Sprintf("%d..%d", s.span.Start, s.span.End)
}

// spanOf is the trivia-free span of a single element.
func (r *resolver) spanOf(id ast.ElementID) SpanInfo {
	sp, ok := r.tree.Span(id)
	if !ok {
		return None()
	}
	return Some(sp)
}

// createSpan covers children from the first to the last one that has tokens.
// Shared children only count when nothing else is left. Without children the
// parent's own span is used.
func (r *resolver) createSpan(parent ast.ElementID, children ...ast.ElementID) SpanInfo {
	var spans, shared []source.Span
	for _, c := range children {
		if !c.IsValid() {
			continue
		}
		sp, ok := r.tree.Span(c)
		if !ok {
			continue
		}
		if r.tree.Get(c).Shared {
			shared = append(shared, sp)
			continue
		}
		spans = append(spans, sp)
	}
	if len(spans) == 0 {
		spans = shared
	}
	if len(spans) == 0 {
		return r.spanOf(parent)
	}
	return Some(spans[0].Cover(spans[len(spans)-1]))
}

// withLimChar spans from the start of from up to end.
func (r *resolver) withLimChar(from ast.ElementID, end uint32) SpanInfo {
	sp, ok := r.tree.Span(from)
	if !ok {
		return None()
	}
	sp.End = end
	return Some(sp)
}
