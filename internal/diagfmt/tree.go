package diagfmt

import (
	"encoding/json"
	"io"

	"stopline/internal/ast"
	"stopline/internal/source"
)

// TreeNodeOutput is one element of `stopline parse --format json`.
type TreeNodeOutput struct {
	Type     string           `json:"type"`
	Kind     string           `json:"kind,omitempty"`
	Field    string           `json:"field,omitempty"`
	Span     *source.Span     `json:"span,omitempty"`
	Text     string           `json:"text,omitempty"`
	Shared   bool             `json:"shared,omitempty"`
	Children []TreeNodeOutput `json:"children,omitempty"`
}

// BuildTreeOutput converts the subtree rooted at id.
func BuildTreeOutput(tree *ast.Tree, id ast.ElementID) TreeNodeOutput {
	e := tree.Get(id)
	out := TreeNodeOutput{Type: e.Class.String(), Shared: e.Shared}
	if f := tree.FieldOf(id); f != ast.FieldNone {
		out.Field = f.String()
	}
	if sp, ok := tree.Span(id); ok {
		out.Span = &sp
	}
	switch e.Class {
	case ast.ClassToken:
		tok, _ := tree.Token(id)
		out.Kind = tok.Kind.String()
		out.Text = tok.Text
		return out
	case ast.ClassNode:
		out.Kind = e.Kind.String()
	}
	for _, child := range tree.Children(id) {
		if child == ast.NoElementID {
			continue
		}
		out.Children = append(out.Children, BuildTreeOutput(tree, child))
	}
	return out
}

// FormatTreeJSON writes the whole tree as nested JSON.
func FormatTreeJSON(w io.Writer, tree *ast.Tree) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeOutput(tree, tree.Root()))
}
