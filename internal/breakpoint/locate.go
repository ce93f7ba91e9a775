package breakpoint

import (
	"sort"

	"stopline/internal/ast"
)

// FindToken returns the token whose full span (trivia included) contains offset.
// An offset on the boundary between two tokens belongs to the one starting there;
// offsets at or past the end of the file belong to the end-of-file token.
// Full spans of the token stream tile the file, so a binary search over their ends suffices.
func FindToken(tree *ast.Tree, offset uint32) ast.ElementID {
	toks := tree.Tokens()
	if len(toks) == 0 {
		return ast.NoElementID
	}
	idx := sort.Search(len(toks), func(i int) bool {
		tok, _ := tree.Token(toks[i])
		return tok.FullSpan().End > offset
	})
	if idx == len(toks) {
		return toks[len(toks)-1]
	}
	return toks[idx]
}
