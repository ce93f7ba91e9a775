package fuzztests

import (
	"testing"

	"stopline/internal/breakpoint"
)

// maxOffsets bounds the number of carets tried per input.
const maxOffsets = 512

func FuzzResolverSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		tree := parseInput(input)

		starts := make(map[uint32]bool)
		ends := make(map[uint32]bool)
		for _, id := range tree.Tokens() {
			tok, _ := tree.Token(id)
			starts[tok.Span.Start] = true
			ends[tok.Span.End] = true
		}

		step := max(1, (len(input)+1)/maxOffsets)
		for off := 0; off <= len(input); off += step {
			info, err := breakpoint.Resolve(tree, uint32(off))
			// parser output always carries the bodies the resolver relies on
			if err != nil {
				t.Fatalf("offset %d: %v in %q", off, err, truncateForLog(input, 200))
			}
			if !info.Valid() {
				continue
			}
			if info.Start() > info.End() || int(info.End()) > len(input) {
				t.Fatalf("offset %d: span %v outside file of %d bytes", off, info, len(input))
			}
			if !starts[info.Start()] || !ends[info.End()] {
				t.Fatalf("offset %d: span %v does not sit on token boundaries in %q", off, info, truncateForLog(input, 200))
			}
			again, _ := breakpoint.Resolve(tree, uint32(off))
			if again != info {
				t.Fatalf("offset %d: resolve is not deterministic: %v then %v", off, info, again)
			}
		}
	})
}
