package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// LineMap records the start offset of every line of one file version.
// It is built once and never changed afterwards, so it can be shared between goroutines.
type LineMap struct {
	starts []uint32 // starts[0] == 0, sorted ascending
	length uint32
}

// NewLineMap scans content for '\n' and records where each line begins.
func NewLineMap(content []byte) *LineMap {
	length, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	starts := make([]uint32, 1, 1+len(content)/32)
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return &LineMap{starts: starts, length: length}
}

// LineCount returns the number of lines; a trailing newline opens an empty last line.
func (m *LineMap) LineCount() uint32 {
	return uint32(len(m.starts))
}

// LineOf returns the 1-based line containing off. Offsets past the end map to the last line.
func (m *LineMap) LineOf(off uint32) uint32 {
	// first start strictly greater than off; the line is the one before it
	idx := sort.Search(len(m.starts), func(i int) bool { return m.starts[i] > off })
	if idx == 0 {
		return 1
	}
	return uint32(idx)
}

// LineStart returns the offset where the 1-based line begins.
func (m *LineMap) LineStart(line uint32) (uint32, bool) {
	if line == 0 || line > m.LineCount() {
		return 0, false
	}
	return m.starts[line-1], true
}

// LineEnd returns the offset of the line terminator (or end of content) of the 1-based line.
func (m *LineMap) LineEnd(line uint32) (uint32, bool) {
	if line == 0 || line > m.LineCount() {
		return 0, false
	}
	if line == m.LineCount() {
		return m.length, true
	}
	return m.starts[line] - 1, true
}

// LineCol converts an offset into a 1-based line and byte column.
func (m *LineMap) LineCol(off uint32) LineCol {
	if off > m.length {
		off = m.length
	}
	line := m.LineOf(off)
	return LineCol{Line: line, Col: off - m.starts[line-1] + 1}
}
