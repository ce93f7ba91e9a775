package source

import (
	"unicode/utf8"

	"fortio.org/safecast"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// OffsetForPosition converts an editor position (0-based line, UTF-16 column) into a byte offset.
// Positions past the end of a line clamp to the line end; lines past the end clamp to the content end.
func (f *File) OffsetForPosition(pos Position) uint32 {
	if f == nil || pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	content := f.Content
	if len(content) == 0 {
		return 0
	}
	contentLen := safeUint32(len(content))
	line := safeUint32(pos.Line) + 1
	lineStart, ok := f.Lines.LineStart(line)
	if !ok {
		return contentLen
	}
	lineEnd, _ := f.Lines.LineEnd(line)
	units := 0
	off := lineStart
	for off < lineEnd {
		r, size := utf8.DecodeRune(content[off:lineEnd])
		need := 1
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		off += safeUint32(size)
		if units == pos.Character {
			break
		}
	}
	return off
}

// PositionForOffset converts a byte offset into an editor position.
func (f *File) PositionForOffset(offset uint32) Position {
	if f == nil {
		return Position{}
	}
	contentLen := safeUint32(len(f.Content))
	if offset > contentLen {
		offset = contentLen
	}
	line := f.Lines.LineOf(offset)
	lineStart, _ := f.Lines.LineStart(line)
	units := 0
	for off := lineStart; off < offset; {
		r, size := utf8.DecodeRune(f.Content[off:offset])
		if off+safeUint32(size) > offset {
			break
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		off += safeUint32(size)
	}
	return Position{Line: int(line) - 1, Character: units}
}
