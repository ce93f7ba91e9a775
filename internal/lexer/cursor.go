package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"stopline/internal/source"
)

// Cursor walks the bytes of one file.
//
// Lines end at '\n' only, the same rule source.LineMap uses, so every newline
// trivia the lexer produces is a line break of the map. Loading already turned
// CRLF into LF; a stray '\r' is plain whitespace.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", f.Path, err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) EOF() bool { return c.Off >= c.end }

// Peek читает текущий байт, 0 на EOF
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if n >= c.end-min(c.Off, c.end) {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump сдвигает курсор на байт и возвращает его
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatString consumes s only when the input continues with all of it.
func (c *Cursor) EatString(s string) bool {
	n := uint32(len(s)) //nolint:gosec // operator spellings are a few bytes
	if n > c.end-min(c.Off, c.end) || string(c.File.Content[c.Off:c.Off+n]) != s {
		return false
	}
	c.Off += n
	return true
}

// PeekRune decodes the rune at the cursor; size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.File.Content[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.end])
}

// BumpRune skips the rune at the cursor. Invalid UTF-8 advances one byte.
func (c *Cursor) BumpRune() {
	_, size := c.PeekRune()
	c.Off += uint32(size) //nolint:gosec // at most utf8.UTFMax
}

// SkipToEnd gives up on the rest of the file.
func (c *Cursor) SkipToEnd() { c.Off = c.end }

// SkipSpaces consumes horizontal whitespace and reports whether there was any.
func (c *Cursor) SkipSpaces() bool {
	start := c.Off
	for isSpace(c.Peek()) {
		c.Off++
	}
	return c.Off > start
}

// SkipNewlines consumes a run of line breaks.
func (c *Cursor) SkipNewlines() bool {
	start := c.Off
	for c.Peek() == '\n' {
		c.Off++
	}
	return c.Off > start
}

// SkipLine stops in front of the next line break, or at EOF.
func (c *Cursor) SkipLine() {
	for !c.EOF() && c.File.Content[c.Off] != '\n' {
		c.Off++
	}
}

// SkipBlockComment consumes the rest of a block comment whose "/*" was already
// eaten. multiline reports a line break inside: such a comment belongs to the
// next token rather than the trailing trivia of the previous one.
func (c *Cursor) SkipBlockComment() (closed, multiline bool) {
	for !c.EOF() {
		if c.EatString("*/") {
			return true, multiline
		}
		if c.Bump() == '\n' {
			multiline = true
		}
	}
	return false, multiline
}

// Mark is a saved cursor position.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom returns the span from m to the cursor.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset returns the cursor to m.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }
