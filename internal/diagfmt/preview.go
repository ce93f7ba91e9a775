package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"stopline/internal/source"
)

const tabWidth = 4

// palette holds the colour functions of one rendering pass.
type palette struct {
	err, warn, info, note, caret, gutter, path func(a ...any) string
}

func paint(enabled bool, attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func newPalette(enabled bool) palette {
	return palette{
		err:    paint(enabled, color.FgRed, color.Bold),
		warn:   paint(enabled, color.FgYellow, color.Bold),
		info:   paint(enabled, color.FgCyan, color.Bold),
		note:   paint(enabled, color.FgBlue),
		caret:  paint(enabled, color.FgGreen, color.Bold),
		gutter: paint(enabled, color.FgHiBlack),
		path:   paint(enabled, color.Bold),
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// truncate cuts s to width display cells; 0 means no limit.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// writeExcerpt prints `context` lines before the span's first line, the line
// itself and a ^~~~ underline of the span's part on that line.
func writeExcerpt(w io.Writer, f *source.File, span source.Span, context, width int, pal palette) {
	start := f.Lines.LineCol(span.Start)
	line := start.Line
	first := line
	for i := 0; i < context && first > 1; i++ {
		first--
	}
	numWidth := len(fmt.Sprint(line))
	for l := first; l <= line; l++ {
		text := expandTabs(f.GetLine(l))
		fmt.Fprintf(w, " %s %s %s\n", pal.gutter(fmt.Sprintf("%*d", numWidth, l)), pal.gutter("|"), truncate(text, width))
	}

	lineStart, _ := f.Lines.LineStart(line)
	lineEnd, _ := f.Lines.LineEnd(line)
	from := min(max(span.Start, lineStart), lineEnd)
	end := min(max(span.End, from), lineEnd)
	prefix := expandTabs(string(f.Content[lineStart:from]))
	covered := expandTabs(string(f.Content[from:end]))
	pad := runewidth.StringWidth(prefix)
	n := max(runewidth.StringWidth(covered), 1)
	if width > 0 && pad+n > width {
		n = max(width-pad, 1)
	}
	underline := "^" + strings.Repeat("~", n-1)
	fmt.Fprintf(w, " %s %s %s%s\n", strings.Repeat(" ", numWidth), pal.gutter("|"), strings.Repeat(" ", pad), pal.caret(underline))
}
