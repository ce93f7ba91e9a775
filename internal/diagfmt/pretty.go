package diagfmt

import (
	"fmt"
	"io"

	"stopline/internal/diag"
	"stopline/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := d.Severity.String()
	switch d.Severity {
	case diag.SevError:
		sev = pal.err(sev)
	case diag.SevWarning:
		sev = pal.warn(sev)
	default:
		sev = pal.info(sev)
	}

	f := lookup(fs, d.Primary)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}
	pos := f.Lines.LineCol(d.Primary.Start)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		pal.path(formatPath(f, fs, opts.PathMode)), pos.Line, pos.Col, sev, d.Code.ID(), d.Message)
	writeExcerpt(w, f, d.Primary, int(opts.Context), int(opts.Width), pal)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nf := lookup(fs, note.Span)
		if nf == nil {
			fmt.Fprintf(w, "  %s %s\n", pal.note("note:"), note.Msg)
			continue
		}
		npos := nf.Lines.LineCol(note.Span.Start)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note("note:"), formatPath(nf, fs, opts.PathMode), npos.Line, npos.Col, note.Msg)
	}
}
