package source

import (
	"testing"
)

func TestUTF16PositionRoundTrip(t *testing.T) {
	fs := NewFileSet()
	// 🙂 is two UTF-16 units and four bytes
	id := fs.AddVirtual("u.ts", []byte("var s = \"🙂\"; foo();\nbar();"))
	f := fs.Get(id)

	fooByte := uint32(len("var s = \"🙂\"; "))
	pos := f.PositionForOffset(fooByte)
	if pos != (Position{Line: 0, Character: 14}) {
		t.Fatalf("unexpected position %+v", pos)
	}
	if off := f.OffsetForPosition(pos); off != fooByte {
		t.Fatalf("expected offset %d, got %d", fooByte, off)
	}

	if off := f.OffsetForPosition(Position{Line: 1, Character: 0}); off != fooByte+7 {
		t.Fatalf("expected start of second line, got %d", off)
	}
	if off := f.OffsetForPosition(Position{Line: 9, Character: 0}); off != uint32(len(f.Content)) {
		t.Fatalf("expected clamp to content end, got %d", off)
	}
	if off := f.OffsetForPosition(Position{Line: 1, Character: 99}); off != uint32(len(f.Content)) {
		t.Fatalf("expected clamp to line end, got %d", off)
	}
}
