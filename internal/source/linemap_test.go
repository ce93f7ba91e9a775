package source

import (
	"testing"
)

func TestLineMapLineOf(t *testing.T) {
	m := NewLineMap([]byte("ab\ncd\n\nef"))
	tests := []struct {
		name string
		off  uint32
		want uint32
	}{
		{"start of file", 0, 1},
		{"inside first line", 1, 1},
		{"first newline belongs to first line", 2, 1},
		{"start of second line", 3, 2},
		{"second newline", 5, 2},
		{"empty third line", 6, 3},
		{"last line", 7, 4},
		{"end of content", 9, 4},
		{"past the end", 100, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.LineOf(tt.off); got != tt.want {
				t.Errorf("LineOf(%d): expected %d, got %d", tt.off, tt.want, got)
			}
		})
	}
}

func TestLineMapBounds(t *testing.T) {
	m := NewLineMap([]byte("a\nb\n"))
	if m.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", m.LineCount())
	}
	if start, ok := m.LineStart(2); !ok || start != 2 {
		t.Errorf("LineStart(2): expected 2, got %d (ok=%v)", start, ok)
	}
	if end, ok := m.LineEnd(2); !ok || end != 3 {
		t.Errorf("LineEnd(2): expected 3, got %d (ok=%v)", end, ok)
	}
	if end, ok := m.LineEnd(3); !ok || end != 4 {
		t.Errorf("LineEnd(3): expected 4, got %d (ok=%v)", end, ok)
	}
	if _, ok := m.LineStart(0); ok {
		t.Error("expected line 0 to be rejected")
	}
	if _, ok := m.LineStart(4); ok {
		t.Error("expected line 4 to be rejected")
	}
}

func TestLineMapEmpty(t *testing.T) {
	m := NewLineMap(nil)
	if m.LineCount() != 1 {
		t.Fatalf("expected a single line, got %d", m.LineCount())
	}
	if got := m.LineCol(0); got != (LineCol{Line: 1, Col: 1}) {
		t.Fatalf("unexpected line/col %+v", got)
	}
}
