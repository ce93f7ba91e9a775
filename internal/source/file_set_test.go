package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.ts", []byte("hello world"), 0)
	id2 := fs.Add("test.ts", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("test.ts")
	if !ok || latest != id2 {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", id2, latest, ok)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("old version must stay readable, got %q", fs.Get(id1).Content)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ts", []byte("var a;\n  foo();\n"))
	start, end := fs.Resolve(Span{File: id, Start: 9, End: 14})
	if start != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("unexpected start %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 8}) {
		t.Errorf("unexpected end %+v", end)
	}
	if got := fs.Get(id).GetLine(2); got != "  foo();" {
		t.Errorf("unexpected line text %q", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.ts")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Fatalf("expected normalized content, got %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
}

func TestLoadUTF16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.ts")
	// "x;\n" as UTF-16LE with BOM
	raw := []byte{0xFF, 0xFE, 'x', 0, ';', 0, '\n', 0}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x;\n" {
		t.Fatalf("expected decoded content, got %q", f.Content)
	}
	if f.Flags&FileDecodedUTF16 == 0 {
		t.Fatal("expected FileDecodedUTF16 flag")
	}
}

func TestIsDeclarationFile(t *testing.T) {
	fs := NewFileSet()
	decl := fs.Get(fs.AddVirtual("lib/node.d.ts", nil))
	plain := fs.Get(fs.AddVirtual("lib/node.ts", nil))
	if !decl.IsDeclarationFile() {
		t.Error("expected .d.ts to be a declaration file")
	}
	if plain.IsDeclarationFile() {
		t.Error("expected .ts not to be a declaration file")
	}
}
