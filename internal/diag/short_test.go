package diag

import (
	"testing"

	"stopline/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")

	userFile := fs.Add("/workspace/testdata/sample.ts", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     BrkNoLocation,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
				{Span: source.Span{File: 99, Start: 0, End: 0}, Msg: "unknown file"},
			},
		},
	}

	expected := "error SYN2001 testdata/sample.ts:1:1 first line second\n" +
		"note SYN2001 testdata/sample.ts:2:1 note line\n" +
		"warning BRK3001 testdata/sample.ts:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 5, End: 6}, "b", nil)
	r.Report(LexUnknownChar, SevError, source.Span{Start: 1, End: 2}, "a", nil)
	r.Report(LexUnknownChar, SevError, source.Span{Start: 0, End: 1}, "dropped", nil)

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	bag.Sort()
	if bag.Items()[0].Message != "a" {
		t.Fatalf("expected sorted order, got %+v", bag.Items())
	}
	if !bag.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:  "LEX1001",
		SynExpectBody:   "SYN2011",
		BrkInvariant:    "BRK3002",
		IOLoadFileError: "IO4001",
		UnknownCode:     "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d: expected %s, got %s", code, want, got)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"info", SevInfo, false},
		{" Warning ", SevWarning, false},
		{"warn", SevWarning, false},
		{"ERROR", SevError, false},
		{"fatal", SevInfo, true},
		{"", SevInfo, true},
	}
	for _, tc := range tests {
		got, err := ParseSeverity(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseSeverity(%q) = %v, %v", tc.in, got, err)
		}
	}
	if SevWarning.String() != "WARNING" || SevWarning.Label() != "warning" || Severity(9).Label() != "unknown" {
		t.Fatal("unexpected severity names")
	}
}

func TestDropBelow(t *testing.T) {
	bag := NewBag(0)
	bag.Add(New(SevInfo, BrkDeclarationFile, source.Span{}, "declaration file"))
	bag.Add(New(SevError, SynExpectBody, source.Span{Start: 3, End: 4}, "expected body"))
	bag.Add(New(SevWarning, LexUnknownChar, source.Span{Start: 1, End: 2}, "odd char"))

	bag.DropBelow(SevWarning)
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Severity < SevWarning {
			t.Fatalf("kept %v", d.Severity)
		}
	}
	bag.DropBelow(SevError)
	if bag.Len() != 1 || !bag.HasErrors() {
		t.Fatalf("errors must survive any floor, got %d", bag.Len())
	}
}
