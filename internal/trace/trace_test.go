package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Level
		err  bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	} {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.err || got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	Begin(tr, ScopeDriver, "scan", 0).End("")
	Begin(tr, ScopeFile, "file:a.ts", 0).End("")
	Point(tr, ScopeQuery, "resolve", "offset=3", 0)

	out := buf.String()
	if !strings.Contains(out, "scan") {
		t.Fatalf("driver events missing:\n%s", out)
	}
	if strings.Contains(out, "a.ts") || strings.Contains(out, "resolve") {
		t.Fatalf("fine-grained events leaked at phase level:\n%s", out)
	}
}

func TestNDJSONEvents(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	span := Begin(tr, ScopePhase, "parse", 0)
	span.WithExtra("files", "2").End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var end jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatal(err)
	}
	if end.Kind != "end" || end.Name != "parse" || end.Extra["files"] != "2" || end.Detail != "ok" {
		t.Fatalf("unexpected end event: %+v", end)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeQuery, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}
}

func TestFindRingThroughMulti(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopeFile, "file:x.ts", "", 0)
	ring := FindRing(tr)
	if ring == nil {
		t.Fatal("ring not found")
	}
	if len(ring.Snapshot()) != 1 || buf.Len() == 0 {
		t.Fatalf("event not fanned out: ring=%d stream=%d", len(ring.Snapshot()), buf.Len())
	}
}

func TestContextDefaults(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop for bare context")
	}
	r := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	if FromContext(ctx) != Tracer(r) {
		t.Fatal("tracer not stored")
	}
	span := Begin(r, ScopePhase, "parse", 0)
	if ParentSpan(WithSpan(ctx, span)) != span.ID() {
		t.Fatal("span id not stored")
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
}
