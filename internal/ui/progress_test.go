package ui

import (
	"strings"
	"testing"

	"stopline/internal/driver"
)

func TestApplyEventTracksStatus(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("scan", []string{"a.ts", "b.ts"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.ts", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.ts", Stage: driver.StageResolve, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "zzz.ts", Stage: driver.StageParse, Status: driver.StatusWorking})

	if m.items[0].status != "parsing" || m.items[1].status != "done" {
		t.Fatalf("unexpected statuses: %+v", m.items)
	}
	if got := m.percent(); got != (0.3+1.0)/2 {
		t.Fatalf("percent = %v", got)
	}
	view := m.View()
	if !strings.Contains(view, "scan 1/2") || !strings.Contains(view, "a.ts") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestDoneOnClosedChannel(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("scan", []string{"a.ts"}, events).(*progressModel)
	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	m.Update(msg)
	if !m.done {
		t.Fatal("model not marked done")
	}
}

func TestVisibleItemsBounded(t *testing.T) {
	files := make([]string, 50)
	for i := range files {
		files[i] = strings.Repeat("x", i+1) + ".ts"
	}
	m := NewProgressModel("scan", files, nil).(*progressModel)
	m.applyEvent(driver.Event{File: files[40], Stage: driver.StageParse, Status: driver.StatusWorking})
	rows := m.visibleItems()
	if len(rows) != m.maxRows {
		t.Fatalf("expected %d rows, got %d", m.maxRows, len(rows))
	}
	if rows[0].path != files[40] {
		t.Fatalf("in-flight file should come first, got %q", rows[0].path)
	}
}

func TestTruncateKeepsTail(t *testing.T) {
	got := truncate("src/very/long/path/to/file.ts", 12)
	if got != "...o/file.ts" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if truncate("short.ts", 20) != "short.ts" {
		t.Fatal("short value must be unchanged")
	}
}
