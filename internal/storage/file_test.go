package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cycles.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := Event{Timestamp: time.Unix(1, 0).UTC(), ChatID: 1, Outcome: "dispatched", Query: "submersible pump", Products: 3}
	ev2 := Event{Timestamp: time.Unix(2, 0).UTC(), ChatID: 2, Outcome: "skipped_no_query"}
	if err := rec.AppendCycle(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendCycle(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadCycles()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].ChatID != 1 || events[1].ChatID != 2 {
		t.Fatalf("order mismatch: %+v", events)
	}
	if events[0].Outcome != "dispatched" || events[0].Products != 3 {
		t.Fatalf("payload mismatch: %+v", events[0])
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}
