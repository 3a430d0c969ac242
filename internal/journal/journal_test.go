package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	for i, run := range []Run{
		{FinalState: "committed", Stage: "committed"},
		{FinalState: "failed", Stage: "building"},
	} {
		run.GameID = "demo"
		run.Source = "/tmp/demo.zip"
		run.StartedAt = base.Add(time.Duration(i) * time.Minute)
		run.FinishedAt = base.Add(time.Duration(i)*time.Minute + 30*time.Second)
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("record %s: %v", run.FinalState, err)
		}
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].FinalState != "failed" {
		t.Fatalf("expected newest first, got %q", runs[0].FinalState)
	}
	if runs[0].Stage != "building" || runs[1].Stage != "committed" {
		t.Fatalf("stages = %q, %q; want building, committed", runs[0].Stage, runs[1].Stage)
	}
	if runs[0].ID == "" || runs[1].ID == runs[0].ID {
		t.Fatalf("expected distinct generated ids, got %q and %q", runs[0].ID, runs[1].ID)
	}
	if !runs[1].StartedAt.Equal(base) {
		t.Fatalf("started at = %v, want %v", runs[1].StartedAt, base)
	}
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, Run{
			GameID:     "g",
			Source:     "src",
			FinalState: "committed",
			StartedAt:  time.Now().Add(time.Duration(i) * time.Second),
			FinishedAt: time.Now(),
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
}
