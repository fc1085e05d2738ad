package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/paperplane/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenStartsEmpty(t *testing.T) {
	store := openTestStore(t)

	throws, err := store.RecentThrows("", 10)
	if err != nil {
		t.Fatalf("RecentThrows() failed: %v", err)
	}
	if len(throws) != 0 {
		t.Errorf("new store should be empty, got %d throws", len(throws))
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.RecordThrow(core.Event{GameID: "paperplane", Outcome: core.OutcomeSettled}, "release"); err != nil {
		t.Fatalf("RecordThrow() failed: %v", err)
	}

	throws, err := b.RecentThrows("", 10)
	if err != nil {
		t.Fatalf("RecentThrows() failed: %v", err)
	}
	if len(throws) != 0 {
		t.Errorf("second in-memory store should not see the first one's throws, got %d", len(throws))
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	events := []core.Event{
		{GameID: "paperplane", Outcome: core.OutcomeSettled, Distance: 8.8, Frames: 8},
		{GameID: "paperplane", Outcome: core.OutcomeHit, Award: 100, Distance: 118.4, Frames: 11},
		{GameID: "paperplane_follow", Outcome: core.OutcomeReset, Frames: 3},
	}
	for _, ev := range events {
		if _, err := store.RecordThrow(ev, "release"); err != nil {
			t.Fatalf("RecordThrow() failed: %v", err)
		}
	}

	throws, err := store.RecentThrows("paperplane", 10)
	if err != nil {
		t.Fatalf("RecentThrows() failed: %v", err)
	}
	if len(throws) != 2 {
		t.Fatalf("Expected 2 throws, got %d", len(throws))
	}

	// Newest first
	if throws[0].Outcome != core.OutcomeHit || throws[0].Award != 100 {
		t.Errorf("Expected newest throw to be the hit, got %+v", throws[0])
	}
	if throws[1].Distance != 8.8 || throws[1].Frames != 8 {
		t.Errorf("Older throw not round-tripped: %+v", throws[1])
	}
	if !throws[0].CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, expected %v", throws[0].CreatedAt, fixed)
	}
	if _, err := uuid.Parse(throws[0].ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", throws[0].ID, err)
	}

	all, err := store.RecentThrows("", 10)
	if err != nil {
		t.Fatalf("RecentThrows() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 throws across games, got %d", len(all))
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.RecordThrow(core.Event{GameID: "paperplane", Outcome: core.OutcomeSettled, Frames: i}, "release"); err != nil {
			t.Fatalf("RecordThrow() failed: %v", err)
		}
	}

	throws, err := store.RecentThrows("paperplane", 5)
	if err != nil {
		t.Fatalf("RecentThrows() failed: %v", err)
	}
	if len(throws) != 5 {
		t.Errorf("Expected 5 throws, got %d", len(throws))
	}
	if throws[0].Frames != 29 {
		t.Errorf("Expected latest throw first, got frames=%d", throws[0].Frames)
	}

	// Zero limit falls back to the default
	throws, err = store.RecentThrows("paperplane", 0)
	if err != nil {
		t.Fatalf("RecentThrows() failed: %v", err)
	}
	if len(throws) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(throws))
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	events := []core.Event{
		{GameID: "paperplane", Outcome: core.OutcomeHit, Award: 100, Distance: 118.4},
		{GameID: "paperplane", Outcome: core.OutcomeHit, Award: 100, Distance: 120.1},
		{GameID: "paperplane", Outcome: core.OutcomeReset},
		{GameID: "paperplane", Outcome: core.OutcomeSettled, Distance: 40},
		{GameID: "paperplane_follow", Outcome: core.OutcomeHit, Award: 10, Distance: 200},
	}
	for _, ev := range events {
		if _, err := store.RecordThrow(ev, "release"); err != nil {
			t.Fatalf("RecordThrow() failed: %v", err)
		}
	}

	sum, err := store.Summarize("paperplane")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}

	expected := Summary{GameID: "paperplane", Throws: 4, Hits: 2, Resets: 1, TotalAward: 200, BestDistance: 120.1}
	if sum != expected {
		t.Errorf("Summarize() = %+v, expected %+v", sum, expected)
	}
}

func TestStoreSummarizeEmpty(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summarize("paperplane")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Throws != 0 || sum.BestDistance != 0 {
		t.Errorf("Expected empty summary, got %+v", sum)
	}
}

func TestStoreClosed(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := store.RecordThrow(core.Event{GameID: "paperplane"}, "release"); err == nil {
		t.Error("Expected error recording into a closed store")
	}
}
