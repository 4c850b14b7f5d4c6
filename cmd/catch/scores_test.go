package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestResetRecordsKeepsHistory(t *testing.T) {
	ctx := context.Background()
	store := openScoresStore(t)

	if err := records.NewLocalBest(store).Save(ctx, 42); err != nil {
		t.Fatalf("save best: %v", err)
	}
	board := []records.Entry{{Name: "Ada", Score: 12}}
	if err := records.NewLocalBoard(store).Save(ctx, board); err != nil {
		t.Fatalf("save board: %v", err)
	}
	if _, err := store.SaveScore(catch.GameID, "Ada", 12); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	if err := resetRecords(ctx, store); err != nil {
		t.Fatalf("resetRecords() error = %v", err)
	}

	if _, err := records.NewLocalBest(store).Load(ctx); !errors.Is(err, records.ErrNotFound) {
		t.Errorf("best after reset: err = %v, want ErrNotFound", err)
	}
	if _, err := records.NewLocalBoard(store).Load(ctx); !errors.Is(err, records.ErrNotFound) {
		t.Errorf("board after reset: err = %v, want ErrNotFound", err)
	}

	runs, err := store.AllScores(catch.GameID)
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("history after reset has %d runs, want 1", len(runs))
	}
}

func TestResetRecordsEmptyStore(t *testing.T) {
	if err := resetRecords(context.Background(), openScoresStore(t)); err != nil {
		t.Errorf("resetRecords() on an empty store error = %v", err)
	}
}

func TestPrintRuns(t *testing.T) {
	tests := []struct {
		name string
		runs []storage.ScoreEntry
		want bool
	}{
		{name: "empty", want: false},
		{name: "one run", runs: []storage.ScoreEntry{{Player: "Ada", Score: 3}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printRuns("Runs", tt.runs); got != tt.want {
				t.Errorf("printRuns() = %v, want %v", got, tt.want)
			}
		})
	}
}
