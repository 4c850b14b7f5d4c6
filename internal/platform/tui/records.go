package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// FetchedMsg carries the record loaded before a run starts.
type FetchedMsg struct {
	Run      int
	Standing records.Standing
	Err      error
}

// SavedMsg reports the outcome of recording a finished run.
type SavedMsg struct {
	Run      int
	Standing records.Standing
	Err      error // Keeper failure
	HistErr  error // Run history failure
}

// fetchCmd loads the current record. The first tick waits for its result.
func fetchCmd(keeper records.Keeper, run int) tea.Cmd {
	return func() tea.Msg {
		standing, err := keeper.Fetch(context.Background())
		return FetchedMsg{Run: run, Standing: standing, Err: err}
	}
}

// saveCmd records a finished run. Nothing waits on it: the restart timer
// runs independently and the result only refreshes the overlay.
func saveCmd(keeper records.Keeper, store *storage.Store, run int, name string, score int) tea.Cmd {
	return func() tea.Msg {
		msg := SavedMsg{Run: run}
		msg.Standing, msg.Err = keeper.Record(context.Background(), name, score)
		if store != nil && score > 0 {
			_, msg.HistErr = store.SaveScore(catch.GameID, name, score)
		}
		return msg
	}
}
