// Package records keeps the persistent score record of finished runs.
//
// Two policies exist. The best policy remembers a single global best score.
// The leaderboard policy keeps at most one entry per player name, sorted by
// score descending and truncated to a fixed length. Both are exposed through
// Keeper so frontends never care which one is configured.
//
// Storage failures never abort a run: a missing or unreadable document is
// treated as empty and failed writes are reported to the caller, which logs
// them and carries on.
package records

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultLimit is the leaderboard length.
const DefaultLimit = 10

// MaxNameLen caps player names, in runes.
const MaxNameLen = 16

// DefaultGuest replaces empty identity input.
const DefaultGuest = "Guest"

// ErrNotFound is returned by backends when no document has been stored yet.
var ErrNotFound = errors.New("records: document not found")

// Entry is one leaderboard line.
type Entry struct {
	Name  string `json:"name" msgpack:"name"`
	Score int    `json:"score" msgpack:"score"`
}

// Standing is what a frontend shows on the game-over overlay.
type Standing struct {
	Best  int
	Board []Entry // Empty under the best policy
}

// Keeper persists finished runs under one policy.
type Keeper interface {
	// Policy returns config.PolicyBest or config.PolicyLeaderboard.
	Policy() string
	// Fetch loads the stored record. On error the returned Standing is the
	// empty record and play may continue.
	Fetch(ctx context.Context) (Standing, error)
	// Record applies a finished run and writes the result back. The returned
	// Standing reflects the merged record even when the write failed.
	Record(ctx context.Context, name string, score int) (Standing, error)
}

// NormalizeName trims identity input and caps its length. Empty input
// becomes guest, or DefaultGuest when guest is empty too.
func NormalizeName(name, guest string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
	}
	if name == "" {
		name = strings.TrimSpace(guest)
	}
	if name == "" {
		name = DefaultGuest
	}
	return name
}

// Merge applies result to board and returns a new slice: the entry for
// result.Name is inserted when absent and raised when result.Score is
// higher. The board is sorted by score descending, ties keep their previous
// order, and at most limit entries are kept. board is not modified.
//
// Duplicate names already present in board collapse to their best score.
func Merge(board []Entry, result Entry, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	merged := make([]Entry, 0, len(board)+1)
	index := make(map[string]int, len(board)+1)
	add := func(e Entry) {
		if i, ok := index[e.Name]; ok {
			if e.Score > merged[i].Score {
				merged[i].Score = e.Score
			}
			return
		}
		index[e.Name] = len(merged)
		merged = append(merged, e)
	}
	for _, e := range board {
		add(e)
	}
	add(result)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// Normalize sorts and truncates a board loaded from storage without adding
// anything to it.
func Normalize(board []Entry, limit int) []Entry {
	if len(board) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := Merge(board[:len(board)-1], board[len(board)-1], len(board))
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Rank returns the 1-based position of name on board, or 0 when absent.
func Rank(board []Entry, name string) int {
	for i, e := range board {
		if e.Name == name {
			return i + 1
		}
	}
	return 0
}

// Best returns the top score on board, 0 for an empty board.
func Best(board []Entry) int {
	if len(board) == 0 {
		return 0
	}
	return board[0].Score
}
