package records

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-catcher/internal/config"
)

// BestStore holds a single best score.
type BestStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, best int) error
}

// BestKeeper implements the single global best policy. The stored value
// only ever increases.
type BestKeeper struct {
	store BestStore

	mu   sync.Mutex
	best int
}

// NewBestKeeper returns a keeper backed by store.
func NewBestKeeper(store BestStore) *BestKeeper {
	return &BestKeeper{store: store}
}

// Policy implements Keeper.
func (k *BestKeeper) Policy() string { return config.PolicyBest }

// Fetch implements Keeper.
func (k *BestKeeper) Fetch(ctx context.Context) (Standing, error) {
	best, err := k.store.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		err = nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if err == nil && best > k.best {
		k.best = best
	}
	return Standing{Best: k.best}, err
}

// Record implements Keeper. The name is ignored under this policy.
// When the stored best cannot be read nothing is written, since the unread
// value may be higher than anything this keeper has seen.
func (k *BestKeeper) Record(ctx context.Context, _ string, score int) (Standing, error) {
	stored, err := k.store.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		err = nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if err != nil {
		return Standing{Best: max(k.best, score)}, fmt.Errorf("records: read best: %w", err)
	}
	if stored > k.best {
		k.best = stored
	}
	if score <= k.best {
		return Standing{Best: k.best}, nil
	}
	k.best = score
	return Standing{Best: score}, k.store.Save(ctx, score)
}

// Leaderboard implements the named leaderboard policy over a Document.
// Fetch seeds an in-memory view; Record merges into the view and writes
// the whole board back. Between the two, another writer's changes to the
// document are overwritten.
type Leaderboard struct {
	doc   Document
	limit int

	mu   sync.Mutex
	view []Entry
}

// NewLeaderboard returns a keeper of at most limit entries stored in doc.
func NewLeaderboard(doc Document, limit int) *Leaderboard {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Leaderboard{doc: doc, limit: limit}
}

// Policy implements Keeper.
func (l *Leaderboard) Policy() string { return config.PolicyLeaderboard }

// Fetch implements Keeper. A missing document is an empty board; any other
// failure also leaves an empty view and is returned for logging.
func (l *Leaderboard) Fetch(ctx context.Context) (Standing, error) {
	board, err := l.doc.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		board, err = nil, nil
	}
	if err != nil {
		board = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.view = Normalize(board, l.limit)
	return l.standingLocked(), err
}

// Record implements Keeper.
func (l *Leaderboard) Record(ctx context.Context, name string, score int) (Standing, error) {
	if score < 0 {
		score = 0
	}
	name = NormalizeName(name, "")

	l.mu.Lock()
	l.view = Merge(l.view, Entry{Name: name, Score: score}, l.limit)
	board := append([]Entry(nil), l.view...)
	standing := l.standingLocked()
	l.mu.Unlock()

	return standing, l.doc.Save(ctx, board)
}

// View returns a copy of the in-memory board.
func (l *Leaderboard) View() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.view...)
}

func (l *Leaderboard) standingLocked() Standing {
	return Standing{
		Best:  Best(l.view),
		Board: append([]Entry(nil), l.view...),
	}
}

// New builds the keeper selected by cfg. kv backs the local policies; a nil
// kv falls back to process memory. The remote access key is read from the
// environment variable named by cfg.Remote.KeyEnv.
func New(cfg config.RecordsConfig, kv KV, logger *log.Logger) Keeper {
	if logger == nil {
		logger = log.Default()
	}
	if kv == nil {
		logger.Warn("no record store, scores last for this session only")
		kv = NewMemoryKV()
	}

	if cfg.Policy == config.PolicyBest {
		return NewBestKeeper(NewLocalBest(kv))
	}

	if cfg.Backend == config.BackendRemote && cfg.Remote.URL != "" {
		key := ""
		if cfg.Remote.KeyEnv != "" {
			key = os.Getenv(cfg.Remote.KeyEnv)
		}
		if key == "" {
			logger.Warn("record service key not set", "env", cfg.Remote.KeyEnv)
		}
		timeout := cfg.Remote.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		doc := NewRemoteBoard(cfg.Remote.URL,
			WithAccessKey(cfg.Remote.KeyHeader, key),
			WithHTTPClient(newHTTPClient(timeout)),
		)
		logger.Debug("using remote leaderboard", "url", cfg.Remote.URL)
		return NewLeaderboard(doc, cfg.Limit)
	}

	return NewLeaderboard(NewLocalBoard(kv), cfg.Limit)
}
