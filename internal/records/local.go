package records

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// KV keys used by the local backends.
const (
	KeyBest        = "catch/best"
	KeyLeaderboard = "catch/leaderboard"
)

// KV is the byte store the local backends write to. *storage.Store
// implements it; Get reports storage.ErrNoValue for unknown keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

var _ KV = (*storage.Store)(nil)

// Document stores a whole leaderboard as one unit.
type Document interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, board []Entry) error
}

// boardDoc is the encoded form of a leaderboard, shared by the local
// msgpack blob and the remote JSON document.
type boardDoc struct {
	Scores []Entry `json:"scores" msgpack:"scores"`
}

// LocalBoard keeps the leaderboard as a msgpack blob under one KV key.
type LocalBoard struct {
	kv  KV
	key string
}

// NewLocalBoard returns a leaderboard document stored in kv.
func NewLocalBoard(kv KV) *LocalBoard {
	return &LocalBoard{kv: kv, key: KeyLeaderboard}
}

// Load decodes the stored board. ErrNotFound means nothing was stored yet.
func (b *LocalBoard) Load(ctx context.Context) ([]Entry, error) {
	data, err := b.kv.Get(ctx, b.key)
	if errors.Is(err, storage.ErrNoValue) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("records: load leaderboard: %w", err)
	}

	var doc boardDoc
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("records: decode leaderboard: %w", err)
	}
	return doc.Scores, nil
}

// Save replaces the stored board.
func (b *LocalBoard) Save(ctx context.Context, board []Entry) error {
	data, err := msgpack.Marshal(&boardDoc{Scores: board})
	if err != nil {
		return fmt.Errorf("records: encode leaderboard: %w", err)
	}
	if err := b.kv.Put(ctx, b.key, data); err != nil {
		return fmt.Errorf("records: save leaderboard: %w", err)
	}
	return nil
}

// LocalBest stores the single best score under one KV key.
type LocalBest struct {
	kv  KV
	key string
}

// NewLocalBest returns a best-score slot stored in kv.
func NewLocalBest(kv KV) *LocalBest {
	return &LocalBest{kv: kv, key: KeyBest}
}

// Load returns the stored best. ErrNotFound means nothing was stored yet.
func (b *LocalBest) Load(ctx context.Context) (int, error) {
	data, err := b.kv.Get(ctx, b.key)
	if errors.Is(err, storage.ErrNoValue) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("records: load best: %w", err)
	}

	var best int
	if err := msgpack.Unmarshal(data, &best); err != nil {
		return 0, fmt.Errorf("records: decode best: %w", err)
	}
	if best < 0 {
		best = 0
	}
	return best, nil
}

// Save overwrites the stored best.
func (b *LocalBest) Save(ctx context.Context, best int) error {
	data, err := msgpack.Marshal(best)
	if err != nil {
		return fmt.Errorf("records: encode best: %w", err)
	}
	if err := b.kv.Put(ctx, b.key, data); err != nil {
		return fmt.Errorf("records: save best: %w", err)
	}
	return nil
}

// MemoryKV is an in-process KV used when the database cannot be opened,
// and by tests.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNoValue
	}
	return append([]byte(nil), v...), nil
}

// Put implements KV.
func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
