package records

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-catcher/internal/config"
)

var errBackend = errors.New("backend down")

// fakeDoc is a Document with switchable failures.
type fakeDoc struct {
	board   []Entry
	loadErr error
	saveErr error
	saves   int
}

func (d *fakeDoc) Load(context.Context) ([]Entry, error) {
	if d.loadErr != nil {
		return nil, d.loadErr
	}
	return append([]Entry(nil), d.board...), nil
}

func (d *fakeDoc) Save(_ context.Context, board []Entry) error {
	d.saves++
	if d.saveErr != nil {
		return d.saveErr
	}
	d.board = append([]Entry(nil), board...)
	return nil
}

// fakeBest is a BestStore with switchable failures.
type fakeBest struct {
	best    int
	stored  bool
	loadErr error
	saveErr error
	saves   int
}

func (b *fakeBest) Load(context.Context) (int, error) {
	if b.loadErr != nil {
		return 0, b.loadErr
	}
	if !b.stored {
		return 0, ErrNotFound
	}
	return b.best, nil
}

func (b *fakeBest) Save(_ context.Context, best int) error {
	b.saves++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.best, b.stored = best, true
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLeaderboardRecordMergesAndWrites(t *testing.T) {
	ctx := context.Background()
	doc := &fakeDoc{board: []Entry{{"A", 10}, {"B", 8}}}
	lb := NewLeaderboard(doc, 10)

	standing, err := lb.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if standing.Best != 10 || len(standing.Board) != 2 {
		t.Errorf("Fetch() = %+v", standing)
	}

	standing, err = lb.Record(ctx, "C", 9)
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	want := []Entry{{"A", 10}, {"C", 9}, {"B", 8}}
	if !reflect.DeepEqual(standing.Board, want) {
		t.Errorf("Record() board = %v, want %v", standing.Board, want)
	}
	if !reflect.DeepEqual(doc.board, want) {
		t.Errorf("written board = %v, want %v", doc.board, want)
	}
}

func TestLeaderboardNeverDecreases(t *testing.T) {
	ctx := context.Background()
	doc := &fakeDoc{}
	lb := NewLeaderboard(doc, 10)
	lb.Fetch(ctx)

	lb.Record(ctx, "Ana", 12)
	standing, _ := lb.Record(ctx, "Ana", 4)
	if standing.Best != 12 || len(standing.Board) != 1 {
		t.Errorf("lower score changed the board: %+v", standing)
	}
	if doc.saves != 2 {
		t.Errorf("every finished run writes the board, saves = %d", doc.saves)
	}
}

func TestLeaderboardNormalizesNames(t *testing.T) {
	lb := NewLeaderboard(&fakeDoc{}, 10)
	standing, _ := lb.Record(context.Background(), "   ", 3)
	if standing.Board[0].Name != DefaultGuest {
		t.Errorf("empty name stored as %q, want %q", standing.Board[0].Name, DefaultGuest)
	}
}

func TestLeaderboardFetchFailureIsEmpty(t *testing.T) {
	ctx := context.Background()
	doc := &fakeDoc{board: []Entry{{"A", 10}}, loadErr: errBackend}
	lb := NewLeaderboard(doc, 10)

	standing, err := lb.Fetch(ctx)
	if !errors.Is(err, errBackend) {
		t.Errorf("Fetch() err = %v, want backend error", err)
	}
	if standing.Best != 0 || len(standing.Board) != 0 {
		t.Errorf("failed fetch should leave an empty view, got %+v", standing)
	}

	// A missing document is not an error at all.
	doc.loadErr = ErrNotFound
	if _, err := lb.Fetch(ctx); err != nil {
		t.Errorf("Fetch() on missing document: err = %v, want nil", err)
	}
}

func TestLeaderboardSaveFailureKeepsView(t *testing.T) {
	ctx := context.Background()
	doc := &fakeDoc{saveErr: errBackend}
	lb := NewLeaderboard(doc, 10)

	standing, err := lb.Record(ctx, "Ana", 7)
	if !errors.Is(err, errBackend) {
		t.Errorf("Record() err = %v, want backend error", err)
	}
	if standing.Best != 7 {
		t.Errorf("standing should reflect the merge, got %+v", standing)
	}
	if got := lb.View(); len(got) != 1 || got[0].Name != "Ana" {
		t.Errorf("View() = %v", got)
	}
}

func TestLeaderboardFetchTruncatesStoredBoard(t *testing.T) {
	var board []Entry
	for i := 0; i < 12; i++ {
		board = append(board, Entry{Name: string(rune('A' + i)), Score: i})
	}
	lb := NewLeaderboard(&fakeDoc{board: board}, 10)
	standing, _ := lb.Fetch(context.Background())
	if len(standing.Board) != 10 || standing.Best != 11 {
		t.Errorf("Fetch() = %+v", standing)
	}
}

func TestBestKeeper(t *testing.T) {
	ctx := context.Background()
	store := &fakeBest{}
	k := NewBestKeeper(store)

	standing, err := k.Fetch(ctx)
	if err != nil || standing.Best != 0 {
		t.Fatalf("Fetch() on empty store = %+v, %v", standing, err)
	}

	tests := []struct {
		score     int
		wantBest  int
		wantSaves int
	}{
		{5, 5, 1},
		{3, 5, 1}, // Lower: unchanged, no write
		{5, 5, 1}, // Equal: unchanged, no write
		{9, 9, 2}, // Higher: overwritten
		{0, 9, 2},
	}
	for _, tt := range tests {
		standing, err := k.Record(ctx, "ignored", tt.score)
		if err != nil {
			t.Fatalf("Record(%d) failed: %v", tt.score, err)
		}
		if standing.Best != tt.wantBest {
			t.Errorf("Record(%d) best = %d, want %d", tt.score, standing.Best, tt.wantBest)
		}
		if store.saves != tt.wantSaves {
			t.Errorf("Record(%d) saves = %d, want %d", tt.score, store.saves, tt.wantSaves)
		}
		if len(standing.Board) != 0 {
			t.Errorf("best policy should not return a board")
		}
	}
}

func TestBestKeeperRespectsStoredValue(t *testing.T) {
	ctx := context.Background()
	store := &fakeBest{best: 20, stored: true}
	k := NewBestKeeper(store)

	// Another process raised the stored best after this keeper fetched.
	standing, _ := k.Record(ctx, "", 15)
	if standing.Best != 20 || store.saves != 0 {
		t.Errorf("lower run overwrote stored best: %+v, saves %d", standing, store.saves)
	}
}

func TestBestKeeperFailures(t *testing.T) {
	ctx := context.Background()
	store := &fakeBest{loadErr: errBackend}
	k := NewBestKeeper(store)

	if _, err := k.Fetch(ctx); !errors.Is(err, errBackend) {
		t.Errorf("Fetch() err = %v, want backend error", err)
	}

	store.loadErr = nil
	store.saveErr = errBackend
	standing, err := k.Record(ctx, "", 4)
	if !errors.Is(err, errBackend) {
		t.Errorf("Record() err = %v, want backend error", err)
	}
	if standing.Best != 4 {
		t.Errorf("Record() best = %d, want 4", standing.Best)
	}
}

// unreadableKV fails every Get while Put keeps working.
type unreadableKV struct {
	*MemoryKV
	getErr error
}

func (kv *unreadableKV) Get(ctx context.Context, key string) ([]byte, error) {
	if kv.getErr != nil {
		return nil, kv.getErr
	}
	return kv.MemoryKV.Get(ctx, key)
}

func TestBestKeeperUnreadableStoreKeepsBest(t *testing.T) {
	ctx := context.Background()
	kv := &unreadableKV{MemoryKV: NewMemoryKV()}
	best := NewLocalBest(kv)
	if err := best.Save(ctx, 100); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	kv.getErr = errors.New("database is locked")
	k := NewBestKeeper(best)
	if _, err := k.Fetch(ctx); err == nil {
		t.Fatal("Fetch() should report the read failure")
	}

	standing, err := k.Record(ctx, "", 10)
	if !errors.Is(err, kv.getErr) {
		t.Errorf("Record() err = %v, want the read failure", err)
	}
	if standing.Best != 10 {
		t.Errorf("Record() best = %d, want 10", standing.Best)
	}

	kv.getErr = nil
	stored, err := best.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stored != 100 {
		t.Errorf("stored best = %d after a failed read, want 100", stored)
	}
}

func TestBestKeeperLoadFailureSkipsWrite(t *testing.T) {
	ctx := context.Background()
	store := &fakeBest{best: 50, stored: true}
	k := NewBestKeeper(store)
	if _, err := k.Fetch(ctx); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	store.loadErr = errBackend
	standing, err := k.Record(ctx, "", 70)
	if !errors.Is(err, errBackend) {
		t.Errorf("Record() err = %v, want backend error", err)
	}
	if store.saves != 0 || store.best != 50 {
		t.Errorf("unreadable store was written: saves %d, best %d", store.saves, store.best)
	}
	if standing.Best != 70 {
		t.Errorf("Record() best = %d, want 70 for the overlay", standing.Best)
	}
}

func TestNewSelectsPolicy(t *testing.T) {
	cfg := config.DefaultCatchConfig().Records

	cfg.Policy = config.PolicyBest
	if k := New(cfg, NewMemoryKV(), quietLogger()); k.Policy() != config.PolicyBest {
		t.Errorf("Policy() = %q, want best", k.Policy())
	}

	cfg.Policy = config.PolicyLeaderboard
	cfg.Backend = config.BackendLocal
	k := New(cfg, nil, quietLogger())
	if k.Policy() != config.PolicyLeaderboard {
		t.Errorf("Policy() = %q, want leaderboard", k.Policy())
	}
	// nil kv falls back to memory and still works.
	if _, err := k.Record(context.Background(), "Ana", 3); err != nil {
		t.Errorf("Record() with memory fallback failed: %v", err)
	}
}

func TestNewLocalLeaderboardPersists(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultCatchConfig().Records
	kv := NewMemoryKV()

	first := New(cfg, kv, quietLogger())
	first.Fetch(ctx)
	first.Record(ctx, "A", 10)
	first.Record(ctx, "B", 8)

	second := New(cfg, kv, quietLogger())
	standing, err := second.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	want := []Entry{{"A", 10}, {"B", 8}}
	if !reflect.DeepEqual(standing.Board, want) {
		t.Errorf("second keeper sees %v, want %v", standing.Board, want)
	}
}

func TestNewRemoteReadsKeyFromEnv(t *testing.T) {
	svc := &recordService{body: []byte(`{"record":{"scores":[{"name":"A","score":10},{"name":"B","score":8}]}}`), key: "s3cret", header: "X-Master-Key"}
	srv := httptest.NewServer(svc)
	defer srv.Close()

	t.Setenv("CATCH_TEST_KEY", "s3cret")
	cfg := config.DefaultCatchConfig().Records
	cfg.Policy = config.PolicyLeaderboard
	cfg.Backend = config.BackendRemote
	cfg.Remote.URL = srv.URL
	cfg.Remote.KeyEnv = "CATCH_TEST_KEY"
	cfg.Remote.Timeout = 2 * time.Second

	ctx := context.Background()
	k := New(cfg, NewMemoryKV(), quietLogger())
	if _, err := k.Fetch(ctx); err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	standing, err := k.Record(ctx, "C", 9)
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	want := []Entry{{"A", 10}, {"C", 9}, {"B", 8}}
	if !reflect.DeepEqual(standing.Board, want) {
		t.Errorf("Record() board = %v, want %v", standing.Board, want)
	}

	svc.mu.Lock()
	puts := svc.puts
	svc.mu.Unlock()
	if puts != 1 {
		t.Errorf("remote PUTs = %d, want 1", puts)
	}
}
