// Package lifecycle drives a catcher session for frontends that own their
// frame loop: name prompt, record fetch, play, game over and the timed
// restart. Record calls run on background goroutines; their results are
// picked up on the next Update so the frame loop never blocks on them.
package lifecycle

import (
	"context"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// Phase is where the session is in the prompt -> play -> game over cycle.
type Phase int

const (
	PhasePrompt  Phase = iota // Waiting for a player name
	PhaseLoading              // Record fetch in flight; the first frame waits for it
	PhasePlaying
	PhaseOver // Overlay shown until the restart delay has passed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePrompt:
		return "prompt"
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Input is everything a frontend collected during one frame.
type Input struct {
	Move    core.InputState
	Typed   []rune // Printable characters for the name prompt
	Erase   bool   // Backspace
	Confirm bool   // Enter
}

// Options configures a Session.
type Options struct {
	Config  config.CatchConfig
	Keeper  records.Keeper
	Store   *storage.Store // Run history; nil disables it
	Logger  *log.Logger
	Name    string // Prefills the name prompt
	Seed    int64  // Fixed seed for every run, 0 for time-based
	Clock   func() time.Time
	Runtime core.RuntimeConfig
}

type fetchResult struct {
	run      int
	standing records.Standing
	err      error
}

type saveResult struct {
	run      int
	standing records.Standing
	err      error
	histErr  error
}

// Session is a single player's sequence of runs.
type Session struct {
	game   *catch.Game
	keeper records.Keeper
	store  *storage.Store
	logger *log.Logger
	cfg    config.CatchConfig
	rc     core.RuntimeConfig
	seed   int64
	now    func() time.Time

	phase    Phase
	name     []rune
	player   string
	run      int
	standing records.Standing
	state    core.GameState
	overAt   time.Time

	mu      sync.Mutex
	fetched *fetchResult
	saved   []saveResult
	pending sync.WaitGroup
}

// New creates a session and starts it: at the prompt under the leaderboard
// policy, otherwise with the first record fetch already in flight.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keeper := opts.Keeper
	if keeper == nil {
		keeper = records.New(opts.Config.Records, nil, logger)
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	s := &Session{
		game:   catch.New(opts.Config),
		keeper: keeper,
		store:  opts.Store,
		logger: logger,
		cfg:    opts.Config,
		rc:     opts.Runtime,
		seed:   opts.Seed,
		now:    now,
		name:   []rune(truncateName(opts.Name)),
	}
	s.rc.Seed = s.nextSeed()
	s.game.Reset(s.rc)

	if keeper.Policy() == config.PolicyLeaderboard {
		s.phase = PhasePrompt
	} else {
		s.player = records.NormalizeName(opts.Name, opts.Config.Records.Guest)
		s.startFetch()
	}
	return s
}

// Update advances the session by one frame.
func (s *Session) Update(in Input) {
	s.collectSaves()

	switch s.phase {
	case PhasePrompt:
		s.updatePrompt(in)
	case PhaseLoading:
		s.collectFetch()
	case PhasePlaying:
		s.updatePlaying(in)
	case PhaseOver:
		if s.now().Sub(s.overAt) >= s.game.RestartDelay() {
			s.restart()
		}
	}
}

func (s *Session) updatePrompt(in Input) {
	for _, r := range in.Typed {
		if unicode.IsPrint(r) && len(s.name) < records.MaxNameLen {
			s.name = append(s.name, r)
		}
	}
	if in.Erase && len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}
	if in.Confirm {
		s.player = records.NormalizeName(string(s.name), s.cfg.Records.Guest)
		s.name = []rune(s.player)
		s.startFetch()
	}
}

func (s *Session) updatePlaying(in Input) {
	result := s.game.Step(in.Move)
	s.state = result.State

	for _, name := range result.Unlocked {
		s.logger.Debug("cosmetic unlocked", "name", name, "score", s.state.Score)
	}

	if result.EnteredTerminal {
		s.phase = PhaseOver
		s.overAt = s.now()
		s.logger.Info("run over", "player", s.player, "score", s.state.Score)
		s.startSave(s.player, s.state.Score)
	}
}

// startFetch loads the record in the background. Play starts when it lands.
func (s *Session) startFetch() {
	s.phase = PhaseLoading
	run := s.run
	keeper := s.keeper

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		standing, err := keeper.Fetch(context.Background())

		s.mu.Lock()
		s.fetched = &fetchResult{run: run, standing: standing, err: err}
		s.mu.Unlock()
	}()
}

func (s *Session) collectFetch() {
	s.mu.Lock()
	res := s.fetched
	s.fetched = nil
	s.mu.Unlock()

	if res == nil || res.run != s.run {
		return
	}
	if res.err != nil {
		s.logger.Warn("could not load records", "error", res.err)
	}
	s.standing = res.standing

	s.rc.Seed = s.nextSeed()
	s.game.Reset(s.rc)
	s.state = s.game.State()
	s.phase = PhasePlaying
	s.logger.Debug("run started", "player", s.player, "run", s.run, "seed", s.rc.Seed)
}

// startSave records a finished run without waiting for it.
func (s *Session) startSave(name string, score int) {
	run := s.run
	keeper, store := s.keeper, s.store

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		res := saveResult{run: run}
		res.standing, res.err = keeper.Record(context.Background(), name, score)
		if store != nil && score > 0 {
			_, res.histErr = store.SaveScore(catch.GameID, name, score)
		}

		s.mu.Lock()
		s.saved = append(s.saved, res)
		s.mu.Unlock()
	}()
}

func (s *Session) collectSaves() {
	s.mu.Lock()
	saved := s.saved
	s.saved = nil
	s.mu.Unlock()

	for _, res := range saved {
		if res.err != nil {
			s.logger.Warn("could not save record", "error", res.err)
		}
		if res.histErr != nil {
			s.logger.Warn("could not save run history", "error", res.histErr)
		}
		if res.run == s.run && s.phase == PhaseOver {
			s.standing = res.standing
		}
	}
}

func (s *Session) restart() {
	s.run++
	if s.keeper.Policy() == config.PolicyLeaderboard {
		s.phase = PhasePrompt
		s.name = []rune(s.player)
		return
	}
	s.startFetch()
}

func (s *Session) nextSeed() int64 {
	if s.seed != 0 {
		return s.seed
	}
	return time.Now().UnixNano()
}

// Wait blocks until every background record call has finished.
func (s *Session) Wait() {
	s.pending.Wait()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Name returns the text currently in the name prompt.
func (s *Session) Name() string { return string(s.name) }

// Player returns the normalized name of the current player.
func (s *Session) Player() string { return s.player }

// Policy returns the record policy in effect.
func (s *Session) Policy() string { return s.keeper.Policy() }

// Standing returns the last known record.
func (s *Session) Standing() records.Standing { return s.standing }

// State returns the state of the current or last run.
func (s *Session) State() core.GameState { return s.state }

// Game returns the game being played.
func (s *Session) Game() *catch.Game { return s.game }

// Run returns the number of finished runs.
func (s *Session) Run() int { return s.run }

func truncateName(name string) string {
	r := []rune(name)
	if len(r) > records.MaxNameLen {
		r = r[:records.MaxNameLen]
	}
	return string(r)
}
