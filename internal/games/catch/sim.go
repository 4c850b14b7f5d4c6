package catch

import (
	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/core"
)

// Player is the catcher sprite. Only its x position changes during a run.
type Player struct {
	X, Y  int
	W, H  int
	Speed int
}

// Rect returns the collision box of the player.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Phase is the run lifecycle state.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseTerminal Phase = "terminal"
)

// Sim is the complete simulation state of one run. Everything the frame
// step reads or writes lives here, so a run can be driven and inspected
// without any rendering surface.
type Sim struct {
	FieldW, FieldH int
	Player         Player
	Treats         []Treat
	Score          int
	Frame          int
	Phase          Phase

	cfg        config.CatchConfig
	spawner    *Spawner
	difficulty *config.DifficultyModel
	cosmetics  *Cosmetics
}

// NewSim creates a simulation in its initial state.
func NewSim(cfg config.CatchConfig, seed int64) *Sim {
	s := &Sim{
		cfg:        cfg,
		FieldW:     cfg.Field.Width,
		FieldH:     cfg.Field.Height,
		spawner:    NewSpawner(seed, cfg.Field.Width, cfg.Treats.Width, cfg.Treats.Height),
		difficulty: config.NewDifficultyModel(cfg.Difficulty),
		cosmetics:  NewCosmetics(cfg.Cosmetics),
		Treats:     make([]Treat, 0, 16),
	}
	s.Reset(seed)
	return s
}

// Reset returns the simulation to the initial state: player centered at the
// bottom, no treats, zero score, cosmetics cleared.
func (s *Sim) Reset(seed int64) {
	s.Player = Player{
		X:     s.FieldW/2 - s.cfg.Player.Width/2,
		Y:     s.FieldH - s.cfg.Player.Height,
		W:     s.cfg.Player.Width,
		H:     s.cfg.Player.Height,
		Speed: s.cfg.Player.Speed,
	}
	s.Treats = s.Treats[:0]
	s.Score = 0
	s.Frame = 0
	s.Phase = PhasePlaying
	s.spawner.Reset(seed)
	s.cosmetics.Reset()
}

// Terminal reports whether a treat has reached the bottom.
func (s *Sim) Terminal() bool {
	return s.Phase == PhaseTerminal
}

// Difficulty returns the fall speed and spawn interval for the current score.
func (s *Sim) Difficulty() (fallSpeed, spawnInterval int) {
	return s.difficulty.At(s.Score)
}

// FallSpeed returns the current shared treat velocity.
func (s *Sim) FallSpeed() int {
	speed, _ := s.Difficulty()
	return speed
}

// SpawnInterval returns the current number of frames between spawns.
func (s *Sim) SpawnInterval() int {
	_, interval := s.Difficulty()
	return interval
}

// SpawnCounter returns the frames elapsed since the last spawn.
func (s *Sim) SpawnCounter() int {
	return s.spawner.Counter()
}

// Cosmetics returns the unlock tracker.
func (s *Sim) Cosmetics() *Cosmetics {
	return s.cosmetics
}

// Step advances the run by one frame: move the player, maybe spawn, then
// advance and resolve every treat. A terminal run does not change.
//
// Treats are resolved in a single scan and caught ones are removed after the
// scan, so every treat is evaluated exactly once per frame no matter how many
// are caught. A treat that has left the field only triggers the terminal
// transition; it is never also counted as caught. The scan always completes,
// so a treat caught in the same frame another one is lost still scores.
func (s *Sim) Step(in core.InputState) core.StepResult {
	if s.Terminal() {
		return core.StepResult{State: s.State()}
	}

	var res core.StepResult
	s.Frame++

	s.movePlayer(in)

	if t, ok := s.spawner.Tick(s.SpawnInterval()); ok {
		s.Treats = append(s.Treats, t)
	}

	fallSpeed := s.FallSpeed()
	catcher := s.Player.Rect()
	var caught []int

	for i := range s.Treats {
		t := &s.Treats[i]
		t.Y += fallSpeed

		if t.Rect().Bottom() > s.FieldH {
			s.Phase = PhaseTerminal
			continue
		}

		if catcher.Intersects(t.Rect()) {
			caught = append(caught, i)
			s.Score++
			res.Caught++
			res.Unlocked = append(res.Unlocked, s.cosmetics.Evaluate(s.Score)...)
			fallSpeed = s.FallSpeed()
		}
	}

	s.removeIndices(caught)

	res.EnteredTerminal = s.Terminal()
	res.State = s.State()
	return res
}

// movePlayer applies the held direction and keeps the sprite inside the field.
func (s *Sim) movePlayer(in core.InputState) {
	s.Player.X += in.Dir() * s.Player.Speed
	s.Player.X = core.Clamp(s.Player.X, 0, s.FieldW-s.Player.W)
}

// removeIndices drops treats at the given ascending indices, keeping order.
func (s *Sim) removeIndices(idx []int) {
	if len(idx) == 0 {
		return
	}
	kept := s.Treats[:0]
	next := 0
	for i, t := range s.Treats {
		if next < len(idx) && idx[next] == i {
			next++
			continue
		}
		kept = append(kept, t)
	}
	s.Treats = kept
}

// State returns the platform-facing summary.
func (s *Sim) State() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Terminal: s.Terminal(),
	}
}
