// Package catch implements the treat-catching game: a cat slides along the
// bottom of the field catching treats that fall faster and more often as the
// score grows. The run ends as soon as one treat reaches the bottom.
package catch

import (
	"time"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/core"
)

const (
	// GameID identifies the game in score storage.
	GameID = "catch"
	// PlayerName is the cat's name shown in the HUD.
	PlayerName = "Sammie"
)

// Game binds a simulation to a runtime configuration and a terminal renderer.
type Game struct {
	cfg     config.CatchConfig
	runtime core.RuntimeConfig
	sim     *Sim
}

// New creates a new game instance. Reset must be called before Step.
func New(cfg config.CatchConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Treat Catcher"
}

// Config returns the game configuration.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// RestartDelay is how long the game-over overlay stays before the reset.
func (g *Game) RestartDelay() time.Duration {
	if g.cfg.Lifecycle.RestartDelay <= 0 {
		return 2 * time.Second
	}
	return g.cfg.Lifecycle.RestartDelay
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.sim == nil {
		g.sim = NewSim(g.cfg, rc.Seed)
		return
	}
	g.sim.Reset(rc.Seed)
}

// Resize updates the render surface without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputState) core.StepResult {
	return g.sim.Step(in)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return g.sim.State()
}

// Sim exposes the simulation for frontends that draw it themselves.
func (g *Game) Sim() *Sim {
	return g.sim
}
