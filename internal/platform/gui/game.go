// Package gui runs the catcher in a desktop window with ebiten. Keyboard
// input is read as held state; on touch screens and with a mouse the two
// buttons in the bottom corners steer the cat.
package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/lifecycle"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	Config   config.CatchConfig
	Keeper   records.Keeper
	Store    *storage.Store
	Logger   *log.Logger
	Name     string
	Seed     int64
	TickRate int
	Scale    float64 // Window size relative to the field, 1 when zero
}

// Game implements ebiten.Game on top of a lifecycle.Session.
type Game struct {
	session *lifecycle.Session
	buttons buttons
	w, h    int
	frame   int
	typed   []rune
}

// NewGame creates the window game. The session starts right away, so the
// first record fetch may already be in flight when the window opens.
func NewGame(opts Options) *Game {
	w, h := opts.Config.Field.Width, opts.Config.Field.Height
	return &Game{
		session: lifecycle.New(lifecycle.Options{
			Config: opts.Config,
			Keeper: opts.Keeper,
			Store:  opts.Store,
			Logger: opts.Logger,
			Name:   opts.Name,
			Seed:   opts.Seed,
			Runtime: core.RuntimeConfig{
				ScreenW:  w,
				ScreenH:  h,
				TickRate: opts.TickRate,
			},
		}),
		buttons: layoutButtons(w, h),
		w:       w,
		h:       h,
		typed:   make([]rune, 0, 8),
	}
}

// Update reads input and advances the session by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.frame++
	in := pollInput(g.buttons, g.session.Phase(), g.typed)
	g.session.Update(in)
	return nil
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	switch s.Phase() {
	case lifecycle.PhasePrompt:
		drawPrompt(screen, s, g.buttons, g.frame)
		return
	case lifecycle.PhaseLoading:
		drawField(screen, s.Game().Sim())
		drawLoading(screen)
		return
	}

	drawField(screen, s.Game().Sim())
	drawHUD(screen, s.State().Score)
	if s.Phase() == lifecycle.PhaseOver {
		drawGameOver(screen, s)
		return
	}
	drawButtons(screen, g.buttons)
}

// Layout keeps the logical screen at field size; ebiten scales it to the
// window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// Session returns the session driven by the window.
func (g *Game) Session() *lifecycle.Session {
	return g.session
}

// Run opens the window and blocks until it is closed. Pending record writes
// are given the chance to finish before returning.
func Run(opts Options) error {
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	g := NewGame(opts)
	ebiten.SetWindowSize(int(float64(g.w)*scale), int(float64(g.h)*scale))
	ebiten.SetWindowTitle("Treat Catcher")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	g.session.Wait()
	if err != nil {
		return fmt.Errorf("gui: run: %w", err)
	}
	return nil
}
