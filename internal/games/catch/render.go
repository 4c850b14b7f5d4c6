package catch

import (
	"fmt"

	"github.com/vovakirdan/treat-catcher/internal/core"
)

// Visual characters for rendering
const (
	CatChar    = '█'
	EarChar    = '▲'
	EyeChar    = '•'
	TreatChar  = '●'
	HatChar    = '▀'
	BowChar    = '⋈'
	GroundChar = '═'
)

// hudRows is the number of rows above the field used for the score line.
const hudRows = 1

// Render draws the current game state into dst. The logical field is scaled
// onto the rows between the HUD line and the ground line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	s := g.sim

	w := dst.Width()
	fieldRows := dst.Height() - hudRows - 1
	if w <= 0 || fieldRows <= 0 {
		return
	}

	toScreen := func(r core.Rect) core.Rect {
		sr := r.Scale(s.FieldW, s.FieldH, w, fieldRows)
		sr.Y += hudRows
		return sr
	}

	// Ground
	dst.DrawHLine(0, dst.Height()-1, w, GroundChar, core.ColorGray)

	for _, t := range s.Treats {
		tr := toScreen(t.Rect())
		// Treats still above the field stay hidden behind the HUD.
		if tr.Bottom() <= hudRows {
			continue
		}
		dst.DrawRect(tr, TreatChar, core.ColorYellow)
	}

	g.drawCat(dst, toScreen(s.Player.Rect()))

	hud := " " + HUDText(s.Score) + " "
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
	speed := fmt.Sprintf(" speed %d ", s.FallSpeed())
	dst.DrawTextColored(w-len(speed)-1, 0, speed, core.ColorGray)

	if s.Terminal() {
		dst.Dim()
		box := MessageBox(dst.Width(), dst.Height(), s.Score)
		g.drawMessage(dst, box, GameOverTitle, GameOverSubtitle(s.Score))
	}
}

// drawCat draws the catcher body, face and any unlocked cosmetics.
func (g *Game) drawCat(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, CatChar, core.ColorOrange)

	if r.W >= 3 {
		dst.SetColored(r.X, r.Y, EarChar, core.ColorOrange)
		dst.SetColored(r.Right()-1, r.Y, EarChar, core.ColorOrange)
	}
	if r.W >= 5 && r.H >= 2 {
		cx, _ := r.Center()
		dst.SetColored(cx-1, r.Y+1, EyeChar, core.ColorBrightWhite)
		dst.SetColored(cx+1, r.Y+1, EyeChar, core.ColorBrightWhite)
	}

	cosmetics := g.sim.Cosmetics()
	if cosmetics.Has(CosmeticHat) {
		cx, _ := r.Center()
		dst.DrawHLine(cx-1, r.Y-1, 3, HatChar, core.ColorMagenta)
	}
	if cosmetics.Has(CosmeticBow) {
		dst.SetColored(r.Right()-1, r.Y, BowChar, core.ColorPink)
	}
}

// GameOverTitle heads the game-over message.
const GameOverTitle = "Game Over!"

// HUDText is the score line shown while playing.
func HUDText(score int) string {
	return fmt.Sprintf("%s has eaten: %d treats", PlayerName, score)
}

// GameOverSubtitle is the second line of the game-over message.
func GameOverSubtitle(score int) string {
	return fmt.Sprintf("%s ate %d treats!", PlayerName, score)
}

// drawMessage draws a two-line message box.
func (g *Game) drawMessage(dst *core.Screen, box core.Rect, title, subtitle string) {
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

// MessageBox returns the rectangle of the game-over box on a screen of the
// given size, so frontends can place extra panels around it.
func MessageBox(screenW, screenH, score int) core.Rect {
	boxW := max(len(GameOverTitle), len(GameOverSubtitle(score))) + 4
	boxH := 5
	return core.NewRect((screenW-boxW)/2, (screenH-boxH)/2, boxW, boxH)
}
