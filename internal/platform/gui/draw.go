package gui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/lifecycle"
	"github.com/vovakirdan/treat-catcher/internal/records"
)

// Width and height of one ebitenutil debug font glyph.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorSky     = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	colorGround  = color.RGBA{R: 110, G: 84, B: 60, A: 255}
	colorCat     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	colorEar     = color.RGBA{R: 230, G: 140, B: 0, A: 255}
	colorEye     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorTreat   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colorHat     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorHatBand = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	colorBow     = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	colorButton  = color.RGBA{R: 255, G: 255, B: 255, A: 70}
	colorPanel   = color.RGBA{R: 30, G: 30, B: 40, A: 230}
	colorDim     = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// printCentered draws each line of text centered on x.
func printCentered(dst *ebiten.Image, text string, x, y int) {
	for i, line := range strings.Split(text, "\n") {
		ebitenutil.DebugPrintAt(dst, line, x-len(line)*glyphW/2, y+i*glyphH)
	}
}

// drawField draws the sky, ground, treats and the cat.
func drawField(dst *ebiten.Image, sim *catch.Sim) {
	dst.Fill(colorSky)
	fillRect(dst, core.NewRect(0, sim.FieldH-4, sim.FieldW, 4), colorGround)

	for _, t := range sim.Treats {
		r := t.Rect()
		cx, cy := r.Center()
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r.W)/2, colorTreat, false)
	}
	drawCat(dst, sim.Player.Rect(), sim.Cosmetics())
}

// drawCat draws the body, ears, eyes and any unlocked cosmetics.
func drawCat(dst *ebiten.Image, r core.Rect, cos *catch.Cosmetics) {
	fillRect(dst, r, colorCat)

	ear := r.W / 5
	fillRect(dst, core.NewRect(r.X+ear/2, r.Y-ear, ear, ear), colorEar)
	fillRect(dst, core.NewRect(r.Right()-ear-ear/2, r.Y-ear, ear, ear), colorEar)

	eye := max(r.W/12, 3)
	fillRect(dst, core.NewRect(r.X+r.W/3-eye/2, r.Y+r.H/4, eye, eye), colorEye)
	fillRect(dst, core.NewRect(r.X+2*r.W/3-eye/2, r.Y+r.H/4, eye, eye), colorEye)

	if cos.Has(catch.CosmeticHat) {
		brim := core.NewRect(r.X+r.W/4, r.Y-ear-6, r.W/2, 6)
		fillRect(dst, brim, colorHat)
		crown := core.NewRect(brim.X+brim.W/6, brim.Y-24, brim.W*2/3, 24)
		fillRect(dst, crown, colorHat)
		fillRect(dst, core.NewRect(crown.X, crown.Bottom()-6, crown.W, 5), colorHatBand)
	}
	if cos.Has(catch.CosmeticBow) {
		knot := core.NewRect(r.Right()-ear-6, r.Y+4, 10, 10)
		fillRect(dst, core.NewRect(knot.X-10, knot.Y-3, 10, 16), colorBow)
		fillRect(dst, core.NewRect(knot.Right(), knot.Y-3, 10, 16), colorBow)
		fillRect(dst, knot, colorBow)
	}
}

func drawButtons(dst *ebiten.Image, b buttons) {
	for _, btn := range []struct {
		r     core.Rect
		label string
	}{{b.left, "<"}, {b.right, ">"}} {
		fillRect(dst, btn.r, colorButton)
		cx, cy := btn.r.Center()
		printCentered(dst, btn.label, cx, cy-glyphH/2)
	}
}

func drawHUD(dst *ebiten.Image, score int) {
	ebitenutil.DebugPrintAt(dst, catch.HUDText(score), 10, 10)
}

// drawGameOver dims the field and shows the result with the record below it.
func drawGameOver(dst *ebiten.Image, s *lifecycle.Session) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	fillRect(dst, core.NewRect(0, 0, w, h), colorDim)

	score := s.State().Score
	lines := []string{catch.GameOverTitle, catch.GameOverSubtitle(score), ""}
	lines = append(lines, records.Lines(s.Standing(), s.Policy(), s.Player(), score)...)
	drawPanel(dst, lines, w, h)
}

// drawPrompt shows the name entry with the last known leaderboard.
func drawPrompt(dst *ebiten.Image, s *lifecycle.Session, b buttons, frame int) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	dst.Fill(colorSky)

	cursor := " "
	if frame/30%2 == 0 {
		cursor = "_"
	}
	lines := []string{
		"Treat Catcher",
		"",
		"Help " + catch.PlayerName + " catch the falling treats.",
		"Don't let a single one hit the ground!",
		"",
		"Name: " + s.Name() + cursor,
		"",
		"Enter to play",
	}
	if board := s.Standing().Board; len(board) > 0 {
		lines = append(lines, "")
		lines = append(lines, records.Lines(s.Standing(), s.Policy(), s.Player(), 0)...)
	}
	drawPanel(dst, lines, w, h-2*buttonH)

	fillRect(dst, b.play, colorButton)
	cx, cy := b.play.Center()
	printCentered(dst, "PLAY", cx, cy-glyphH/2)
}

func drawLoading(dst *ebiten.Image) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	printCentered(dst, "Fetching scores...", w/2, h/2)
}

// drawPanel draws the lines left-aligned on a panel centered in w x h.
func drawPanel(dst *ebiten.Image, lines []string, w, h int) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	pw := width*glyphW + 40
	ph := len(lines)*glyphH + 30
	panel := core.NewRect((w-pw)/2, (h-ph)/2, pw, ph)
	fillRect(dst, panel, colorPanel)

	x := panel.X + 20
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, x, panel.Y+15+i*glyphH)
	}
}
