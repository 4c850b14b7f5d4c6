package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/lifecycle"
)

const (
	buttonW      = 120
	buttonH      = 60
	buttonMargin = 12
	playButtonW  = 160
)

// buttons are the on-screen controls for touch and mouse, in field
// coordinates.
type buttons struct {
	left, right, play core.Rect
}

func layoutButtons(w, h int) buttons {
	return buttons{
		left:  core.NewRect(buttonMargin, h-buttonH-buttonMargin, buttonW, buttonH),
		right: core.NewRect(w-buttonW-buttonMargin, h-buttonH-buttonMargin, buttonW, buttonH),
		play:  core.NewRect((w-playButtonW)/2, h/2+80, playButtonW, buttonH),
	}
}

// move returns the directions held by the given pointer positions.
func (b buttons) move(points []image.Point) core.InputState {
	var in core.InputState
	for _, p := range points {
		switch {
		case b.left.Contains(p.X, p.Y):
			in.Left = true
		case b.right.Contains(p.X, p.Y):
			in.Right = true
		}
	}
	return in
}

// tapped reports whether any of the points hit the play button.
func (b buttons) tapped(points []image.Point) bool {
	for _, p := range points {
		if b.play.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// heldPoints returns every touch and the cursor while the left button is down.
func heldPoints() []image.Point {
	var pts []image.Point
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

// pressedPoints returns touches and clicks that started this frame.
func pressedPoints() []image.Point {
	var pts []image.Point
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

func keyHeld(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// pollInput collects one frame of input. Letters only type into the name
// prompt while it is shown, so A and D do not end up in the name.
func pollInput(b buttons, phase lifecycle.Phase, typed []rune) lifecycle.Input {
	var in lifecycle.Input

	if phase == lifecycle.PhasePrompt {
		in.Typed = ebiten.AppendInputChars(typed[:0])
		in.Erase = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
		in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
			b.tapped(pressedPoints())
		return in
	}

	touch := b.move(heldPoints())
	in.Move.Left = touch.Left || keyHeld(ebiten.KeyArrowLeft, ebiten.KeyA)
	in.Move.Right = touch.Right || keyHeld(ebiten.KeyArrowRight, ebiten.KeyD)
	return in
}
