package tui

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar     = '='
	BallChar       = '●'
	BrickChar      = '█'
	BrickEdgeLeft  = '['
	BrickEdgeRight = ']'
)

// Minimum terminal area for the playfield.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Draw renders a snapshot into dst, scaling playfield units to cells.
// A terminal snapshot is drawn as a single centered message.
func Draw(dst *core.Screen, snap brickbreaker.Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	if snap.Phase.Terminal() {
		dst.DrawTextCentered(dst.Height()/2, snap.Message, core.ColorBrightWhite)
		return
	}

	toScreen := func(r core.Rect) core.Rect {
		return r.Scale(snap.FieldW, snap.FieldH, dst.Width(), dst.Height())
	}

	for _, b := range snap.Bricks {
		drawBrick(dst, toScreen(b))
	}
	dst.DrawRect(toScreen(snap.Paddle), PaddleChar, core.ColorBrightWhite)
	dst.DrawRect(toScreen(snap.Ball), BallChar, core.ColorBrightWhite)
}

// drawBrick fills a brick and outlines it. Bricks only one row tall get
// bracket edges instead of a box.
func drawBrick(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, BrickChar, core.ColorGreen)
	switch {
	case r.W >= 3 && r.H >= 3:
		dst.DrawBox(r, core.ColorWhite)
	case r.W >= 3:
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(r.X, y, BrickEdgeLeft, core.ColorWhite)
			dst.SetColored(r.Right()-1, y, BrickEdgeRight, core.ColorWhite)
		}
	}
}
