package brickbreaker

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhasePlaying Phase = iota // Ball in play
	PhaseLost                 // Ball passed the paddle
	PhaseWon                  // All bricks destroyed
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (p Phase) Terminal() bool {
	return p == PhaseLost || p == PhaseWon
}

// Messages shown once the game has ended.
const (
	MessageLost = "Game Over!"
	MessageWon  = "You Win!"
)

// StepResult describes what happened during one tick.
type StepResult struct {
	Phase           Phase
	BricksDestroyed int
	PaddleHit       bool
}

// Game is the simulation controller. It owns the paddle, the ball, and the
// brick grid, and is advanced only by explicit Step calls.
// Game is not safe for concurrent use; the caller serializes input and ticks.
type Game struct {
	cfg    config.GameConfig
	paddle *Paddle
	ball   *Ball
	bricks *BrickGrid
	phase  Phase
	ticks  int
}

// New creates a game laid out from cfg. The config is expected to be
// validated; see config.GameConfig.Validate.
func New(cfg config.GameConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset restores the initial layout: paddle centered near the bottom, ball
// centered and moving down-right, every brick alive.
func (g *Game) Reset() {
	field := g.cfg.Playfield
	pc := g.cfg.Paddle
	bc := g.cfg.Ball
	kc := g.cfg.Bricks

	g.paddle = &Paddle{
		X:      field.Width/2 - pc.Width/2,
		Y:      field.Height - pc.Height - pc.BottomMargin,
		Width:  pc.Width,
		Height: pc.Height,
	}
	g.ball = &Ball{
		X:        field.Width/2 - bc.Diameter/2,
		Y:        field.Height/2 - bc.Diameter/2,
		Diameter: bc.Diameter,
		DX:       bc.Speed,
		DY:       bc.Speed,
	}
	g.bricks = NewBrickGrid(kc.Rows, kc.Columns, kc.Width, kc.Height, kc.Gap)
	g.phase = PhasePlaying
	g.ticks = 0
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of ticks simulated while playing.
func (g *Game) Ticks() int {
	return g.ticks
}

// Message returns the end-of-game text, or "" while playing.
func (g *Game) Message() string {
	switch g.phase {
	case PhaseLost:
		return MessageLost
	case PhaseWon:
		return MessageWon
	default:
		return ""
	}
}

// MovePaddleLeft moves the paddle one step left. Ignored once the game ended.
func (g *Game) MovePaddleLeft() {
	if g.phase.Terminal() {
		return
	}
	g.paddle.MoveLeft(g.cfg.Paddle.Speed)
}

// MovePaddleRight moves the paddle one step right. Ignored once the game ended.
func (g *Game) MovePaddleRight() {
	if g.phase.Terminal() {
		return
	}
	g.paddle.MoveRight(g.cfg.Paddle.Speed)
}

// HandleAction applies a paddle action immediately. Other actions are ignored.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.MovePaddleLeft()
	case core.ActionRight:
		g.MovePaddleRight()
	}
}

// Step advances the simulation by one tick. Once the game has ended it only
// reports the terminal phase.
//
// Order within a tick: move the ball, bounce off the paddle, destroy and
// bounce off bricks, bounce off walls, check for loss, then check for win.
func (g *Game) Step() StepResult {
	if g.phase.Terminal() {
		return StepResult{Phase: g.phase}
	}

	g.ticks++
	g.ball.Advance()

	result := g.resolveCollisions()

	if g.phase == PhasePlaying && g.bricks.AliveCount() == 0 {
		g.phase = PhaseWon
	}

	result.Phase = g.phase
	return result
}

// resolveCollisions applies paddle, brick, and wall reflections and the loss
// check. The ball is never pushed out of what it hit, so a sustained overlap
// reverses it again on the next tick.
func (g *Game) resolveCollisions() StepResult {
	var result StepResult
	ball := g.ball

	if ball.Bounds().Intersects(g.paddle.Bounds()) {
		ball.ReverseVertical()
		result.PaddleHit = true
	}

	// Each brick hit flips the direction again; simultaneous hits are not merged.
	for row := range g.bricks.Rows() {
		for col := range g.bricks.Cols() {
			if !g.bricks.Alive(row, col) {
				continue
			}
			if ball.Bounds().Intersects(g.bricks.Bounds(row, col)) {
				g.bricks.Destroy(row, col)
				ball.ReverseVertical()
				result.BricksDestroyed++
			}
		}
	}

	field := g.cfg.Playfield
	if ball.X <= 0 || ball.X+ball.Diameter >= field.Width {
		ball.ReverseHorizontal()
	}
	if ball.Y <= 0 {
		ball.ReverseVertical()
	}

	if ball.Y+ball.Diameter >= field.Height {
		g.phase = PhaseLost
	}

	return result
}
