package brickbreaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// Autopilot is a simple input source that keeps the paddle under the ball.
// It is used for headless runs and the demo mode.
type Autopilot struct {
	step int // Paddle movement per action; also the dead zone half-width
}

// NewAutopilot creates an autopilot for a paddle that moves step units per action.
func NewAutopilot(step int) *Autopilot {
	return &Autopilot{step: core.Max(step, 1)}
}

// Action returns the move that brings the paddle center closer to the ball
// center, or ActionNone when they are within one step or the game has ended.
func (a *Autopilot) Action(snap Snapshot) core.Action {
	if snap.Phase.Terminal() {
		return core.ActionNone
	}

	ballX, _ := snap.Ball.Center()
	paddleX, _ := snap.Paddle.Center()

	switch diff := ballX - paddleX; {
	case diff >= a.step:
		return core.ActionRight
	case diff <= -a.step:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
