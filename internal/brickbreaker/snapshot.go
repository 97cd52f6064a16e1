package brickbreaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the Game.
type Snapshot struct {
	Tick    int
	Phase   Phase
	Message string

	FieldW, FieldH int

	Paddle core.Rect
	Ball   core.Rect
	BallDX int
	BallDY int

	// Bricks holds the bounds of alive bricks only, in row-major order.
	Bricks      []core.Rect
	BricksTotal int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]core.Rect, 0, g.bricks.AliveCount())
	for row := range g.bricks.Rows() {
		for col := range g.bricks.Cols() {
			if g.bricks.Alive(row, col) {
				bricks = append(bricks, g.bricks.Bounds(row, col))
			}
		}
	}

	return Snapshot{
		Tick:        g.ticks,
		Phase:       g.phase,
		Message:     g.Message(),
		FieldW:      g.cfg.Playfield.Width,
		FieldH:      g.cfg.Playfield.Height,
		Paddle:      g.paddle.Bounds(),
		Ball:        g.ball.Bounds(),
		BallDX:      g.ball.DX,
		BallDY:      g.ball.DY,
		Bricks:      bricks,
		BricksTotal: g.bricks.Len(),
	}
}

// BricksAlive returns the number of bricks still in play.
func (snap *Snapshot) BricksAlive() int {
	return len(snap.Bricks)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Bricks)) //#nosec G115 -- hash computation
	h = hashRect(h, snap.Paddle)
	h = hashRect(h, snap.Ball)

	for _, b := range snap.Bricks {
		h = hashRect(h, b)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + uint64(r.X) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.W) //#nosec G115 -- hash computation
	h = h*31 + uint64(r.H) //#nosec G115 -- hash computation
	return h
}
