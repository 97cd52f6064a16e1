package brickbreaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// BrickGrid is a fixed rows x cols layout of single-hit bricks.
// Positions are derived from the cell index, so only alive flags are stored
// (flattened: row*cols + col = index).
type BrickGrid struct {
	rows, cols    int
	width, height int
	gap           int
	alive         []bool
	aliveCount    int
}

// NewBrickGrid places rows x cols bricks of the given size, separated by gap,
// starting at the playfield origin. All bricks start alive.
func NewBrickGrid(rows, cols, width, height, gap int) *BrickGrid {
	rows, cols = core.Max(rows, 0), core.Max(cols, 0)
	g := &BrickGrid{
		rows:   rows,
		cols:   cols,
		width:  width,
		height: height,
		gap:    gap,
		alive:  make([]bool, rows*cols),
	}
	for i := range g.alive {
		g.alive[i] = true
	}
	g.aliveCount = len(g.alive)
	return g
}

// Rows returns the number of brick rows.
func (g *BrickGrid) Rows() int {
	return g.rows
}

// Cols returns the number of brick columns.
func (g *BrickGrid) Cols() int {
	return g.cols
}

// Len returns the total number of cells, alive or not.
func (g *BrickGrid) Len() int {
	return len(g.alive)
}

// AliveCount returns how many bricks are still in play.
func (g *BrickGrid) AliveCount() int {
	return g.aliveCount
}

// Bounds returns the rectangle of the brick at (row, col).
func (g *BrickGrid) Bounds(row, col int) core.Rect {
	return core.NewRect(col*(g.width+g.gap), row*(g.height+g.gap), g.width, g.height)
}

// Alive reports whether the brick at (row, col) is still in play.
// Out-of-range cells are never alive.
func (g *BrickGrid) Alive(row, col int) bool {
	i, ok := g.index(row, col)
	return ok && g.alive[i]
}

// Destroy removes the brick at (row, col) from play. It returns true only
// for the call that actually destroyed it.
func (g *BrickGrid) Destroy(row, col int) bool {
	i, ok := g.index(row, col)
	if !ok || !g.alive[i] {
		return false
	}
	g.alive[i] = false
	g.aliveCount--
	return true
}

func (g *BrickGrid) index(row, col int) (int, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}
	return row*g.cols + col, true
}
