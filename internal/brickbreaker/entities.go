// Package brickbreaker implements the Brick Breaker simulation: a paddle,
// a bouncing ball, and a grid of single-hit bricks advanced one tick at a time.
//
// The package is pure game logic. It never touches the terminal; a front end
// feeds it actions, calls Step at a fixed rate, and draws Snapshot results.
package brickbreaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// Paddle is the player's horizontally movable bar.
// Only X changes after construction.
type Paddle struct {
	X, Y          int
	Width, Height int
}

// MoveLeft shifts the paddle left by speed. The playfield edge is not enforced.
func (p *Paddle) MoveLeft(speed int) {
	p.X -= speed
}

// MoveRight shifts the paddle right by speed. The playfield edge is not enforced.
func (p *Paddle) MoveRight(speed int) {
	p.X += speed
}

// Bounds returns the rectangle currently occupied by the paddle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Ball is a circle modeled by its square bounding box.
type Ball struct {
	X, Y     int // Top-left corner of the bounding box
	Diameter int
	DX, DY   int // Velocity per tick
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.X += b.DX
	b.Y += b.DY
}

// ReverseVertical flips the vertical direction.
func (b *Ball) ReverseVertical() {
	b.DY = -b.DY
}

// ReverseHorizontal flips the horizontal direction.
func (b *Ball) ReverseHorizontal() {
	b.DX = -b.DX
}

// Bounds returns the rectangle currently occupied by the ball.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Diameter, b.Diameter)
}
