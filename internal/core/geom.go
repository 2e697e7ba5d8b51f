// Package core provides fundamental types and utilities for lambdooz.
// It contains no external dependencies (especially no Bubble Tea) so the
// engine and the renderer can share it and stay testable.
package core

// Rect is an axis-aligned box. X/Y is the top-left cell; Right and Bottom
// are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsVec is Contains for a Vector2.
func (r Rect) ContainsVec(v Vector2) bool {
	return r.Contains(v.X, v.Y)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
