package core

import "fmt"

// Vector2 is an integer 2D coordinate.
// X grows to the right and Y grows upward (board coordinates, not screen rows).
// It is a comparable value type and can be used as a map key.
type Vector2 struct {
	X int
	Y int
}

// V is a convenience constructor for Vector2.
func V(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// String returns a string representation of the vector.
func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Add returns the component-wise sum of two vectors.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return v.Add(o.Neg())
}

// Scale multiplies both components by k.
func (v Vector2) Scale(k int) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Neg returns the vector pointing the opposite way.
func (v Vector2) Neg() Vector2 {
	return v.Scale(-1)
}

// Transpose swaps the X and Y components.
func (v Vector2) Transpose() Vector2 {
	return Vector2{X: v.Y, Y: v.X}
}

// ReflectX negates the X component.
func (v Vector2) ReflectX() Vector2 {
	return Vector2{X: -v.X, Y: v.Y}
}

// ReflectY negates the Y component.
func (v Vector2) ReflectY() Vector2 {
	return Vector2{X: v.X, Y: -v.Y}
}

// Direction is one of the four board directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Left, Right, Up, Down}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Unit returns the one-step vector for the direction.
func (d Direction) Unit() Vector2 {
	switch d {
	case Left:
		return Vector2{X: -1}
	case Right:
		return Vector2{X: 1}
	case Up:
		return Vector2{Y: 1}
	case Down:
		return Vector2{Y: -1}
	default:
		return Vector2{}
	}
}

// Horizontal reports whether the direction lies on the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}
