package core

import "fmt"

// Point is a grid position. X grows to the right, Y grows downward.
type Point struct {
	X int
	Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Step returns the adjacent point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Wrap folds p into [0,w) x [0,h).
func (p Point) Wrap(w, h int) Point {
	return Point{X: ((p.X % w) + w) % w, Y: ((p.Y % h) + h) % h}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
