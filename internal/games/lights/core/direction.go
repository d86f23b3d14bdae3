// Package core provides the net engine for the Turn on the Lights puzzle.
// This package is UI-agnostic; all randomness comes from an injected Source.
package core

// Direction is one of the four cardinal directions, cyclic N -> E -> S -> W.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// DirectionCount is the number of directions.
const DirectionCount = 4

// AllDirections lists directions in traversal order.
var AllDirections = [DirectionCount]Direction{North, East, South, West}

// Turn returns the direction rotated clockwise k quarter turns.
// Negative k turns counter-clockwise.
func (d Direction) Turn(k int) Direction {
	return Direction(((int(d)+k)%DirectionCount + DirectionCount) % DirectionCount)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.Turn(2)
}

// Next returns the clockwise neighbour.
func (d Direction) Next() Direction {
	return d.Turn(1)
}

// Prev returns the counter-clockwise neighbour.
func (d Direction) Prev() Direction {
	return d.Turn(-1)
}

// Delta returns the (dx, dy) offset of one step. North decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}
