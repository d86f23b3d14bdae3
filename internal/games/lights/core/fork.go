package core

import (
	"math/bits"
	"strings"
)

// Fork is the set of open directions in a cell, one bit per Direction.
type Fork uint8

const (
	forkMask     Fork = 0x0F
	forkStraight      = Fork(1<<North | 1<<South)
)

// NewFork returns a fork with the given directions open.
func NewFork(dirs ...Direction) Fork {
	var f Fork
	f.Add(dirs...)
	return f
}

func bit(d Direction) Fork {
	return Fork(1) << (d % DirectionCount)
}

// Add opens the given directions.
func (f *Fork) Add(dirs ...Direction) {
	for _, d := range dirs {
		*f |= bit(d)
	}
}

// Remove closes the given directions.
func (f *Fork) Remove(dirs ...Direction) {
	for _, d := range dirs {
		*f &^= bit(d)
	}
}

// Clear closes every direction.
func (f *Fork) Clear() {
	*f = 0
}

// Fill opens every direction.
func (f *Fork) Fill() {
	*f = forkMask
}

// Contains reports whether d is open.
func (f Fork) Contains(d Direction) bool {
	return f&bit(d) != 0
}

// Count returns the number of open directions.
func (f Fork) Count() int {
	return bits.OnesCount8(uint8(f & forkMask))
}

func (f Fork) IsEmpty() bool { return f&forkMask == 0 }
func (f Fork) IsFull() bool  { return f&forkMask == forkMask }

// IsStraight reports whether the fork is exactly {N,S} or {E,W}.
func (f Fork) IsStraight() bool {
	f &= forkMask
	return f == forkStraight || f == forkStraight<<1
}

// Rotated returns the fork turned clockwise k quarter turns.
func (f Fork) Rotated(k int) Fork {
	k = ((k % DirectionCount) + DirectionCount) % DirectionCount
	f &= forkMask
	return ((f << k) | (f >> (DirectionCount - k))) & forkMask
}

// Rotate turns the fork in place.
func (f *Fork) Rotate(k int) {
	*f = f.Rotated(k)
}

func (f *Fork) RotateRight() { f.Rotate(1) }
func (f *Fork) RotateLeft()  { f.Rotate(-1) }

// Directions returns the open directions in N, E, S, W order.
func (f Fork) Directions() []Direction {
	dirs := make([]Direction, 0, f.Count())
	for _, d := range AllDirections {
		if f.Contains(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String returns the open directions, e.g. "NES", or "-" when empty.
func (f Fork) String() string {
	if f.IsEmpty() {
		return "-"
	}
	var sb strings.Builder
	for _, d := range f.Directions() {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Cell is one grid position: its fork and whether power reaches it.
type Cell struct {
	Fork    Fork
	Plugged bool
}

// Contains reports whether the cell's fork is open toward d.
func (c Cell) Contains(d Direction) bool {
	return c.Fork.Contains(d)
}
