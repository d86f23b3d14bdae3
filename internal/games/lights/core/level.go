package core

import "fmt"

// LevelData holds the settings a game is started with.
type LevelData struct {
	ID        string
	Name      string
	Width     int
	Height    int
	GoThrough bool
}

// DefaultLevels returns the built-in presets.
func DefaultLevels() []LevelData {
	return []LevelData{
		{ID: "small", Name: "Small", Width: 5, Height: 4, GoThrough: false},
		{ID: "large", Name: "Large", Width: 9, Height: 9, GoThrough: false},
		{ID: "wrap", Name: "Wrap", Width: 9, Height: 9, GoThrough: true},
	}
}

// CustomLevel builds a level record for an arbitrary size.
func CustomLevel(width, height int, goThrough bool) LevelData {
	width = clampSize(width, MinWidth, MaxWidth)
	height = clampSize(height, MinHeight, MaxHeight)
	id := fmt.Sprintf("custom-%dx%d", width, height)
	name := fmt.Sprintf("Custom %dx%d", width, height)
	if goThrough {
		id += "-wrap"
		name += " wrap"
	}
	return LevelData{ID: id, Name: name, Width: width, Height: height, GoThrough: goThrough}
}

// String returns a short description like "Small 5x4".
func (l LevelData) String() string {
	s := fmt.Sprintf("%s %dx%d", l.Name, l.Width, l.Height)
	if l.GoThrough {
		s += " wrap"
	}
	return s
}
