package lights

import (
	platformcore "github.com/vovakirdan/tui-lights/internal/core"
	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

const (
	cellW      = 3 // left arm, glyph, right arm
	hudHeight  = 2
	footerH    = 1
	minScreenW = 40
)

// layout positions the board on screen.
type layout struct {
	frame platformcore.Rect // board including its border
	board platformcore.Rect // cell area
	fits  bool
	needW int
	needH int
}

func computeLayout(screenW, screenH, fieldW, fieldH int) layout {
	boardW, boardH := fieldW*cellW, fieldH
	frameW, frameH := boardW+2, boardH+2

	l := layout{
		needW: platformcore.Max(frameW, minScreenW),
		needH: frameH + hudHeight + footerH,
	}
	l.fits = screenW >= l.needW && screenH >= l.needH

	spare := platformcore.Max(0, screenH-l.needH)
	l.frame = platformcore.NewRect((screenW-frameW)/2, hudHeight+spare/2, frameW, frameH)
	l.board = l.frame.Inset(1)
	return l
}

// cellAt maps a screen position to the grid cell under it.
func (l layout) cellAt(x, y int) (core.Point, bool) {
	if !l.fits || !l.board.Contains(x, y) {
		return core.Point{}, false
	}
	return core.Pt((x-l.board.X)/cellW, y-l.board.Y), true
}

// origin returns the screen position of the left arm of cell p.
func (l layout) origin(p core.Point) (int, int) {
	return l.board.X + p.X*cellW, l.board.Y + p.Y
}
