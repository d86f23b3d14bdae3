package lights

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-lights/internal/core"
	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

// forkGlyphs is indexed by the fork bitset (N=1 E=2 S=4 W=8).
var forkGlyphs = [16]rune{
	' ', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

const (
	armRune       = '─'
	houseLit      = '▪'
	houseDark     = '▫'
	footerHint    = "arrows move  space/z rotate  n new  1-3 level  ? help  q quit"
	welcomeMsg    = "Hello! Press ? for info"
	winTitle      = "The light is on!"
	winPlayAgain  = "Play again? R / N"
	revealTitle   = "Solution revealed"
	tooSmallTitle = "Window too small"
)

var helpLines = []string{
	"Turn on the Lights",
	"",
	"Rotate the wires so every cell",
	"connects back to the power source.",
	"",
	"arrows/hjkl  move cursor",
	"space x ent  rotate right",
	"z backspace  rotate left",
	"mouse        left/right click rotates",
	"n tab        new puzzle",
	"1 2 3        level presets",
	"[ ]          width -/+",
	"{ }          height -/+",
	"i insert     toggle wrap-around",
	"c delete     toggle cursor",
	"? f1         close this help",
}

// Render draws the puzzle.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	switch {
	case g.showHelp:
		g.renderHelp(dst)
	case g.engine.IsSolved():
		g.renderWin(dst)
	case g.engine.IsRevealed():
		drawPanel(dst, []string{revealTitle, "Not scored.", winPlayAgain}, g.palette.Unplugged)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, tooSmallTitle)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", g.layout.needW, g.layout.needH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Resize the terminal or press [ { to shrink the field")
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCenteredWithColor(0, g.Title(), g.palette.Plugged)

	status := fmt.Sprintf("Moves: %d", g.engine.MovesCount())
	if g.engine.IsSolved() {
		status = fmt.Sprintf("Score: %d", g.engine.Score())
	}
	dst.DrawTextCentered(1, "Level: "+g.level.String()+"   "+status)
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := g.screenH - 1
	if g.welcome {
		dst.DrawTextCenteredWithColor(y, welcomeMsg, g.palette.Cursor)
		return
	}
	dst.DrawTextCenteredWithColor(y, footerHint, platformcore.ColorGray)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	frameColor := g.palette.Frame
	if g.engine.GoThrough() {
		frameColor = g.palette.WrapFrame
	}
	dst.DrawBoxWithColor(g.layout.frame, frameColor)

	field := g.engine.Field()
	power := g.engine.PowerPos()
	cursorOn := g.showCursor && !g.engine.IsOver()

	for y := 0; y < field.Height(); y++ {
		for x := 0; x < field.Width(); x++ {
			p := core.Pt(x, y)
			c, _ := field.CellAt(p)
			color := g.palette.Unplugged
			if c.Plugged {
				color = g.palette.Plugged
			}
			if p == power {
				color = g.palette.Power
			}
			if cursorOn && p == g.cursor {
				color = g.palette.Cursor
			}
			g.drawCell(dst, p, c, color)
		}
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, p core.Point, c core.Cell, color platformcore.Color) {
	sx, sy := g.layout.origin(p)
	left, right := ' ', ' '
	if c.Contains(core.West) {
		left = armRune
	}
	if c.Contains(core.East) {
		right = armRune
	}
	if c.Fork.Count() == 1 {
		house := houseDark
		if c.Plugged {
			house = houseLit
		}
		if left == ' ' {
			left = house
		}
		if right == ' ' {
			right = house
		}
	}
	dst.SetWithColor(sx, sy, left, color)
	dst.SetWithColor(sx+1, sy, forkGlyphs[c.Fork&0x0F], color)
	dst.SetWithColor(sx+2, sy, right, color)
}

// drawPanel draws a bordered box with centered lines over the middle of the screen.
func drawPanel(dst *platformcore.Screen, lines []string, color platformcore.Color) {
	w := 0
	for _, l := range lines {
		w = platformcore.Max(w, len([]rune(l)))
	}
	r := dst.Bounds().Centered(w+4, len(lines)+2)
	dst.DrawRect(r, ' ')
	dst.DrawBoxWithColor(r, color)
	inner := r.Inset(1)
	for i, l := range lines {
		x := inner.X + (inner.W-len([]rune(l)))/2
		dst.DrawTextWithColor(x, inner.Y+i, l, color)
	}
}

func (g *Game) renderWin(dst *platformcore.Screen) {
	drawPanel(dst, []string{
		winTitle,
		fmt.Sprintf("Your score: %d.", g.engine.Score()),
		winPlayAgain,
	}, g.palette.Plugged)
}

func (g *Game) renderHelp(dst *platformcore.Screen) {
	lines := helpLines
	if g.cfg.Debug {
		lines = append(append([]string(nil), lines...), "end !        reveal solution", "ctrl+r       rescramble")
	}
	drawPanel(dst, lines, platformcore.ColorBrightWhite)
}
