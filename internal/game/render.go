package game

import (
	"fmt"

	"blockfall/internal/core"
)

// hudHeight is the number of HUD lines above the well.
const hudHeight = 2

// Each board column renders as two characters to keep cells roughly
// square in a terminal.
const cellRunes = 2

func (g *Game) boardPixelWidth() int {
	return g.board.Width() * cellRunes
}

// Render draws the session into the screen buffer: HUD, walled well,
// locked cells, active piece, preview, and any state overlay. All
// actual terminal output is the platform's job.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offsetX := (dst.Width() - g.boardPixelWidth()) / 2
	offsetY := hudHeight + 1

	// Well walls
	dst.DrawBox(core.NewRect(offsetX-1, offsetY-1, g.boardPixelWidth()+2, g.board.Height()+2))

	// Locked cells
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			kind := g.board.Cell(x, y)
			if kind == KindNone {
				continue
			}
			g.drawCell(dst, offsetX, offsetY, x, y, kind)
		}
	}

	// Active piece
	if g.hasActive {
		for _, c := range g.active.Cells() {
			g.drawCell(dst, offsetX, offsetY, c.X, c.Y, g.active.Kind)
		}
	}

	g.renderPreview(dst, offsetX+g.boardPixelWidth()+3, offsetY)

	switch g.state {
	case StateGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.score.Points()))
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell renders one board cell as a colored block.
func (g *Game) drawCell(dst *core.Screen, offsetX, offsetY, x, y int, kind PieceKind) {
	px := offsetX + x*cellRunes
	py := offsetY + y
	dst.SetCell(px, py, '█', kind.Color())
	dst.SetCell(px+1, py, '█', kind.Color())
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blockfall   Score: %d  Level: %d  Lines: %d",
		g.score.Points(), g.score.Level(), g.score.Lines())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderPreview draws the upcoming pieces to the right of the well.
func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	if len(g.queue) == 0 {
		return
	}
	dst.DrawText(x, y, "Next:")
	row := y + 2
	for _, kind := range g.queue {
		p := Piece{Kind: kind}
		for _, c := range p.Cells() {
			dst.SetCell(x+c.X*cellRunes, row+c.Y, '█', kind.Color())
			dst.SetCell(x+c.X*cellRunes+1, row+c.Y, '█', kind.Color())
		}
		row += p.Height() + 1
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCentered := func(text string, y int) {
		if y < 0 || y >= h {
			return
		}
		x := (w - len(text)) / 2
		for i, ch := range text {
			if px := x + i; px >= 0 && px < w {
				dst.Set(px, y, ch)
			}
		}
	}
	drawCentered(line1, boxY+1)
	drawCentered(line2, boxY+3)
}
