package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell including the left border; fits 131072
	cellHeight = 2 // Height of each cell including the top border
	hudHeight  = 3
)

// boardSize returns the rendered board dimensions including borders.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Board.Cols*cellWidth + 1, g.cfg.Board.Rows*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, len(g.levels), g.currentTarget)
	} else {
		info = fmt.Sprintf("Max: %d", engine.MaxValue(g.grid))
	}
	dst.DrawText(max(boardX+boardW-len(info), boardX), 1, info)

	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	dst.DrawTextColor(boardX+(boardW-len(modeStr))/2, 2, modeStr, core.ColorGray)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetColor(px, py, gridCorner(x, y, cols, rows), core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r, row := range g.grid {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			valStr := strconv.Itoa(cell.Value)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColor(boardX+c*cellWidth+1+padLeft, boardY+r*cellHeight+1, valStr, g.cellColor(cell))
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// cellColor returns the highlight color for fresh tiles, the value color otherwise.
func (g *Game) cellColor(cell engine.Cell) core.Color {
	if g.highlight > 0 {
		switch cell.State {
		case engine.StateNew:
			return core.ColorBrightGreen
		case engine.StateMerged:
			return core.ColorBrightYellow
		}
	}
	return TileColor(cell.Value)
}

// TileColor maps a tile value to its display color.
func TileColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorBrightRed
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorMagenta
	case 128:
		return core.ColorYellow
	case 256:
		return core.ColorBrightMagenta
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorBrightCyan
	}
	return core.ColorBrightBlue
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= len(g.levels)-1 {
			drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", engine.MaxValue(g.grid))
		drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Save & quit"
}
