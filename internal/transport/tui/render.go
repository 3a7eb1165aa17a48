package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/papersoccer/internal/entity"
)

// Every point takes cellWidth columns and cellHeight rows, paths are drawn in between.
const (
	cellWidth  = 4
	cellHeight = 2
)

const (
	runeCurrent   = '●'
	runeAvailable = '○'
	runeGoal      = '◆'
	runeTaken     = '+'
	runeFree      = '·'

	runeHorizontal = '─'
	runeVertical   = '│'
	runeFalling    = '╲'
	runeRising     = '╱'
	runeCrossing   = '╳'
)

type glyph struct {
	r     rune
	style tcell.Style
}

func colorOf(color entity.Color) tcell.Color {
	return tcell.GetColor(string(color))
}

// boardSize - returns the number of columns and rows the board needs on screen.
func boardSize(board *entity.Board) (int, int) {
	return (board.Width-1)*cellWidth + 1, (board.Height-1)*cellHeight + 1
}

// layout renders the game into rows of glyphs. Empty glyphs have a zero rune.
func layout(game *entity.Game) [][]glyph {
	if !game.IsActive() {
		return nil
	}

	cols, rows := boardSize(game.Board)
	grid := make([][]glyph, rows)
	for i := range grid {
		grid[i] = make([]glyph, cols)
	}

	for _, point := range game.Board.Points {
		for _, path := range point.OutgoingPaths {
			drawPath(grid, point.X*cellWidth, point.Y*cellHeight, path)
		}
	}

	for _, point := range game.Board.Points {
		view, _ := game.View(point.X, point.Y)
		grid[point.Y*cellHeight][point.X*cellWidth] = pointGlyph(view, game.Turn)
	}

	return grid
}

func pointGlyph(view entity.PointView, turn entity.Color) glyph {
	style := tcell.StyleDefault

	switch {
	case view.IsCurrentPoint:
		return glyph{r: runeCurrent, style: style.Foreground(colorOf(turn)).Bold(true)}
	case view.IsAvailableFromCurrent:
		return glyph{r: runeAvailable, style: style.Foreground(tcell.ColorGreen)}
	case view.IsGoal:
		return glyph{r: runeGoal, style: style.Foreground(tcell.ColorYellow)}
	case view.Taken:
		return glyph{r: runeTaken, style: style}
	default:
		return glyph{r: runeFree, style: style.Dim(true)}
	}
}

func drawPath(grid [][]glyph, sx, sy int, path entity.Path) {
	offset, ok := path.Direction.Offset()
	if !ok {
		return
	}

	style := tcell.StyleDefault
	if path.Color != "" {
		style = style.Foreground(colorOf(path.Color))
	}

	switch {
	case offset.DY == 0:
		for i := 1; i < cellWidth; i++ {
			put(grid, sx+offset.DX*i, sy, glyph{r: runeHorizontal, style: style})
		}
	case offset.DX == 0:
		for i := 1; i < cellHeight; i++ {
			put(grid, sx, sy+offset.DY*i, glyph{r: runeVertical, style: style})
		}
	default:
		x, y := sx+offset.DX*cellWidth/2, sy+offset.DY*cellHeight/2
		r := runeRising
		if offset.DX == offset.DY {
			r = runeFalling
		}
		// two diagonals of the same square share the middle cell
		if existing := at(grid, x, y); existing != 0 && existing != r {
			r = runeCrossing
		}
		put(grid, x, y, glyph{r: r, style: style})
	}
}

func at(grid [][]glyph, x, y int) rune {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return 0
	}
	return grid[y][x].r
}

func put(grid [][]glyph, x, y int, g glyph) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = g
}

// draw - paints the game onto screen with its top-left point at (x, y).
func draw(screen tcell.Screen, x, y int, game *entity.Game) {
	for row, glyphs := range layout(game) {
		for col, g := range glyphs {
			if g.r == 0 {
				continue
			}
			screen.SetContent(x+col, y+row, g.r, nil, g.style)
		}
	}
}

// pointAtScreen - maps a screen position to the board point drawn there, allowing one
// column of slack either side of the point.
func pointAtScreen(originX, originY, mouseX, mouseY int, board *entity.Board) (entity.Coord, bool) {
	dx, dy := mouseX-originX, mouseY-originY
	if dx < -1 || dy < 0 || dy%cellHeight != 0 {
		return entity.Coord{}, false
	}

	px := (dx + cellWidth/2) / cellWidth
	if diff := dx - px*cellWidth; diff < -1 || diff > 1 {
		return entity.Coord{}, false
	}

	c := entity.Coord{X: px, Y: dy / cellHeight}
	if !board.Contains(c.X, c.Y) {
		return entity.Coord{}, false
	}

	return c, true
}
