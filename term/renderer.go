// Package term plays the game in a terminal through tcell.
package term

import (
	"unicode/utf8"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as wide, so one arena cell maps to
// two columns and one row
const colsPerCell = 2

// Renderer draws game.Renderer calls onto a tcell screen. The arena starts at
// the top left corner.
type Renderer struct {
	screen   tcell.Screen
	cellSize float64
	cols     int
	rows     int
}

func NewRenderer(screen tcell.Screen, grid types.Grid) *Renderer {
	return &Renderer{
		screen:   screen,
		cellSize: grid.CellSize(),
		cols:     grid.Cells * colsPerCell,
		rows:     grid.Cells,
	}
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) cellAt(x, y float64) (col, row int) {
	return int(x/r.cellSize) * colsPerCell, int(y / r.cellSize)
}

func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// Size is the terminal area the arena covers
func (r *Renderer) Size() (cols, rows int) {
	return r.cols, r.rows
}

func (r *Renderer) ClearArea() {
	style := tcell.StyleDefault.Background(toTcell(types.ColorBlack))
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (r *Renderer) DrawGrid(grid types.Grid) {
	style := tcell.StyleDefault.
		Foreground(toTcell(types.ColorGridLine)).
		Background(toTcell(types.ColorBlack))
	for row := 0; row < grid.Cells; row++ {
		for col := 0; col < grid.Cells; col++ {
			r.set(col*colsPerCell, row, '·', style)
		}
	}
}

// FillCell paints whole cells as blocks; anything smaller than a cell, such
// as a particle, becomes a dot in its color
func (r *Renderer) FillCell(x, y, w, h float64, c types.Color) {
	col, row := r.cellAt(x, y)
	style := tcell.StyleDefault.Foreground(toTcell(c)).Background(toTcell(types.ColorBlack))
	if w < r.cellSize || h < r.cellSize {
		r.set(col, row, '•', style)
		return
	}
	for i := 0; i < colsPerCell; i++ {
		r.set(col+i, row, '█', style)
	}
}

func (r *Renderer) FillCircle(cx, cy, radius float64, c types.Color) {
	col, row := r.cellAt(cx, cy)
	style := tcell.StyleDefault.Foreground(toTcell(c)).Background(toTcell(types.ColorBlack))
	r.set(col, row, '(', style)
	r.set(col+1, row, ')', style)
}

func (r *Renderer) DrawText(text string, x, y float64, ts game.TextStyle) {
	col, row := int(x/r.cellSize*colsPerCell), int(y/r.cellSize)
	if ts.Align == game.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}

	style := tcell.StyleDefault.Foreground(toTcell(ts.Color)).Background(toTcell(types.ColorBlack))
	if ts.Bold {
		style = style.Bold(true)
	}
	for _, ch := range text {
		r.set(col, row, ch, style)
		col++
	}
}
