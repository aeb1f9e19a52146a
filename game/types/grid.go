package types

import "math"

// Grid describes the arena: its pixel bounds and how many cells fit per side
type Grid struct {
	Width  float64
	Height float64
	Cells  int
}

func NewGrid(width, height float64, cells int) Grid {
	return Grid{Width: width, Height: height, Cells: cells}
}

// CellSize is the side of one cell; the arena is assumed square
func (g Grid) CellSize() float64 {
	return g.Width / float64(g.Cells)
}

// Center returns the origin of the middle cell, (W/2, H/2) for an even cell count
func (g Grid) Center() Vector2 {
	return g.CellOrigin(g.Cells/2, g.Cells/2)
}

// CellOrigin returns the top-left corner of cell (col, row)
func (g Grid) CellOrigin(col, row int) Vector2 {
	size := g.CellSize()
	return Vector2{X: float64(col) * size, Y: float64(row) * size}
}

// CellOf returns the column and row containing p
func (g Grid) CellOf(p Vector2) (col, row int) {
	size := g.CellSize()
	return int(math.Floor(p.X / size)), int(math.Floor(p.Y / size))
}

// CellCount is the total number of cells in the arena
func (g Grid) CellCount() int {
	return g.Cells * g.Cells
}

// Contains reports whether p lies inside the arena bounds
func (g Grid) Contains(p Vector2) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap applies the toroidal wall rule in place: reaching the far bound resets
// the axis to 0, going below 0 resets it to bound - cellSize
func (g Grid) Wrap(p *Vector2) {
	size := g.CellSize()
	if p.X >= g.Width {
		p.X = 0
	}
	if p.Y >= g.Height {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - size
	}
	if p.X < 0 {
		p.X = g.Width - size
	}
}

// WrappedDistance is the Manhattan distance in cells, taking the wrap-around into account
func (g Grid) WrappedDistance(a, b Vector2) int {
	ac, ar := g.CellOf(a)
	bc, br := g.CellOf(b)
	dx := abs(ac - bc)
	dy := abs(ar - br)

	if dx > g.Cells/2 {
		dx = g.Cells - dx
	}
	if dy > g.Cells/2 {
		dy = g.Cells - dy
	}

	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
