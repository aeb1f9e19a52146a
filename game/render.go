package game

import "gridsnake/game/types"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

type TextStyle struct {
	Size  float64
	Bold  bool
	Color types.Color
	Align Align
}

// Renderer is the drawing surface the core emits calls to. Coordinates are
// arena pixels.
type Renderer interface {
	ClearArea()
	DrawGrid(grid types.Grid)
	FillCell(x, y, w, h float64, c types.Color)
	FillCircle(cx, cy, r float64, c types.Color)
	DrawText(text string, x, y float64, style TextStyle)
}

type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdGrid
	CmdCell
	CmdCircle
	CmdText
)

// Command is one recorded Renderer call
type Command struct {
	Kind  CommandKind
	X, Y  float64
	W, H  float64
	R     float64
	Color types.Color
	Text  string
	Style TextStyle
	Grid  types.Grid
}

// DisplayList records Renderer calls so they can be inspected or replayed
// onto a real surface later. ClearArea drops everything recorded so far.
type DisplayList struct {
	Commands []Command
}

func (d *DisplayList) ClearArea() {
	d.Commands = append(d.Commands[:0], Command{Kind: CmdClear})
}

func (d *DisplayList) DrawGrid(grid types.Grid) {
	d.Commands = append(d.Commands, Command{Kind: CmdGrid, Grid: grid})
}

func (d *DisplayList) FillCell(x, y, w, h float64, c types.Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdCell, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DisplayList) FillCircle(cx, cy, r float64, c types.Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdCircle, X: cx, Y: cy, R: r, Color: c})
}

func (d *DisplayList) DrawText(text string, x, y float64, style TextStyle) {
	d.Commands = append(d.Commands, Command{Kind: CmdText, X: x, Y: y, Text: text, Style: style})
}

// Replay issues the recorded calls onto r in order
func (d *DisplayList) Replay(r Renderer) {
	for _, c := range d.Commands {
		switch c.Kind {
		case CmdClear:
			r.ClearArea()
		case CmdGrid:
			r.DrawGrid(c.Grid)
		case CmdCell:
			r.FillCell(c.X, c.Y, c.W, c.H, c.Color)
		case CmdCircle:
			r.FillCircle(c.X, c.Y, c.R, c.Color)
		case CmdText:
			r.DrawText(c.Text, c.X, c.Y, c.Style)
		}
	}
}

// Texts returns the strings drawn since the last clear
func (d *DisplayList) Texts() []string {
	var out []string
	for _, c := range d.Commands {
		if c.Kind == CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many commands of kind k were recorded
func (d *DisplayList) Count(k CommandKind) int {
	n := 0
	for _, c := range d.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Copy returns an independent list with the same commands
func (d *DisplayList) Copy() *DisplayList {
	cp := &DisplayList{Commands: make([]Command, len(d.Commands))}
	copy(cp.Commands, d.Commands)
	return cp
}
