package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// surface issues game.Renderer calls as raylib draw calls. It is only valid
// between BeginDrawing and EndDrawing.
type surface struct {
	offsetX, offsetY float32
	width, height    float32
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *surface) ClearArea() {
	rl.DrawRectangle(int32(s.offsetX), int32(s.offsetY), int32(s.width), int32(s.height), toRL(types.ColorBlack))
}

func (s *surface) DrawGrid(grid types.Grid) {
	size := float32(grid.CellSize())
	color := toRL(types.ColorGridLine)
	for i := 1; i < grid.Cells; i++ {
		p := float32(i) * size
		rl.DrawLine(int32(s.offsetX+p), int32(s.offsetY), int32(s.offsetX+p), int32(s.offsetY+s.height), color)
		rl.DrawLine(int32(s.offsetX), int32(s.offsetY+p), int32(s.offsetX+s.width), int32(s.offsetY+p), color)
	}
}

func (s *surface) FillCell(x, y, w, h float64, c types.Color) {
	rl.DrawRectangleV(
		rl.Vector2{X: s.offsetX + float32(x), Y: s.offsetY + float32(y)},
		rl.Vector2{X: float32(w), Y: float32(h)},
		toRL(c))
}

func (s *surface) FillCircle(cx, cy, r float64, c types.Color) {
	rl.DrawCircleV(rl.Vector2{X: s.offsetX + float32(cx), Y: s.offsetY + float32(cy)}, float32(r), toRL(c))
}

func (s *surface) DrawText(text string, x, y float64, style game.TextStyle) {
	fontSize := int32(style.Size)
	px := int32(s.offsetX + float32(x))
	py := int32(s.offsetY+float32(y)) - fontSize/2
	if style.Align == game.AlignCenter {
		px -= rl.MeasureText(text, fontSize) / 2
	}

	color := toRL(style.Color)
	rl.DrawText(text, px, py, fontSize, color)
	if style.Bold {
		// the default font has no bold face
		rl.DrawText(text, px+1, py, fontSize, color)
	}
}
