package entity

import "gridsnake/game/types"

// Food sits on a cell origin until eaten
type Food struct {
	Position types.Vector2
	Size     float64
	Color    types.Color
}

func NewFood(size float64) *Food {
	return &Food{Size: size, Color: types.ColorFood}
}

// Center is the middle of the food's cell
func (f *Food) Center() types.Vector2 {
	return types.Vector2{X: f.Position.X + f.Size/2, Y: f.Position.Y + f.Size/2}
}
