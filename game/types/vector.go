package types

// Vector2 is a 2D point, also used as a velocity or step
type Vector2 struct {
	X, Y float64
}

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add moves v by o in place and returns v for chaining
func (v *Vector2) Add(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Scale multiplies both components by f in place
func (v *Vector2) Scale(f float64) *Vector2 {
	v.X *= f
	v.Y *= f
	return v
}

// Mult multiplies component-wise in place
func (v *Vector2) Mult(o Vector2) *Vector2 {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// Plus returns v+o without touching v
func (v Vector2) Plus(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Equals is exact coordinate equality, no tolerance
func (v Vector2) Equals(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
