package types

import "testing"

func TestIsOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for a, b := range pairs {
		if !IsOpposite(a, b) {
			t.Errorf("IsOpposite(%v, %v) = false", a, b)
		}
		if IsOpposite(a, a) {
			t.Errorf("IsOpposite(%v, %v) = true", a, a)
		}
		if IsOpposite(a, a.TurnLeft()) {
			t.Errorf("perpendicular %v/%v reported opposite", a, a.TurnLeft())
		}
	}
	if IsOpposite(None, None) || IsOpposite(None, Up) {
		t.Error("None must never be opposite")
	}
}

func TestStepRoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if got := DirectionOf(d.Step(25)); got != d {
			t.Errorf("DirectionOf(%v.Step) = %v", d, got)
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("turning %v left then right changed it", d)
		}
	}
	if !None.Step(25).IsZero() {
		t.Error("None must step by zero")
	}
}

func TestVectorInPlace(t *testing.T) {
	v := Vec(1, 2)
	v.Add(Vec(3, 4)).Scale(2)
	if !v.Equals(Vec(8, 12)) {
		t.Errorf("got %+v, want (8,12)", v)
	}
	v.Mult(Vec(0.5, -1))
	if !v.Equals(Vec(4, -12)) {
		t.Errorf("got %+v, want (4,-12)", v)
	}
}

func TestHue(t *testing.T) {
	if c := Hue(0); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("Hue(0) = %+v, want pure red", c)
	}
	if c := Hue(120); c.G != 255 || c.R != 0 {
		t.Errorf("Hue(120) = %+v, want pure green", c)
	}
}
