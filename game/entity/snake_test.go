package entity

import (
	"math"
	"testing"

	"gridsnake/game/types"
)

// foodAt feeds the snake whenever its head is on pos
type foodAt struct {
	pos   types.Vector2
	eaten int
}

func (f *foodAt) Feed(head types.Vector2) bool {
	if head.Equals(f.pos) {
		f.eaten++
		return true
	}
	return false
}

func newTestSnake() (*Snake, types.Grid) {
	grid := types.NewGrid(500, 500, 20)
	return NewSnake(grid, types.MoveDelay), grid
}

// runSteps ticks until n movement steps happened
func runSteps(t *testing.T, s *Snake, grid types.Grid, feeder Feeder, n int) Step {
	t.Helper()
	var last Step
	for moved := 0; moved < n; {
		last = s.Tick(grid, feeder)
		if last.Moved {
			moved++
		}
		if len(s.History) > s.Total {
			t.Fatalf("history length %d exceeds total %d", len(s.History), s.Total)
		}
	}
	return last
}

func TestSnakeIdleStep(t *testing.T) {
	s, grid := newTestSnake()

	for i := 1; i < types.MoveDelay; i++ {
		if st := s.Tick(grid, nil); st.Moved {
			t.Fatalf("snake moved on frame %d", i)
		}
	}
	if st := s.Tick(grid, nil); !st.Moved {
		t.Fatal("snake did not step on frame 7")
	}

	if !s.Position.Equals(types.Vec(250, 250)) {
		t.Errorf("position = %+v, want (250,250)", s.Position)
	}
	if len(s.History) != 1 || !s.History[0].Equals(types.Vec(250, 250)) {
		t.Errorf("history = %+v, want [(250,250)]", s.History)
	}
}

func TestSnakeMovesRight(t *testing.T) {
	s, grid := newTestSnake()
	if !s.SetHeading(types.Right) {
		t.Fatal("heading right rejected")
	}

	for i := 0; i < types.MoveDelay; i++ {
		s.Tick(grid, nil)
	}

	if !s.Position.Equals(types.Vec(275, 250)) {
		t.Errorf("position = %+v, want (275,250)", s.Position)
	}
	if !s.History[0].Equals(types.Vec(250, 250)) {
		t.Errorf("history front = %+v, want (250,250)", s.History[0])
	}
}

func TestSetHeadingRejectsReversal(t *testing.T) {
	s, grid := newTestSnake()
	s.SetHeading(types.Up)

	if s.SetHeading(types.Down) {
		t.Error("reversal accepted")
	}
	if s.Heading != types.Up {
		t.Errorf("heading = %v, want up", s.Heading)
	}

	// After stepping up, a quick left+down must not reverse into the neck
	runSteps(t, s, grid, nil, 1)
	if !s.SetHeading(types.Left) {
		t.Fatal("perpendicular turn rejected")
	}
	if s.SetHeading(types.Down) {
		t.Error("down accepted while last step was up")
	}
	if s.SetHeading(types.None) {
		t.Error("None accepted as heading")
	}
}

func TestSnakeEatsAndGrows(t *testing.T) {
	s, grid := newTestSnake()
	s.SetHeading(types.Right)
	food := &foodAt{pos: types.Vec(275, 250)}

	runSteps(t, s, grid, food, 1)
	if food.eaten != 0 {
		t.Fatal("food eaten before the head reached it")
	}
	st := runSteps(t, s, grid, food, 1)
	if !st.Fed || food.eaten != 1 {
		t.Fatalf("expected feed on second step, got %+v", st)
	}
	if s.Total != 2 {
		t.Errorf("total = %d, want 2", s.Total)
	}
	if len(s.History) != 2 {
		t.Errorf("history length = %d, want 2", len(s.History))
	}
}

func TestSnakeWrapsAcrossEdge(t *testing.T) {
	s, grid := newTestSnake()
	s.Position = types.Vec(475, 250)
	s.SetHeading(types.Right)

	runSteps(t, s, grid, nil, 1)
	if !s.Position.Equals(types.Vec(0, 250)) {
		t.Errorf("position = %+v, want (0,250)", s.Position)
	}

	s.SetHeading(types.Up)
	s.Position = types.Vec(0, 0)
	runSteps(t, s, grid, nil, 1)
	if !s.Position.Equals(types.Vec(0, 475)) {
		t.Errorf("position = %+v, want (0,475)", s.Position)
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	s, grid := newTestSnake()
	s.Total = 4

	// Square loop: right, down, left, up lands back on the start cell
	path := []types.Direction{types.Right, types.Down, types.Left}
	for _, d := range path {
		if !s.SetHeading(d) {
			t.Fatalf("heading %v rejected", d)
		}
		if st := runSteps(t, s, grid, nil, 1); st.Collided {
			t.Fatalf("collided early heading %v", d)
		}
	}

	s.SetHeading(types.Up)
	st := runSteps(t, s, grid, nil, 1)
	if !st.Collided {
		t.Fatalf("expected self collision at %+v with history %+v", s.Position, s.History)
	}
}

func TestShortSnakeSkipsSelfCheck(t *testing.T) {
	s, grid := newTestSnake()
	// Idle snake sits on its own history entry but is too short to collide
	st := runSteps(t, s, grid, nil, 3)
	if st.Collided {
		t.Error("snake with total <= 3 reported a self collision")
	}
	if !s.SelfCollides() {
		t.Error("idle head should overlap its history")
	}
}

func TestParticleDecay(t *testing.T) {
	p := NewParticle(types.Vec(10, 10), types.Vec(1, -1), 25, 90)
	if p.Size != 12.5 {
		t.Fatalf("initial size = %v, want 12.5", p.Size)
	}

	p.Update()
	if p.Age != 1 {
		t.Errorf("age = %d, want 1", p.Age)
	}
	if !p.Position.Equals(types.Vec(11, 9)) {
		t.Errorf("position = %+v, want (11,9)", p.Position)
	}
	if math.Abs(p.Velocity.Y+0.8) > 1e-9 {
		t.Errorf("vertical velocity = %v, want -0.8", p.Velocity.Y)
	}

	updates := 1
	for p.Alive() {
		p.Update()
		updates++
	}
	// 12.5 / 0.3 -> 42 updates to reach <= 0
	if updates != 42 {
		t.Errorf("particle lived %d updates, want 42", updates)
	}
}
