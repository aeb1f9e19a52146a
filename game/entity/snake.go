package entity

import (
	"gridsnake/game/types"
)

// Feeder is asked, once per movement step and before the head moves, whether
// the head is on food. Returning true grows the snake by one segment.
type Feeder interface {
	Feed(head types.Vector2) bool
}

// Step reports what a single Tick did
type Step struct {
	Moved    bool
	Fed      bool
	Collided bool
}

type Snake struct {
	Position types.Vector2
	Heading  types.Direction
	// History holds previously occupied head positions, most recent first
	History []types.Vector2
	Total   int
	Delay   int
	Color   types.Color

	cellSize  float64
	moveDelay int
	lastStep  types.Direction
}

func NewSnake(grid types.Grid, moveDelay int) *Snake {
	return &Snake{
		Position:  grid.Center(),
		Heading:   types.None,
		History:   make([]types.Vector2, 0, 8),
		Total:     1,
		Delay:     moveDelay,
		Color:     types.ColorSnake,
		cellSize:  grid.CellSize(),
		moveDelay: moveDelay,
	}
}

// Velocity is the per-step movement vector for the current heading
func (s *Snake) Velocity() types.Vector2 {
	return s.Heading.Step(s.cellSize)
}

// SetHeading changes direction unless the request reverses the snake onto its
// own neck. Both the pending heading and the direction of the last executed
// step are guarded, so two quick turns inside one delay window cannot add up
// to a reversal.
func (s *Snake) SetHeading(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	if types.IsOpposite(s.Heading, dir) || types.IsOpposite(s.lastStep, dir) {
		return false
	}
	s.Heading = dir
	return true
}

// Tick runs once per frame. The snake only moves when its delay countdown
// reaches zero.
func (s *Snake) Tick(grid types.Grid, feeder Feeder) Step {
	grid.Wrap(&s.Position)

	s.Delay--
	if s.Delay > 0 {
		return Step{}
	}

	var step Step
	if feeder != nil && feeder.Feed(s.Position) {
		s.Total++
		step.Fed = true
	}

	s.History = append(s.History, types.Vector2{})
	copy(s.History[1:], s.History)
	s.History[0] = s.Position
	if len(s.History) > s.Total {
		s.History = s.History[:s.Total]
	}

	s.Position.Add(s.Velocity())
	grid.Wrap(&s.Position)
	s.lastStep = s.Heading
	s.Delay = s.moveDelay
	step.Moved = true

	if s.Total > types.SelfCollisionMinTotal {
		step.Collided = s.SelfCollides()
	}
	return step
}

// SelfCollides reports whether the head sits on any history cell
func (s *Snake) SelfCollides() bool {
	for _, p := range s.History {
		if s.Position.Equals(p) {
			return true
		}
	}
	return false
}

// Occupies reports whether p is the head or part of the trail
func (s *Snake) Occupies(p types.Vector2) bool {
	if s.Position.Equals(p) {
		return true
	}
	for _, h := range s.History {
		if h.Equals(p) {
			return true
		}
	}
	return false
}

// Cells returns the head followed by the trail
func (s *Snake) Cells() []types.Vector2 {
	cells := make([]types.Vector2, 0, len(s.History)+1)
	cells = append(cells, s.Position)
	return append(cells, s.History...)
}

func (s *Snake) Size() float64 {
	return s.cellSize
}
