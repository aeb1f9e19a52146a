package ai

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Action is a move relative to the current heading. Relative actions can
// never ask for a reversal.
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight
)

// NumActions is the size of the action space
const NumActions = 3

func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "left"
	case Straight:
		return "straight"
	case TurnRight:
		return "right"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Apply turns heading according to the action. A snake without a heading is
// treated as facing right.
func (a Action) Apply(heading types.Direction) types.Direction {
	if heading == types.None {
		heading = types.Right
	}
	switch a {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

// State is what the autopilot perceives before a movement step
type State struct {
	Heading types.Direction
	// FoodDX, FoodDY are the signs (-1, 0, 1) of the shortest toroidal
	// delta from head to food, in cells
	FoodDX, FoodDY int
	FoodDistance   int
	// Danger flags the cells reached by TurnLeft, Straight and TurnRight
	Danger [NumActions]bool
}

// Sense reads a State from a session snapshot
func Sense(snap game.Snapshot) State {
	grid := snap.Grid
	heading := snap.Heading
	if heading == types.None {
		heading = types.Right
	}

	hc, hr := grid.CellOf(snap.Head)
	fc, fr := grid.CellOf(snap.Food)

	st := State{
		Heading:      snap.Heading,
		FoodDX:       sign(wrapDelta(fc-hc, grid.Cells)),
		FoodDY:       sign(wrapDelta(fr-hr, grid.Cells)),
		FoodDistance: grid.WrappedDistance(snap.Head, snap.Food),
	}

	for a := TurnLeft; a <= TurnRight; a++ {
		next := snap.Head.Plus(a.Apply(heading).Step(grid.CellSize()))
		grid.Wrap(&next)
		st.Danger[a] = snap.Occupied(next)
	}
	return st
}

// Key is the tabular state key: dangers, food direction relative to the
// heading, and the heading itself
func (st State) Key() string {
	return fmt.Sprintf("%d%d%d|%d,%d|%d",
		boolToInt(st.Danger[TurnLeft]),
		boolToInt(st.Danger[Straight]),
		boolToInt(st.Danger[TurnRight]),
		st.FoodDX, st.FoodDY,
		int(st.Heading),
	)
}

// InputFeatures is the length of Vector
const InputFeatures = 11

// Vector encodes the state for the network: three danger flags, the heading
// one-hot and the food direction as four flags (left, right, up, down)
func (st State) Vector() []float64 {
	v := make([]float64, InputFeatures)
	for a := TurnLeft; a <= TurnRight; a++ {
		if st.Danger[a] {
			v[a] = 1
		}
	}

	heading := st.Heading
	if heading == types.None {
		heading = types.Right
	}
	v[3+int(heading)-1] = 1

	if st.FoodDX < 0 {
		v[7] = 1
	}
	if st.FoodDX > 0 {
		v[8] = 1
	}
	if st.FoodDY < 0 {
		v[9] = 1
	}
	if st.FoodDY > 0 {
		v[10] = 1
	}
	return v
}

// wrapDelta folds d into the shortest signed distance on a ring of n cells
func wrapDelta(d, n int) int {
	if d > n/2 {
		d -= n
	}
	if d < -n/2 {
		d += n
	}
	return d
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
