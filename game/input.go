package game

import (
	"sync/atomic"

	"gridsnake/game/types"
)

// Latch carries the latest direction from an input source to the simulation.
// Any goroutine may Set; the simulation Takes once per frame. Last write wins,
// nothing is queued.
type Latch struct {
	dir atomic.Int32
}

func (l *Latch) Set(d types.Direction) {
	if !d.Valid() {
		return
	}
	l.dir.Store(int32(d))
}

// Take returns the pending direction and clears it
func (l *Latch) Take() types.Direction {
	return types.Direction(l.dir.Swap(int32(types.None)))
}

// Peek returns the pending direction without clearing it
func (l *Latch) Peek() types.Direction {
	return types.Direction(l.dir.Load())
}

func (l *Latch) Clear() {
	l.dir.Store(int32(types.None))
}
