package game

import (
	"sync"
	"testing"

	"gridsnake/game/types"
)

func TestFrameQueueOrderAndCancel(t *testing.T) {
	q := NewFrameQueue()
	var got []int
	q.RequestFrame(func() { got = append(got, 1) })
	id := q.RequestFrame(func() { got = append(got, 2) })
	q.RequestFrame(func() { got = append(got, 3) })
	q.CancelFrame(id)

	if ran := q.RunPending(); ran != 2 {
		t.Fatalf("ran = %d, want 2", ran)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("order = %v, want [1 3]", got)
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var fn func()
	fn = func() {
		calls++
		q.RequestFrame(fn)
	}
	q.RequestFrame(fn)

	q.RunPending()
	q.RunPending()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("pending = %d, want 1", q.Pending())
	}
}

func TestFrameQueueCancelInsideBatch(t *testing.T) {
	q := NewFrameQueue()
	var second FrameID
	ran := false
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })

	if n := q.RunPending(); n != 1 || ran {
		t.Errorf("cancelled callback ran (n=%d)", n)
	}
}

func TestLatch(t *testing.T) {
	var l Latch
	if l.Take() != types.None {
		t.Fatal("empty latch not None")
	}

	l.Set(types.Up)
	l.Set(types.Direction(42))
	l.Set(types.Left)
	if l.Peek() != types.Left {
		t.Errorf("peek = %v, want left", l.Peek())
	}
	if l.Take() != types.Left || l.Take() != types.None {
		t.Error("take must return the last write once")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Set(types.Down)
		}()
	}
	wg.Wait()
	if l.Take() != types.Down {
		t.Error("concurrent writes lost")
	}
}

func TestDisplayListReplay(t *testing.T) {
	var src DisplayList
	src.ClearArea()
	src.DrawGrid(types.NewGrid(500, 500, 20))
	src.FillCell(0, 0, 25, 25, types.ColorSnake)
	src.FillCircle(12.5, 12.5, 12.5, types.ColorFood)
	src.DrawText("hi", 1, 2, TextStyle{Size: 10})

	var dst DisplayList
	src.Replay(&dst)
	if len(dst.Commands) != len(src.Commands) {
		t.Fatalf("replayed %d commands, want %d", len(dst.Commands), len(src.Commands))
	}
	for i := range src.Commands {
		if src.Commands[i] != dst.Commands[i] {
			t.Errorf("command %d = %+v, want %+v", i, dst.Commands[i], src.Commands[i])
		}
	}

	cp := src.Copy()
	src.ClearArea()
	if len(src.Commands) != 1 || len(cp.Commands) != 5 {
		t.Errorf("clear affected copy: %d/%d", len(src.Commands), len(cp.Commands))
	}
	if cp.Count(CmdText) != 1 || cp.Texts()[0] != "hi" {
		t.Error("copy lost its text command")
	}
}
