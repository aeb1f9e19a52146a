package game

// FrameID identifies a requested frame so it can be cancelled
type FrameID uint64

// Scheduler hands out display-refresh callbacks
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler pumped by a frontend once per refresh. Callbacks
// requested while the queue runs wait for the next pump.
type FrameQueue struct {
	next    FrameID
	pending []pendingFrame
	running []pendingFrame // batch currently being run
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, pendingFrame{id: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// RunPending runs every callback queued before the call and returns how many ran
func (q *FrameQueue) RunPending() int {
	q.running = q.pending
	q.pending = nil
	ran := 0
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			fn()
			ran++
		}
	}
	q.running = nil
	return ran
}

// Pending reports how many callbacks wait for the next pump
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
