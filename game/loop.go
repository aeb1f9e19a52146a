package game

import (
	"gridsnake/game/manager"
)

// Steerer decides directions for a session, e.g. an autopilot. It runs right
// before every simulated frame.
type Steerer interface {
	Steer(s *Session)
}

// Loop drives a session frame by frame through a Scheduler and owns the
// Running -> GameOver -> Running lifecycle. At most one frame request is
// outstanding at any time.
type Loop struct {
	session   *Session
	scheduler Scheduler
	renderer  Renderer
	steerer   Steerer
	observers []func(*Session)

	requestID FrameID
}

func NewLoop(session *Session, scheduler Scheduler, renderer Renderer) *Loop {
	return &Loop{
		session:   session,
		scheduler: scheduler,
		renderer:  renderer,
	}
}

func (l *Loop) SetSteerer(st Steerer) {
	l.steerer = st
}

// OnFrame registers fn to run after every frame, including the game over frame
func (l *Loop) OnFrame(fn func(*Session)) {
	l.observers = append(l.observers, fn)
}

// Start renders the first frame and keeps requesting frames while running
func (l *Loop) Start() {
	l.frame()
}

func (l *Loop) frame() {
	l.requestID = 0

	if l.session.Phase() == manager.Running {
		if l.steerer != nil {
			l.steerer.Steer(l.session)
		}
		l.session.Frame(l.renderer)
	}

	if l.session.Phase() == manager.Running {
		l.requestID = l.scheduler.RequestFrame(l.frame)
	} else {
		l.renderer.ClearArea()
		l.session.DrawGameOver(l.renderer)
	}

	for _, fn := range l.observers {
		fn(l.session)
	}
}

// Reset cancels the pending frame, starts a new game and restarts the chain.
// This is the replay trigger.
func (l *Loop) Reset() {
	l.Stop()
	l.session.Reset()
	l.frame()
}

// Stop cancels the outstanding frame request, if any
func (l *Loop) Stop() {
	if l.requestID != 0 {
		l.scheduler.CancelFrame(l.requestID)
		l.requestID = 0
	}
}

// Running reports whether a frame is scheduled
func (l *Loop) Running() bool {
	return l.requestID != 0
}

func (l *Loop) Session() *Session {
	return l.session
}
