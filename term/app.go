package term

import (
	"context"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// App owns the terminal loop: it pumps the frame queue on a ticker and
// forwards key presses to the session
type App struct {
	screen   tcell.Screen
	renderer *Renderer
	queue    *game.FrameQueue
	loop     *game.Loop
	interval time.Duration
}

func NewApp(screen tcell.Screen, session *game.Session, fps int) *App {
	if fps <= 0 {
		fps = 60
	}
	renderer := NewRenderer(screen, session.Grid())
	queue := game.NewFrameQueue()
	return &App{
		screen:   screen,
		renderer: renderer,
		queue:    queue,
		loop:     game.NewLoop(session, queue, renderer),
		interval: time.Second / time.Duration(fps),
	}
}

// Loop gives access to the game loop, e.g. to attach a steerer
func (a *App) Loop() *game.Loop {
	return a.loop
}

// Run blocks until the player quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.loop.Start()
	a.Tick()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Tick()
		}
	}
}

// Tick runs pending frames and shows the result
func (a *App) Tick() {
	a.queue.RunPending()
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	s := a.loop.Session()
	_, rows := a.renderer.Size()

	style := tcell.StyleDefault.Foreground(toTcell(types.ColorScoreText))
	line := "SCORE " + s.ScoreText()
	if s.Phase() == manager.GameOver {
		line += "   [r] replay  [q] quit"
	}
	for col, ch := range []rune(line + "                    ") {
		a.screen.SetContent(col, rows, ch, nil, style)
	}
}

// HandleEvent applies one terminal event and reports whether to keep running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		input := a.loop.Session().Input()
		switch ev.Key() {
		case tcell.KeyUp:
			input.Set(types.Up)
		case tcell.KeyDown:
			input.Set(types.Down)
		case tcell.KeyLeft:
			input.Set(types.Left)
		case tcell.KeyRight:
			input.Set(types.Right)
		case tcell.KeyEnter:
			a.replay()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				a.replay()
			case 'w', 'k':
				input.Set(types.Up)
			case 's', 'j':
				input.Set(types.Down)
			case 'a', 'h':
				input.Set(types.Left)
			case 'd', 'l':
				input.Set(types.Right)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// replay only works from the game over screen
func (a *App) replay() {
	if a.loop.Session().Phase() != manager.GameOver {
		return
	}
	a.screen.Clear()
	a.loop.Reset()
}
