// Package ui plays the game in a raylib window.
package ui

import (
	"fmt"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/store"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	scoreBoxH     = 40
	statsPanelW   = 220
	fontSize      = 16
	lineHeight    = 22
)

// Window hosts one session. The game loop renders into a display list; every
// refresh replays the last complete list so the game over summary stays up
// after the loop stops scheduling frames.
type Window struct {
	session *game.Session
	queue   *game.FrameQueue
	loop    *game.Loop
	frame   *game.DisplayList
	surface *surface
	board   *scoreboard

	lastPhase manager.Phase
	started   time.Time
	width     int32
	height    int32
}

// NewWindow prepares the loop. History seeds the stats panel and may be nil.
func NewWindow(session *game.Session, history []store.GameRecord) *Window {
	grid := session.Grid()
	frame := &game.DisplayList{}
	queue := game.NewFrameQueue()

	w := &Window{
		session: session,
		queue:   queue,
		frame:   frame,
		loop:    game.NewLoop(session, queue, frame),
		surface: &surface{
			offsetX: borderPadding,
			offsetY: borderPadding + scoreBoxH,
			width:   float32(grid.Width),
			height:  float32(grid.Height),
		},
		board:   newScoreboard(history),
		started: time.Now(),
	}
	w.width = int32(grid.Width) + borderPadding*2 + statsPanelW
	w.height = int32(grid.Height) + borderPadding*2 + scoreBoxH
	w.loop.OnFrame(w.trackGames)
	return w
}

func (w *Window) Loop() *game.Loop {
	return w.loop
}

func (w *Window) trackGames(s *game.Session) {
	phase := s.Phase()
	if phase == manager.GameOver && w.lastPhase == manager.Running {
		w.board.add(store.GameRecord{GameID: s.GameID, Score: s.Score(), Steps: int(s.Steps())})
	}
	w.lastPhase = phase
}

// Run opens the window and blocks until it is closed
func (w *Window) Run(fps int32) {
	rl.InitWindow(w.width, w.height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(fps)

	w.loop.Start()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		w.handleInput()
		w.queue.RunPending()
		w.draw()
	}
	w.loop.Stop()
}

func (w *Window) handleInput() {
	input := w.session.Input()
	switch {
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyW):
		input.Set(types.Up)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyS):
		input.Set(types.Down)
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyA):
		input.Set(types.Left)
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyD):
		input.Set(types.Right)
	}

	if w.session.Phase() == manager.GameOver && (rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter)) {
		w.loop.Reset()
	}
}

func (w *Window) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.DarkGray)

	// Score box
	scoreText := "SCORE " + w.session.ScoreText()
	rl.DrawText(scoreText, borderPadding, borderPadding+(scoreBoxH-24)/2, 24, toRL(types.ColorScoreText))

	w.frame.Replay(w.surface)
	if w.session.Phase() == manager.GameOver {
		hint := "press R to replay"
		x := int32(w.surface.offsetX+w.surface.width/2) - rl.MeasureText(hint, fontSize)/2
		rl.DrawText(hint, x, int32(w.surface.offsetY+w.surface.height/2)+90, fontSize, toRL(types.ColorGameOver))
	}

	w.drawStatsPanel()
}

func (w *Window) drawStatsPanel() {
	statsX := w.width - statsPanelW + 5
	statsY := int32(borderPadding)
	sum := w.board.summary

	rl.DrawText("Stats:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	lines := []string{
		fmt.Sprintf("Max score: %d", w.session.MaxScore()),
		fmt.Sprintf("Games: %d", sum.GamesPlayed),
		fmt.Sprintf("Avg: %.2f", sum.AverageScore),
		fmt.Sprintf("Median: %.1f", sum.MedianScore),
		fmt.Sprintf("Steps: %d", w.session.Steps()),
	}
	for _, l := range lines {
		rl.DrawText(l, statsX+5, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	duration := time.Since(w.started)
	timeText := fmt.Sprintf("%02d:%02d:%02d", int(duration.Hours()), int(duration.Minutes())%60, int(duration.Seconds())%60)
	rl.DrawText(timeText, statsX, w.height-fontSize-5, fontSize, rl.White)

	graphW, graphH := int32(statsPanelW-20), w.height/4
	graphY := w.height - graphH - fontSize*2 - 10
	rl.DrawRectangleLines(statsX, graphY, graphW, graphH, rl.White)
	rl.DrawText("Performance", statsX, graphY-fontSize-5, fontSize, rl.White)

	color := toRL(types.ColorSnake)
	pts := w.board.graphPoints(statsX, graphY, graphW, graphH)
	for i := 1; i < len(pts); i++ {
		rl.DrawLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, color)
	}
}
