package term

import (
	"testing"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := types.DefaultConfig()
	cfg.Seed = 9
	s, err := game.NewSession(cfg, game.Options{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return NewApp(screen, s, 60), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppDrawsSnake(t *testing.T) {
	app, screen := newTestApp(t)
	app.Loop().Start()
	app.Tick()

	// head at cell (10,10) covers columns 20 and 21 of row 10
	for _, col := range []int{20, 21} {
		mainc, _, style, _ := screen.GetContent(col, 10)
		if mainc != '█' {
			t.Errorf("cell (%d,10) = %q, want block", col, mainc)
		}
		fg, _, _ := style.Decompose()
		if fg != toTcell(types.ColorSnake) {
			t.Errorf("snake color = %v", fg)
		}
	}

	food := app.Loop().Session().Food().Position
	col, row := app.renderer.cellAt(food.X+12.5, food.Y+12.5)
	if mainc, _, _, _ := screen.GetContent(col, row); mainc != '(' {
		t.Errorf("food cell = %q, want '('", mainc)
	}

	status := ""
	for c := 0; c < 8; c++ {
		mainc, _, _, _ := screen.GetContent(c, 20)
		status += string(mainc)
	}
	if status != "SCORE 00" {
		t.Errorf("status = %q", status)
	}
}

func TestAppKeys(t *testing.T) {
	app, _ := newTestApp(t)
	input := app.Loop().Session().Input()

	tests := []struct {
		ev   *tcell.EventKey
		want types.Direction
	}{
		{key(tcell.KeyUp), types.Up},
		{key(tcell.KeyRight), types.Right},
		{char('j'), types.Down},
		{char('a'), types.Left},
	}
	for _, tt := range tests {
		if !app.HandleEvent(tt.ev) {
			t.Fatalf("%v stopped the app", tt.ev.Name())
		}
		if got := input.Take(); got != tt.want {
			t.Errorf("%s -> %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}

	if app.HandleEvent(key(tcell.KeyEscape)) {
		t.Error("escape should quit")
	}
	if app.HandleEvent(char('q')) {
		t.Error("q should quit")
	}
}

func TestAppReplayOnlyAfterGameOver(t *testing.T) {
	app, screen := newTestApp(t)
	app.Loop().Start()
	s := app.Loop().Session()
	gameID := s.GameID

	app.HandleEvent(char('r'))
	if s.GameID != gameID {
		t.Fatal("replay restarted a running game")
	}

	sn := s.Snake()
	sn.Heading = types.Right
	sn.Total = 4
	sn.History = []types.Vector2{sn.Position.Plus(types.Vec(25, 0)), types.Vec(0, 0), types.Vec(0, 25)}
	sn.Delay = 1
	s.Food().Position = types.Vec(475, 475)
	app.Tick()
	if s.Phase() != manager.GameOver {
		t.Fatalf("phase = %v, want game over", s.Phase())
	}

	// GAME OVER is centered on row 10
	row := ""
	for c := 16; c < 25; c++ {
		mainc, _, _, _ := screen.GetContent(c, 10)
		row += string(mainc)
	}
	if row != "GAME OVER" {
		t.Errorf("row 10 = %q, want GAME OVER", row)
	}

	app.HandleEvent(key(tcell.KeyEnter))
	if s.Phase() != manager.Running || s.GameID == gameID {
		t.Errorf("replay did not start a new game: %v", s.Phase())
	}
}
