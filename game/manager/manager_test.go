package manager

import (
	"errors"
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func newGrid() types.Grid {
	return types.NewGrid(500, 500, 20)
}

// longSnake builds a snake whose trail covers the first n cells row by row
func longSnake(grid types.Grid, n int) *entity.Snake {
	s := entity.NewSnake(grid, types.MoveDelay)
	s.Position = grid.CellOrigin(0, 0)
	s.Total = n
	for i := 1; i < n; i++ {
		s.History = append(s.History, grid.CellOrigin(i%grid.Cells, i/grid.Cells))
	}
	return s
}

func TestSpawnAvoidsSnake(t *testing.T) {
	grid := newGrid()
	rng := rand.New(rand.NewSource(7))
	fm := NewFoodManager(grid, rng, types.SpawnRetries, NewCollisionManager(grid))
	snake := longSnake(grid, 150)

	for i := 0; i < 1000; i++ {
		if err := fm.Spawn(snake); err != nil {
			t.Fatalf("spawn %d: %v", i, err)
		}
		pos := fm.Food().Position
		if snake.Occupies(pos) {
			t.Fatalf("spawn %d placed food on the snake at %+v", i, pos)
		}
		col, row := grid.CellOf(pos)
		if !grid.CellOrigin(col, row).Equals(pos) {
			t.Fatalf("food %+v is not on a cell origin", pos)
		}
	}
}

func TestSpawnFallsBackToFreeCell(t *testing.T) {
	grid := newGrid()
	// A single retry against a snake covering all but one cell almost always misses
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), 1, NewCollisionManager(grid))
	snake := longSnake(grid, grid.CellCount()-1)

	for i := 0; i < 20; i++ {
		if err := fm.Spawn(snake); err != nil {
			t.Fatalf("spawn: %v", err)
		}
		if want := grid.CellOrigin(19, 19); !fm.Food().Position.Equals(want) {
			t.Fatalf("food at %+v, want the only free cell %+v", fm.Food().Position, want)
		}
	}
}

func TestSpawnFullGrid(t *testing.T) {
	grid := newGrid()
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), 4, NewCollisionManager(grid))
	fm.Food().Position = types.Vec(100, 100)

	err := fm.Spawn(longSnake(grid, grid.CellCount()))
	if !errors.Is(err, ErrGridFull) {
		t.Fatalf("expected ErrGridFull, got %v", err)
	}
	if !fm.Food().Position.Equals(types.Vec(100, 100)) {
		t.Error("food moved although no cell was free")
	}
}

func TestCheckSelfCollisionGuard(t *testing.T) {
	grid := newGrid()
	cm := NewCollisionManager(grid)
	s := entity.NewSnake(grid, types.MoveDelay)
	s.History = []types.Vector2{s.Position}

	if cm.CheckSelfCollision(s) {
		t.Error("short snake must skip the self check")
	}
	s.Total = 4
	if !cm.CheckSelfCollision(s) {
		t.Error("expected collision once total > 3")
	}
}

func TestParticleBurstLifecycle(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(3)))
	origin := types.Vec(125, 75)
	ps.SpawnBurst(origin, types.BurstSize, 25)

	if ps.Len() != types.BurstSize {
		t.Fatalf("burst created %d particles, want %d", ps.Len(), types.BurstSize)
	}
	for _, p := range ps.Particles() {
		if !p.Position.Equals(origin) {
			t.Errorf("particle spawned at %+v, want %+v", p.Position, origin)
		}
		if p.Velocity.X < -3 || p.Velocity.X > 3 || p.Velocity.Y < -3 || p.Velocity.Y > 3 {
			t.Errorf("velocity %+v outside [-3,3]", p.Velocity)
		}
		if p.Hue < 0 || p.Hue > 359 {
			t.Errorf("hue %d outside [0,359]", p.Hue)
		}
	}

	frames := 0
	for ps.Len() > 0 {
		ps.Update()
		ps.Collect()
		frames++
		if frames > 100 {
			t.Fatal("particles never died")
		}
	}
	if frames != 42 {
		t.Errorf("burst lasted %d frames, want 42", frames)
	}
}

func TestCollectKeepsLiveParticles(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(3)))
	ps.SpawnBurst(types.Vec(0, 0), 3, 25)
	ps.particles[1].Size = 0

	if removed := ps.Collect(); removed != 1 {
		t.Fatalf("removed %d, want 1", removed)
	}
	if ps.Len() != 2 {
		t.Fatalf("len = %d, want 2", ps.Len())
	}
	for _, p := range ps.Particles() {
		if !p.Alive() {
			t.Error("dead particle survived collection")
		}
	}
}

type fakeStore struct {
	max    int
	writes int
	err    error
}

func (f *fakeStore) MaxScore() (int, error) { return f.max, f.err }

func (f *fakeStore) SetMaxScore(score int) error {
	f.writes++
	f.max = score
	return f.err
}

func TestEndGamePersistsMax(t *testing.T) {
	tests := []struct {
		prior, score, want int
	}{
		{prior: 3, score: 5, want: 5},
		{prior: 9, score: 5, want: 9},
	}

	for _, tt := range tests {
		st := &fakeStore{max: tt.prior}
		sm, err := NewStateManager(st)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < tt.score; i++ {
			sm.IncrementScore()
		}

		ended, err := sm.EndGame()
		if err != nil || !ended {
			t.Fatalf("EndGame = %v, %v", ended, err)
		}
		if st.max != tt.want || sm.MaxScore() != tt.want {
			t.Errorf("prior %d score %d: persisted %d, manager %d, want %d",
				tt.prior, tt.score, st.max, sm.MaxScore(), tt.want)
		}
		if sm.Phase() != GameOver {
			t.Errorf("phase = %v, want game over", sm.Phase())
		}

		// A second EndGame is a no-op
		if ended, _ := sm.EndGame(); ended || st.writes != 1 {
			t.Errorf("second EndGame ended=%v writes=%d", ended, st.writes)
		}
	}
}

func TestStateManagerStoreFailure(t *testing.T) {
	st := &fakeStore{err: errors.New("disk gone")}
	sm, err := NewStateManager(st)
	if err == nil {
		t.Fatal("expected load error")
	}
	if sm == nil || sm.MaxScore() != 0 {
		t.Fatal("manager must stay usable after a load failure")
	}

	sm.IncrementScore()
	ended, err := sm.EndGame()
	if !ended || err == nil {
		t.Errorf("EndGame = %v, %v; want transition with error", ended, err)
	}
	if sm.Phase() != GameOver {
		t.Error("persistence failure must not block game over")
	}

	sm.Reset()
	if sm.Score() != 0 || sm.Phase() != Running || sm.MaxScore() != 1 {
		t.Errorf("after reset: score %d phase %v max %d", sm.Score(), sm.Phase(), sm.MaxScore())
	}
}

func TestScoreText(t *testing.T) {
	for score, want := range map[int]string{0: "00", 7: "07", 42: "42", 123: "123"} {
		if got := ScoreText(score); got != want {
			t.Errorf("ScoreText(%d) = %q, want %q", score, got, want)
		}
	}
}
