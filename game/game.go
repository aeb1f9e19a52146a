package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/store"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// GameRecorder is implemented by stores that keep a history of finished games
type GameRecorder interface {
	RecordGame(rec store.GameRecord) error
}

// Hooks lets the outside world follow score and lifecycle changes. Nil
// functions are skipped.
type Hooks struct {
	ScoreChanged func(score int)
	GameOver     func(score, maxScore int)
}

type Options struct {
	Store manager.ScoreStore
	Hooks Hooks
}

// Session aggregates everything one player's game needs: the snake, the food,
// particles, score state and the input latch. It is driven from a single
// goroutine; only the Latch may be written concurrently.
type Session struct {
	ID     string
	GameID string

	cfg  types.Config
	grid types.Grid
	rng  *rand.Rand

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	particles    *manager.ParticleSystem
	state        *manager.StateManager

	input    Latch
	hooks    Hooks
	recorder GameRecorder

	frames    uint64
	steps     uint64
	startTime time.Time
}

func NewSession(cfg types.Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	rng := rand.New(rand.NewSource(seed))
	collisionMgr := manager.NewCollisionManager(grid)

	s := &Session{
		ID:           uuid.New().String(),
		cfg:          cfg,
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, cfg.SpawnRetries, collisionMgr),
		particles:    manager.NewParticleSystem(rng),
		hooks:        opts.Hooks,
	}
	if rec, ok := opts.Store.(GameRecorder); ok {
		s.recorder = rec
	}

	state, err := manager.NewStateManager(opts.Store)
	if err != nil {
		// Play on from zero rather than refusing to start
		log.Printf("session %s: %v", s.shortID(), err)
	}
	s.state = state

	s.newGame()
	log.Printf("session %s: started, %dx%d cells, seed %d", s.shortID(), cfg.Cells, cfg.Cells, seed)
	return s, nil
}

// newGame builds a fresh snake and places the food away from it
func (s *Session) newGame() {
	s.GameID = uuid.New().String()
	s.snake = entity.NewSnake(s.grid, s.cfg.MoveDelay)
	s.steps = 0
	s.startTime = time.Now()
	s.input.Clear()
	s.respawnFood()
}

func (s *Session) respawnFood() {
	if err := s.foodMgr.Spawn(s.snake); err != nil {
		if errors.Is(err, manager.ErrGridFull) {
			log.Printf("session %s: %v, food stays at %v", s.shortID(), err, s.foodMgr.Food().Position)
			return
		}
		log.Printf("session %s: spawn food: %v", s.shortID(), err)
	}
}

// Update advances the simulation by one frame: the latest input is applied,
// then the snake ticks. Nothing happens once the game is over.
func (s *Session) Update() entity.Step {
	if s.state.Phase() != manager.Running {
		return entity.Step{}
	}
	s.frames++

	if dir := s.input.Take(); dir != types.None {
		s.snake.SetHeading(dir)
	}

	step := s.snake.Tick(s.grid, s)
	if step.Moved {
		s.steps++
	}
	if step.Collided {
		s.endGame()
	}
	return step
}

// Feed is called by the snake before each movement step
func (s *Session) Feed(head types.Vector2) bool {
	food := s.foodMgr.Food()
	if !s.collisionMgr.IsFoodCollision(head, food) {
		return false
	}

	score := s.state.IncrementScore()
	if s.hooks.ScoreChanged != nil {
		s.hooks.ScoreChanged(score)
	}
	s.particles.SpawnBurst(food.Position, s.cfg.BurstSize, food.Size)
	s.respawnFood()
	return true
}

func (s *Session) endGame() {
	ended, err := s.state.EndGame()
	if !ended {
		return
	}
	if err != nil {
		log.Printf("session %s: %v", s.shortID(), err)
	}

	score, maxScore := s.state.Score(), s.state.MaxScore()
	log.Printf("session %s: game over, score %d, max score %d, %d steps", s.shortID(), score, maxScore, s.steps)

	if s.recorder != nil {
		rec := store.GameRecord{
			GameID:    s.GameID,
			SessionID: s.ID,
			Score:     score,
			Steps:     int(s.steps),
			StartTime: s.startTime,
			EndTime:   time.Now(),
		}
		if err := s.recorder.RecordGame(rec); err != nil {
			log.Printf("session %s: record game: %v", s.shortID(), err)
		}
	}
	if s.hooks.GameOver != nil {
		s.hooks.GameOver(score, maxScore)
	}
}

// Frame runs one display refresh: clear, grid, snake tick, food, particles
func (s *Session) Frame(r Renderer) {
	r.ClearArea()
	r.DrawGrid(s.grid)

	s.Update()
	s.drawSnake(r)
	s.drawFood(r)

	s.particles.Update()
	for _, p := range s.particles.Particles() {
		if p.Alive() {
			r.FillCell(p.Position.X, p.Position.Y, p.Size, p.Size, p.Color())
		}
	}
	s.particles.Collect()
}

func (s *Session) drawSnake(r Renderer) {
	size := s.snake.Size()
	r.FillCell(s.snake.Position.X, s.snake.Position.Y, size, size, s.snake.Color)
	for _, p := range s.snake.History {
		r.FillCell(p.X, p.Y, size, size, s.snake.Color)
	}
}

func (s *Session) drawFood(r Renderer) {
	food := s.foodMgr.Food()
	c := food.Center()
	r.FillCircle(c.X, c.Y, food.Size/2, food.Color)
}

// DrawGameOver renders the end of game summary in the middle of the arena
func (s *Session) DrawGameOver(r Renderer) {
	cx, cy := s.grid.Width/2, s.grid.Height/2
	title := TextStyle{Size: 30, Bold: true, Color: types.ColorGameOver, Align: AlignCenter}
	body := TextStyle{Size: 15, Color: types.ColorGameOver, Align: AlignCenter}

	r.DrawText("GAME OVER", cx, cy, title)
	r.DrawText(fmt.Sprintf("SCORE %d", s.state.Score()), cx, cy+30, body)
	r.DrawText(fmt.Sprintf("MAX SCORE %d", s.state.MaxScore()), cx, cy+60, body)
}

// Reset starts a new game in the same session. The max score is kept.
func (s *Session) Reset() {
	s.state.Reset()
	if s.hooks.ScoreChanged != nil {
		s.hooks.ScoreChanged(0)
	}
	s.particles.Clear()
	s.newGame()
	log.Printf("session %s: reset", s.shortID())
}

// Input is the latch input sources write directions into
func (s *Session) Input() *Latch {
	return &s.input
}

func (s *Session) Phase() manager.Phase {
	return s.state.Phase()
}

func (s *Session) Score() int {
	return s.state.Score()
}

func (s *Session) MaxScore() int {
	return s.state.MaxScore()
}

// ScoreText is the score as shown in the score box
func (s *Session) ScoreText() string {
	return manager.ScoreText(s.state.Score())
}

func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Food() *entity.Food {
	return s.foodMgr.Food()
}

func (s *Session) Particles() *manager.ParticleSystem {
	return s.particles
}

func (s *Session) Grid() types.Grid {
	return s.grid
}

func (s *Session) Config() types.Config {
	return s.cfg
}

// Steps counts movement steps in the current game
func (s *Session) Steps() uint64 {
	return s.steps
}

// Frames counts simulated frames over the whole session
func (s *Session) Frames() uint64 {
	return s.frames
}

func (s *Session) shortID() string {
	return s.ID[:8]
}
