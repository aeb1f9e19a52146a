package manager

import (
	"fmt"
)

// Phase is the lifecycle state of a game session
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ScoreStore persists the best score across games
type ScoreStore interface {
	MaxScore() (int, error)
	SetMaxScore(score int) error
}

type StateManager struct {
	store    ScoreStore
	score    int
	maxScore int
	phase    Phase
}

// NewStateManager reads the persisted max score once. A failing store is
// reported but still leaves a usable manager starting from zero.
func NewStateManager(store ScoreStore) (*StateManager, error) {
	sm := &StateManager{
		store: store,
		phase: Running,
	}
	if store == nil {
		return sm, nil
	}

	max, err := store.MaxScore()
	if err != nil {
		return sm, fmt.Errorf("load max score: %w", err)
	}
	sm.maxScore = max
	return sm, nil
}

// IncrementScore adds one point and returns the new score
func (sm *StateManager) IncrementScore() int {
	sm.score++
	return sm.score
}

// EndGame moves to GameOver and persists max(maxScore, score). It returns
// false if the game was already over.
func (sm *StateManager) EndGame() (bool, error) {
	if sm.phase == GameOver {
		return false, nil
	}
	sm.phase = GameOver
	sm.maxScore = max(sm.maxScore, sm.score)

	if sm.store == nil {
		return true, nil
	}
	if err := sm.store.SetMaxScore(sm.maxScore); err != nil {
		return true, fmt.Errorf("save max score: %w", err)
	}
	return true, nil
}

// Reset starts a new game, keeping the max score
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.phase = Running
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) MaxScore() int {
	return sm.maxScore
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

// ScoreText formats a score with at least two digits
func ScoreText(score int) string {
	return fmt.Sprintf("%02d", score)
}
