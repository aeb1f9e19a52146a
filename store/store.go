// Package store persists the best score and the history of finished games.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxScoreKey is the fixed key the best score is stored under
const MaxScoreKey = "maxScore"

// GameRecord describes one finished game
type GameRecord struct {
	GameID    string    `json:"gameId"`
	SessionID string    `json:"sessionId"`
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// ErrNotFound is returned when a game id has no record
var ErrNotFound = errors.New("game not found")

// Store is the full persistence surface a game session can use
type Store interface {
	MaxScore() (int, error)
	SetMaxScore(score int) error
	RecordGame(rec GameRecord) error
	Games() ([]GameRecord, error)
	Close() error
}

// Open picks a backend by name: "memory", "file" or "sqlite"
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(kind) {
	case "memory", "mem", "":
		return NewMemoryStore(), nil
	case "file", "json":
		return OpenFileStore(path)
	case "sqlite", "db":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// FindGame looks a finished game up by id
func FindGame(st Store, gameID string) (GameRecord, error) {
	games, err := st.Games()
	if err != nil {
		return GameRecord{}, err
	}
	for _, g := range games {
		if g.GameID == gameID {
			return g, nil
		}
	}
	return GameRecord{}, fmt.Errorf("%s: %w", gameID, ErrNotFound)
}
