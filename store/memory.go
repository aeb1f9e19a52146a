package store

import "sync"

// MemoryStore keeps everything in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	maxScore int
	games    []GameRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) MaxScore() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.maxScore, nil
}

func (m *MemoryStore) SetMaxScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxScore = score
	return nil
}

func (m *MemoryStore) RecordGame(rec GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games = append(m.games, rec)
	return nil
}

func (m *MemoryStore) Games() ([]GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]GameRecord, len(m.games))
	copy(out, m.games)
	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
