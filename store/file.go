package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// gameStats is the on-disk layout of a FileStore
type gameStats struct {
	Values map[string]int `json:"values"`
	Games  []GameRecord   `json:"games"`
}

// FileStore keeps scores in a JSON file, rewritten on every change
type FileStore struct {
	mu    sync.RWMutex
	path  string
	stats gameStats
}

// OpenFileStore loads path if it exists; a missing file starts empty
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store needs a path")
	}

	fs := &FileStore{
		path:  path,
		stats: gameStats{Values: make(map[string]int)},
	}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", fs.path, err)
	}

	if err := json.Unmarshal(data, &fs.stats); err != nil {
		return fmt.Errorf("decode %s: %w", fs.path, err)
	}
	if fs.stats.Values == nil {
		fs.stats.Values = make(map[string]int)
	}
	return nil
}

// save writes through a temp file so a crash never leaves half a file behind.
// Callers hold the write lock.
func (fs *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(fs.stats, "", "  ")
	if err != nil {
		return err
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, fs.path)
}

func (fs *FileStore) MaxScore() (int, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.stats.Values[MaxScoreKey], nil
}

func (fs *FileStore) SetMaxScore(score int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.stats.Values[MaxScoreKey] = score
	return fs.save()
}

func (fs *FileStore) RecordGame(rec GameRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.stats.Games = append(fs.stats.Games, rec)
	return fs.save()
}

func (fs *FileStore) Games() ([]GameRecord, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]GameRecord, len(fs.stats.Games))
	copy(out, fs.stats.Games)
	return out, nil
}

func (fs *FileStore) Close() error {
	return nil
}
