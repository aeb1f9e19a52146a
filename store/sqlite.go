package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the max score in a key/value table and every finished
// game in its own row
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store needs a path")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL keeps reads cheap while a game over write is in flight
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &SQLiteStore{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL DEFAULT 0,
		steps INTEGER NOT NULL DEFAULT 0,
		started_at INTEGER NOT NULL,
		ended_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_games_session ON games(session_id);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (db *SQLiteStore) MaxScore() (int, error) {
	var score int
	err := db.conn.QueryRow("SELECT value FROM kv WHERE key = ?", MaxScoreKey).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return score, err
}

func (db *SQLiteStore) SetMaxScore(score int) error {
	_, err := db.conn.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		MaxScoreKey, score,
	)
	return err
}

func (db *SQLiteStore) RecordGame(rec GameRecord) error {
	_, err := db.conn.Exec(
		"INSERT INTO games (game_id, session_id, score, steps, started_at, ended_at) VALUES (?, ?, ?, ?, ?, ?)",
		rec.GameID, rec.SessionID, rec.Score, rec.Steps, rec.StartTime.UnixNano(), rec.EndTime.UnixNano(),
	)
	return err
}

// Games returns every recorded game, oldest first
func (db *SQLiteStore) Games() ([]GameRecord, error) {
	rows, err := db.conn.Query(
		"SELECT game_id, session_id, score, steps, started_at, ended_at FROM games ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var rec GameRecord
		var started, ended int64
		if err := rows.Scan(&rec.GameID, &rec.SessionID, &rec.Score, &rec.Steps, &started, &ended); err != nil {
			return nil, err
		}
		rec.StartTime = time.Unix(0, started)
		rec.EndTime = time.Unix(0, ended)
		games = append(games, rec)
	}
	return games, rows.Err()
}

func (db *SQLiteStore) Close() error {
	return db.conn.Close()
}
