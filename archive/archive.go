// Package archive persists finished game results to a local SQLite
// database so tournaments and server sessions leave a queryable trail.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"catan/game"
)

// Result is one finished game as stored in the archive.
type Result struct {
	GameKey    string        `json:"game_key"`
	Winner     game.PlayerID `json:"winner"`
	P1Points   int           `json:"p1_points"`
	P2Points   int           `json:"p2_points"`
	Turns      int           `json:"turns"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// Store wraps the result database. A single writer connection keeps
// SQLite happy under concurrent sessions.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty archive path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	// WAL suits the append-only result log.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS results (
		game_key TEXT PRIMARY KEY,
		winner INTEGER NOT NULL,
		p1_points INTEGER NOT NULL,
		p2_points INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		recorded_at TEXT NOT NULL
	);`)
	return err
}

// RecordResult inserts a finished game. Re-recording the same key
// overwrites the previous row.
func (s *Store) RecordResult(r Result) error {
	if r.GameKey == "" {
		return fmt.Errorf("empty game key")
	}
	recorded := r.RecordedAt
	if recorded.IsZero() {
		recorded = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO results (game_key, winner, p1_points, p2_points, turns, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameKey, int(r.Winner), r.P1Points, r.P2Points, r.Turns, recorded.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	return nil
}

// ListResults returns all stored results, most recent first.
func (s *Store) ListResults() ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT game_key, winner, p1_points, p2_points, turns, recorded_at
		 FROM results ORDER BY recorded_at DESC, game_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var winner int
		var recorded string
		if err := rows.Scan(&r.GameKey, &winner, &r.P1Points, &r.P2Points, &r.Turns, &recorded); err != nil {
			return nil, err
		}
		r.Winner = game.PlayerID(winner)
		r.RecordedAt, err = time.Parse(time.RFC3339, recorded)
		if err != nil {
			return nil, fmt.Errorf("malformed recorded_at for %s: %w", r.GameKey, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
