// Package storage provides the session throw log on top of SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database lives in memory only: every Store starts empty and is gone
// once closed, so nothing carries over between sessions.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/paperplane/internal/core"
)

// Store manages the in-memory SQLite connection for the throw log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Throw is a single recorded throw.
type Throw struct {
	ID        string
	GameID    string
	Mode      string
	Outcome   core.Outcome
	Award     int
	Distance  float64 // Metres
	Frames    int
	CreatedAt time.Time
}

// Summary aggregates the throws of one game.
type Summary struct {
	GameID       string
	Throws       int
	Hits         int
	Resets       int
	TotalAward   int
	BestDistance float64
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is its own database, so pin one
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS throws (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			outcome TEXT NOT NULL,
			award INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_throws_game_id ON throws(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordThrow appends a finished throw to the log and returns it with its
// generated ID and timestamp.
func (s *Store) RecordThrow(ev core.Event, mode string) (Throw, error) {
	t := Throw{
		ID:        uuid.NewString(),
		GameID:    ev.GameID,
		Mode:      mode,
		Outcome:   ev.Outcome,
		Award:     ev.Award,
		Distance:  ev.Distance,
		Frames:    ev.Frames,
		CreatedAt: s.now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO throws (id, game_id, mode, outcome, award, distance, frames, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.GameID, t.Mode, string(t.Outcome), t.Award, t.Distance, t.Frames,
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Throw{}, fmt.Errorf("storage: cannot record throw: %w", err)
	}

	return t, nil
}

// RecentThrows retrieves the most recent throws, newest first.
// An empty gameID returns throws of every game.
func (s *Store) RecentThrows(gameID string, limit int) ([]Throw, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, outcome, award, distance, frames, created_at
		 FROM throws
		 WHERE ? = '' OR game_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query throws: %w", err)
	}
	defer rows.Close()

	var throws []Throw
	for rows.Next() {
		var t Throw
		var outcome string
		var createdAt any
		if err := rows.Scan(&t.ID, &t.GameID, &t.Mode, &outcome, &t.Award, &t.Distance, &t.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.Outcome = core.Outcome(outcome)
		t.CreatedAt = parseTime(createdAt)
		throws = append(throws, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return throws, nil
}

// Summarize returns aggregated statistics for a game.
func (s *Store) Summarize(gameID string) (Summary, error) {
	sum := Summary{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(award), 0),
		        COALESCE(MAX(distance), 0)
		 FROM throws WHERE game_id = ?`,
		string(core.OutcomeHit), string(core.OutcomeReset), gameID,
	).Scan(&sum.Throws, &sum.Hits, &sum.Resets, &sum.TotalAward, &sum.BestDistance)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize throws: %w", err)
	}

	return sum, nil
}

// parseTime handles both time.Time and string timestamps from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
