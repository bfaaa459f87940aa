// Package storage keeps a ledger of finished rounds in an in-memory SQLite
// database. The ledger lives as long as the process: a local session sees its
// own rounds, and an SSH server shares one ledger across all its players.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a round ID is not in the ledger.
var ErrNotFound = errors.New("storage: round not found")

// Store manages the SQLite connection holding the round ledger.
type Store struct {
	db *sql.DB
}

// Round is one finished game.
type Round struct {
	ID        string // UUID, assigned by SaveRound when empty
	SessionID string // Local run or SSH session that played the round
	Player    string
	Destroyed int
	Beached   int
	Health    int
	Ticks     int
	CrabAlive bool
	CreatedAt time.Time
}

// Stats contains aggregated statistics over the ledger.
type Stats struct {
	Rounds         int
	BestDestroyed  int
	AvgDestroyed   float64
	TotalBeached   int64
	TotalDestroyed int64
	CrabsLost      int
	LastPlayed     time.Time
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database; pin the pool to one.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			destroyed INTEGER NOT NULL DEFAULT 0,
			beached INTEGER NOT NULL DEFAULT 0,
			health INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			crab_alive INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(destroyed DESC, health DESC, beached ASC);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, session_id, player, destroyed, beached, health, ticks, crab_alive)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SessionID, r.Player, r.Destroyed, r.Beached, r.Health, r.Ticks, r.CrabAlive,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

const roundColumns = `id, session_id, player, destroyed, beached, health, ticks, crab_alive, created_at`

// TopRounds retrieves the best N rounds.
// Ordered by destroyed descending, then health descending, then fewest beached.
func (s *Store) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY destroyed DESC, health DESC, beached ASC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// SessionRounds retrieves the rounds of one session, most recent first.
func (s *Store) SessionRounds(sessionID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a round by its ID.
func (s *Store) RoundByID(id string) (Round, error) {
	rows, err := s.db.Query(`SELECT `+roundColumns+` FROM rounds WHERE id = ?`, id)
	if err != nil {
		return Round{}, fmt.Errorf("storage: cannot query round: %w", err)
	}
	rounds, err := scanRounds(rows)
	if err != nil {
		return Round{}, err
	}
	if len(rounds) == 0 {
		return Round{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rounds[0], nil
}

// scanRounds reads and closes rows.
func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Player, &r.Destroyed, &r.Beached,
			&r.Health, &r.Ticks, &r.CrabAlive, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats retrieves aggregated statistics over every recorded round.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(destroyed), 0), COALESCE(AVG(destroyed), 0),
		        COALESCE(SUM(beached), 0), COALESCE(SUM(destroyed), 0),
		        COALESCE(SUM(CASE WHEN crab_alive THEN 0 ELSE 1 END), 0), MAX(created_at)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.BestDestroyed, &stats.AvgDestroyed,
		&stats.TotalBeached, &stats.TotalDestroyed, &stats.CrabsLost, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Clear deletes every round.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles the datetime forms the driver returns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
