// Package storage provides SQLite-based persistence for completed
// carom games and manual moyenne entries.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the game log.
type Store struct {
	db *sql.DB
}

// GameRecord is a single completed game: the raw counters plus the
// derived moyenne that was folded into the history. Manual moyenne
// entries are stored with zero score and turns.
type GameRecord struct {
	ID         int64
	Score      int
	Turns      int
	ZeroScores int
	Moyenne    float64
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			zero_scores INTEGER NOT NULL DEFAULT 0,
			moyenne REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a completed game. Returns the ID of the inserted row.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (score, turns, zero_scores, moyenne) VALUES (?, ?, ?, ?)",
		rec.Score, rec.Turns, rec.ZeroScores, rec.Moyenne,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMoyenne records a manual moyenne entry with no underlying game
// counters. Returns the ID of the inserted row.
func (s *Store) SaveMoyenne(moyenne float64) (int64, error) {
	return s.SaveGame(GameRecord{Moyenne: moyenne})
}

// RecentMoyennes retrieves the moyennes of the last n entries in
// chronological order, oldest first. This is the seed source for the
// in-memory history window.
func (s *Store) RecentMoyennes(n int) ([]float64, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := s.db.Query(
		`SELECT moyenne FROM (
			SELECT id, moyenne FROM games ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moyennes: %w", err)
	}
	defer rows.Close()

	var moyennes []float64
	for rows.Next() {
		var m float64
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		moyennes = append(moyennes, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moyennes, nil
}

// RecentGames retrieves the last n game records, newest first.
func (s *Store) RecentGames(n int) ([]GameRecord, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, turns, zero_scores, moyenne, created_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Turns, &rec.ZeroScores, &rec.Moyenne, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SessionStats contains aggregated statistics over the whole game log.
type SessionStats struct {
	GamesCount  int
	BestMoyenne float64
	AvgMoyenne  float64
	TotalZeros  int64
	LastPlayed  time.Time
}

// Stats retrieves aggregated statistics over all recorded games.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(moyenne), 0), COALESCE(AVG(moyenne), 0), COALESCE(SUM(zero_scores), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.BestMoyenne, &stats.AvgMoyenne, &stats.TotalZeros)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}

// ClearGames deletes the entire game log.
func (s *Store) ClearGames() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
