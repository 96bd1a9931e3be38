// Package storage provides SQLite-based persistence for sortie records.
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

// Store manages the SQLite database connection for sortie persistence.
type Store struct {
	db *sql.DB
}

// Sortie represents one completed flight: how many enemies went down and how
// long the pilot survived.
type Sortie struct {
	ID           int64
	GameID       string
	Kills        int
	DurationSecs int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS sorties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			kills INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sorties_game_id ON sorties(game_id);
		CREATE INDEX IF NOT EXISTS idx_sorties_top ON sorties(game_id, kills DESC);
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

// SaveSortie records a completed flight for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveSortie(gameID string, kills, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sorties (game_id, kills, duration_secs) VALUES (?, ?, ?)",
		gameID, kills, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save sortie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSorties retrieves the top N sorties for the given game.
// Results are ordered by kills descending, longest flight first on ties.
func (s *Store) TopSorties(gameID string, limit int) ([]Sortie, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, kills, duration_secs, created_at
		 FROM sorties
		 WHERE game_id = ?
		 ORDER BY kills DESC, duration_secs DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sorties: %w", err)
	}
	defer rows.Close()

	return scanSorties(rows)
}

// AllSorties retrieves all sorties for the given game (no limit).
func (s *Store) AllSorties(gameID string) ([]Sortie, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, kills, duration_secs, created_at
		 FROM sorties
		 WHERE game_id = ?
		 ORDER BY kills DESC, duration_secs DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sorties: %w", err)
	}
	defer rows.Close()

	return scanSorties(rows)
}

// scanSorties drains a sortie result set.
func scanSorties(rows *sql.Rows) ([]Sortie, error) {
	var entries []Sortie
	for rows.Next() {
		var e Sortie
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Kills, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestKills returns the highest kill count for the given game.
// Returns 0 if no sorties exist.
func (s *Store) BestKills(gameID string) (int, error) {
	var kills sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(kills) FROM sorties WHERE game_id = ?",
		gameID,
	).Scan(&kills)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best kills: %w", err)
	}

	if !kills.Valid {
		return 0, nil
	}

	return int(kills.Int64), nil
}

// ClearSorties deletes all sorties for the given game.
func (s *Store) ClearSorties(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sorties WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sorties: %w", err)
	}
	return nil
}

// SortieStats contains aggregated statistics for a game.
type SortieStats struct {
	GameID      string
	SortieCount int
	BestKills   int
	AvgKills    float64
	TotalKills  int64
	LongestSecs int
	LastPlayed  time.Time
}

// GetSortieStats retrieves aggregated statistics for a specific game.
func (s *Store) GetSortieStats(gameID string) (*SortieStats, error) {
	stats := &SortieStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(kills), 0), COALESCE(AVG(kills), 0),
		        COALESCE(SUM(kills), 0), COALESCE(MAX(duration_secs), 0)
		 FROM sorties WHERE game_id = ?`,
		gameID,
	).Scan(&stats.SortieCount, &stats.BestKills, &stats.AvgKills, &stats.TotalKills, &stats.LongestSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get sortie stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sorties WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}
