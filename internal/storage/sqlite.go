// Package storage provides SQLite-based persistence for player progress
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ecosort/ecosort/internal/engine"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished run as stored in the history log.
type RunEntry struct {
	ID           int64
	Mode         string
	Score        int
	ItemsSorted  int
	CO2Saved     float64
	LevelReached int
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

// migrate creates the database schema if it doesn't exist. The progress
// table is a single row; runs is an append-only history.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			high_score INTEGER NOT NULL DEFAULT 0,
			total_co2_saved REAL NOT NULL DEFAULT 0,
			total_items_sorted INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			completed_tutorial INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO progress (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			items_sorted INTEGER NOT NULL DEFAULT 0,
			co2_saved REAL NOT NULL DEFAULT 0,
			level_reached INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
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

// LoadProgress returns the stored player progress.
func (s *Store) LoadProgress() (engine.Progress, error) {
	var p engine.Progress
	var tutorial int
	err := s.db.QueryRow(
		`SELECT high_score, total_co2_saved, total_items_sorted, level, completed_tutorial
		 FROM progress WHERE id = 1`,
	).Scan(&p.HighScore, &p.TotalCO2Saved, &p.TotalItemsSorted, &p.Level, &tutorial)
	if err != nil {
		return engine.Progress{}, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	p.CompletedTutorial = tutorial != 0
	return p, nil
}

// RecordHighScore stores score if it beats the current high score and
// reports whether it did.
func (s *Store) RecordHighScore(score int) (bool, error) {
	res, err := s.db.Exec(
		"UPDATE progress SET high_score = ? WHERE id = 1 AND high_score < ?",
		score, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record high score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read rows affected: %w", err)
	}
	return n > 0, nil
}

// AccumulateStats adds a finished run's totals to the lifetime counters.
func (s *Store) AccumulateStats(itemsSorted int, co2Saved float64) error {
	_, err := s.db.Exec(
		`UPDATE progress
		 SET total_items_sorted = total_items_sorted + ?,
		     total_co2_saved = total_co2_saved + ?
		 WHERE id = 1`,
		itemsSorted, co2Saved,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot accumulate stats: %w", err)
	}
	return nil
}

// MarkTutorialComplete remembers that the intro tip was shown.
func (s *Store) MarkTutorialComplete() error {
	_, err := s.db.Exec("UPDATE progress SET completed_tutorial = 1 WHERE id = 1")
	if err != nil {
		return fmt.Errorf("storage: cannot mark tutorial: %w", err)
	}
	return nil
}

// SaveRun appends a run to the history log and keeps the lifetime
// record's level at the best level any run has reached.
func (s *Store) SaveRun(rec engine.RunRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (mode, score, items_sorted, co2_saved, level_reached)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Mode, rec.Score, rec.ItemsSorted, rec.CO2Saved, rec.LevelReached,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	_, err = s.db.Exec(
		"UPDATE progress SET level = ? WHERE id = 1 AND level < ?",
		rec.LevelReached, rec.LevelReached,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record level: %w", err)
	}
	return nil
}

// TopRuns retrieves the best N runs for the given mode, ordered by
// score descending. An empty mode matches all modes.
func (s *Store) TopRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, mode, score, items_sorted, co2_saved, level_reached, created_at
		 FROM runs`
	args := []any{}
	if mode != "" {
		query += " WHERE mode = ?"
		args = append(args, mode)
	}
	query += " ORDER BY score DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.ItemsSorted, &e.CO2Saved, &e.LevelReached, &createdAt); err != nil {
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

// RecentRuns retrieves the latest N runs across all modes.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, items_sorted, co2_saved, level_reached, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.ItemsSorted, &e.CO2Saved, &e.LevelReached, &createdAt); err != nil {
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

// ClearRuns deletes the run history. The lifetime progress counters are
// left untouched.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ResetProgress zeroes the progress row, including the tutorial flag.
func (s *Store) ResetProgress() error {
	_, err := s.db.Exec(
		`UPDATE progress
		 SET high_score = 0, total_co2_saved = 0, total_items_sorted = 0,
		     level = 1, completed_tutorial = 0
		 WHERE id = 1`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
func parseCreatedAt(v any) time.Time {
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
