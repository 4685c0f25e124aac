// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished (or abandoned) simulation run.
type RunRecord struct {
	ID          int64
	RunID       string // uuid, assigned by SaveRun when empty
	Pattern     string
	Title       string
	Topology    string
	Rows        int
	Cols        int
	Generations uint64
	Peak        int
	Population  int // population at the last generation
	Duration    int // wall time in seconds
	CreatedAt   time.Time
}

// PatternStats contains aggregated statistics for one pattern.
type PatternStats struct {
	Pattern        string
	Runs           int
	MaxGenerations uint64
	MaxPeak        int
	LastRun        time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			pattern TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			topology TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			generations INTEGER NOT NULL DEFAULT 0,
			peak INTEGER NOT NULL DEFAULT 0,
			population INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a run and returns its run ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, pattern, title, topology, grid_rows, grid_cols, generations, peak, population, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.Pattern,
		r.Title,
		r.Topology,
		r.Rows,
		r.Cols,
		int64(r.Generations),
		r.Peak,
		r.Population,
		r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

const runColumns = `id, run_id, pattern, title, topology, grid_rows, grid_cols,
		generations, peak, population, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var gens int64
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.RunID,
		&r.Pattern,
		&r.Title,
		&r.Topology,
		&r.Rows,
		&r.Cols,
		&gens,
		&r.Peak,
		&r.Population,
		&r.Duration,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Generations = uint64(gens)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
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

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// PatternRuns retrieves the runs of one pattern ordered by generations reached.
func (s *Store) PatternRuns(pattern string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pattern = ?
		 ORDER BY generations DESC, id DESC
		 LIMIT ?`,
		pattern, limit,
	)
}

// RunByID retrieves a run by its run ID. Returns nil if no such run exists.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes the history of one pattern, or of every pattern when
// pattern is empty.
func (s *Store) ClearRuns(pattern string) error {
	var err error
	if pattern == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE pattern = ?", pattern)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllPatternStats retrieves statistics for every pattern that has been run.
func (s *Store) AllPatternStats() (map[string]*PatternStats, error) {
	rows, err := s.db.Query(
		`SELECT pattern, COUNT(*), MAX(generations), MAX(peak), MAX(created_at)
		 FROM runs
		 GROUP BY pattern`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pattern stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PatternStats)
	for rows.Next() {
		var ps PatternStats
		var gens int64
		var lastRun any
		if err := rows.Scan(&ps.Pattern, &ps.Runs, &gens, &ps.MaxPeak, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.MaxGenerations = uint64(gens)
		ps.LastRun = parseTime(lastRun)
		stats[ps.Pattern] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
