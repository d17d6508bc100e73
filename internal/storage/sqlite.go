// Package storage provides SQLite-based persistence for population census
// samples. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for census persistence.
type Store struct {
	db *sql.DB
}

// Run describes one simulation run.
type Run struct {
	ID        string
	Host      string // "local" or the SSH user
	Width     int
	Height    int
	Seed      int64
	StartedAt time.Time
}

// RunInfo summarizes a recorded run.
type RunInfo struct {
	Run
	Samples   int
	FirstTick uint64
	LastTick  uint64
	LastAt    time.Time
}

// Sample is the count of one species at one tick.
type Sample struct {
	RunID     string    `csv:"run"`
	Tick      uint64    `csv:"tick"`
	Species   string    `csv:"species"`
	Count     int       `csv:"count"`
	CreatedAt time.Time `csv:"recorded_at"`
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
			run_id TEXT PRIMARY KEY,
			host TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS census (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			species TEXT NOT NULL,
			count INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_census_run ON census(run_id, tick);
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

// StartRun records a new run. Starting the same run twice is an error.
func (s *Store) StartRun(run Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, host, width, height, seed, started_at) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Host, run.Width, run.Height, run.Seed, run.StartedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot start run %s: %w", run.ID, err)
	}
	return nil
}

// SaveCensus records the population counts of one tick in a single transaction.
func (s *Store) SaveCensus(runID string, tick uint64, counts map[string]int, at time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin census: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO census (run_id, tick, species, count, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare census: %w", err)
	}
	defer stmt.Close()

	for species, n := range counts {
		if _, err := stmt.Exec(runID, int64(tick), species, n, at.UTC()); err != nil {
			return fmt.Errorf("storage: cannot save census: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit census: %w", err)
	}
	return nil
}

// Runs lists every recorded run, most recent first.
func (s *Store) Runs() ([]RunInfo, error) {
	rows, err := s.db.Query(
		`SELECT r.run_id, r.host, r.width, r.height, r.seed, r.started_at,
		        COUNT(DISTINCT c.tick), COALESCE(MIN(c.tick), 0), COALESCE(MAX(c.tick), 0), MAX(c.created_at)
		 FROM runs r
		 LEFT JOIN census c ON c.run_id = r.run_id
		 GROUP BY r.run_id
		 ORDER BY r.started_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		var startedAt, lastAt any
		var first, last int64
		if err := rows.Scan(
			&info.ID, &info.Host, &info.Width, &info.Height, &info.Seed, &startedAt,
			&info.Samples, &first, &last, &lastAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.StartedAt = parseTime(startedAt)
		info.LastAt = parseTime(lastAt)
		info.FirstTick, info.LastTick = uint64(first), uint64(last)
		runs = append(runs, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Samples retrieves every census sample of a run, ordered by tick and species.
func (s *Store) Samples(runID string) ([]Sample, error) {
	rows, err := s.db.Query(
		`SELECT run_id, tick, species, count, created_at
		 FROM census
		 WHERE run_id = ?
		 ORDER BY tick, species`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query census: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var smp Sample
		var tick int64
		var createdAt any
		if err := rows.Scan(&smp.RunID, &tick, &smp.Species, &smp.Count, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		smp.Tick = uint64(tick)
		smp.CreatedAt = parseTime(createdAt)
		samples = append(samples, smp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return samples, nil
}

// ClearRun deletes a run and its samples.
func (s *Store) ClearRun(runID string) error {
	if _, err := s.db.Exec("DELETE FROM census WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("storage: cannot clear census: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("storage: cannot clear run: %w", err)
	}
	return nil
}

// parseTime handles both driver-decoded times and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
