// Package storage provides SQLite-based persistence for demo scores and
// headless simulation runs.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	DemoID    string
	Score     int
	CreatedAt time.Time
}

// SimRun is the summary of one headless simulation.
type SimRun struct {
	ID        int64
	DemoID    string
	Seed      int64
	Ticks     int
	Bodies    int // bodies left in the scene at the end
	Forces    int // forces left in the scene at the end
	Kinetic   float64
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			demo_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_demo_id ON scores(demo_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(demo_id, score DESC);

		CREATE TABLE IF NOT EXISTS sim_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			demo_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			bodies INTEGER NOT NULL DEFAULT 0,
			forces INTEGER NOT NULL DEFAULT 0,
			kinetic REAL NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sim_runs_demo_id ON sim_runs(demo_id);
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

// parseTime handles both driver-decoded and textual DATETIME values.
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

// SaveScore records a new score for the given demo.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(demoID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (demo_id, score) VALUES (?, ?)",
		demoID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given demo.
// Results are ordered by score descending.
func (s *Store) TopScores(demoID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, score, created_at
		 FROM scores
		 WHERE demo_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.DemoID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given demo.
// Returns 0 if no scores exist.
func (s *Store) HighScore(demoID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE demo_id = ?",
		demoID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given demo.
func (s *Store) ClearScores(demoID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE demo_id = ?", demoID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveSimRun records the outcome of a headless simulation.
func (s *Store) SaveSimRun(run SimRun) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sim_runs
		 (demo_id, seed, ticks, bodies, forces, kinetic, score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.DemoID,
		run.Seed,
		run.Ticks,
		run.Bodies,
		run.Forces,
		run.Kinetic,
		run.Score,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save sim run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSimRuns returns the latest runs, newest first. An empty demoID
// returns runs of every demo.
func (s *Store) RecentSimRuns(demoID string, limit int) ([]SimRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, seed, ticks, bodies, forces, kinetic, score, duration_ms, created_at
		 FROM sim_runs
		 WHERE ? = '' OR demo_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		demoID, demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sim runs: %w", err)
	}
	defer rows.Close()

	var runs []SimRun
	for rows.Next() {
		var r SimRun
		var ms int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.DemoID,
			&r.Seed,
			&r.Ticks,
			&r.Bodies,
			&r.Forces,
			&r.Kinetic,
			&r.Score,
			&ms,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DemoStats contains aggregated score statistics for a demo.
type DemoStats struct {
	DemoID     string
	PlayCount  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetDemoStats retrieves aggregated statistics for a specific demo.
func (s *Store) GetDemoStats(demoID string) (*DemoStats, error) {
	stats := &DemoStats{DemoID: demoID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE demo_id = ?`,
		demoID,
	).Scan(&stats.PlayCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get demo stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE demo_id = ? ORDER BY created_at DESC LIMIT 1`,
		demoID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllDemoStats retrieves statistics for all demos that have scores.
func (s *Store) GetAllDemoStats() (map[string]*DemoStats, error) {
	rows, err := s.db.Query(
		`SELECT demo_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY demo_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all demo stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DemoStats)
	for rows.Next() {
		var st DemoStats
		var lastPlayed any
		if err := rows.Scan(&st.DemoID, &st.PlayCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.DemoID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
