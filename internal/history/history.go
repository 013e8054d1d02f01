// Package history records evaluation runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ThatOtherAndrew/unistroke/internal/evaluate"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Run is a stored evaluation summary.
type Run struct {
	ID        int64
	StartedAt time.Time
	TrainDir  string
	TestDir   string
	Templates int
	Samples   int
	Correct   int
	Accuracy  float64
	MinScore  float64
}

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			train_dir TEXT NOT NULL,
			test_dir TEXT NOT NULL,
			templates INTEGER NOT NULL,
			samples INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			min_score REAL NOT NULL,
			elapsed_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			label TEXT NOT NULL,
			path TEXT NOT NULL,
			predicted TEXT NOT NULL,
			score REAL NOT NULL,
			correct INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a report and its per-sample results in one transaction.
func (s *Store) SaveRun(ctx context.Context, trainDir, testDir string, r evaluate.Report) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, train_dir, test_dir, templates, samples, correct, accuracy, min_score, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		trainDir,
		testDir,
		r.Templates,
		len(r.Results),
		r.Correct(),
		r.Accuracy(),
		r.MinScore,
		r.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(r.Results) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO results (run_id, label, path, predicted, score, correct) VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()
		for _, res := range r.Results {
			if _, err := stmt.ExecContext(ctx, id, res.Label, res.Path, res.Predicted, res.Score, res.Correct); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns runs newest first, in the order they were saved. A non-positive limit
// returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, train_dir, test_dir, templates, samples, correct, accuracy, min_score
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.TrainDir, &r.TestDir, &r.Templates, &r.Samples, &r.Correct, &r.Accuracy, &r.MinScore); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("bad started_at %q: %w", started, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Misses returns the incorrect results of a run.
func (s *Store) Misses(ctx context.Context, runID int64) ([]evaluate.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, path, predicted, score FROM results WHERE run_id = ? AND correct = 0 ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []evaluate.Result
	for rows.Next() {
		var r evaluate.Result
		if err := rows.Scan(&r.Label, &r.Path, &r.Predicted, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
