// Package ledger records generated fixtures in a SQLite database so runs can
// be audited and compared afterwards.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrUnknownRun is returned when recording against a run that was never begun.
var ErrUnknownRun = errors.New("unknown run")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	command TEXT NOT NULL,
	spec_file TEXT,
	sample_file TEXT,
	format TEXT,
	mode TEXT,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	fixtures INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS fixtures (
	run_id TEXT NOT NULL REFERENCES runs(id),
	requirement TEXT NOT NULL,
	element TEXT NOT NULL,
	field_path TEXT NOT NULL,
	file_name TEXT NOT NULL,
	nodes INTEGER NOT NULL DEFAULT 1,
	PRIMARY KEY (run_id, file_name)
);
CREATE INDEX IF NOT EXISTS idx_fixtures_element ON fixtures(element);
`

// Run describes one invocation of the generator.
type Run struct {
	ID         string
	Command    string
	SpecFile   string
	SampleFile string
	Format     string
	Mode       string
	StartedAt  time.Time
}

// Entry is one recorded fixture.
type Entry struct {
	RunID       string
	Requirement string
	Element     string
	FieldPath   string
	FileName    string
	Nodes       int
}

// Ledger is an open fixture ledger. It is safe for concurrent use.
type Ledger struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the ledger database at path.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// BeginRun inserts a run and returns its id. A missing id is generated.
func (l *Ledger) BeginRun(ctx context.Context, r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs (id, command, spec_file, sample_file, format, mode, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Command, r.SpecFile, r.SampleFile, r.Format, r.Mode, r.StartedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	return r.ID, nil
}

// Record stores fixtures in a single transaction.
func (l *Ledger) Record(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO fixtures (run_id, requirement, element, field_path, file_name, nodes)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var exists int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, e.RunID).Scan(&exists); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("lookup run: %w", err)
		}

		if exists == 0 {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %s", ErrUnknownRun, e.RunID)
		}

		if _, err := stmt.ExecContext(ctx, e.RunID, e.Requirement, e.Element, e.FieldPath, e.FileName, e.Nodes); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert fixture %s: %w", e.FileName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// FinishRun stamps the run's completion time and fixture count.
func (l *Ledger) FinishRun(ctx context.Context, runID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, err := l.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, fixtures = (SELECT COUNT(*) FROM fixtures WHERE run_id = ?)
		WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), runID, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRun, runID)
	}

	return nil
}

// Fixtures returns the fixtures of a run ordered by requirement and file name.
func (l *Ledger) Fixtures(ctx context.Context, runID string) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.QueryContext(ctx, `
		SELECT run_id, requirement, element, field_path, file_name, nodes
		FROM fixtures WHERE run_id = ?
		ORDER BY requirement DESC, file_name`, runID)
	if err != nil {
		return nil, fmt.Errorf("query fixtures: %w", err)
	}
	defer rows.Close()

	var out []Entry

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunID, &e.Requirement, &e.Element, &e.FieldPath, &e.FileName, &e.Nodes); err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}

// FixtureCount returns the recorded fixture count of a finished run.
func (l *Ledger) FixtureCount(ctx context.Context, runID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var n int
	if err := l.db.QueryRowContext(ctx, `SELECT fixtures FROM runs WHERE id = ?`, runID).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ErrUnknownRun, runID)
		}

		return 0, err
	}

	return n, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
