// Package journal records script runs and their steps in a SQLite database
// and exports them as JSONL.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/ownlists/pkg/types"
)

// FileName is the database file created inside the data directory.
const FileName = "journal.db"

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store is an open journal.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// Open creates dataDir if needed and opens (or creates) the journal in it.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, FileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// newRunID generates a UUID v7 string.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Record stores run and its steps in one transaction. A new RunID is
// generated when run.RunID is empty and CreatedAt defaults to now. Returns
// the run ID used.
func (s *Store) Record(run types.Run) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return "", types.ErrJournalClosed
	}
	if run.RunID == "" {
		run.RunID = newRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, variant, script, created_at) VALUES (?, ?, ?, ?)`,
		run.RunID, run.Variant, run.Script, run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	for _, st := range run.Steps {
		_, err = tx.Exec(
			`INSERT INTO steps (run_id, seq, op, arg, result, error) VALUES (?, ?, ?, ?, ?, ?)`,
			run.RunID, st.Seq, st.Op, st.Arg, st.Result, st.Error,
		)
		if err != nil {
			return "", fmt.Errorf("insert step %d: %w", st.Seq, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return run.RunID, nil
}

// Runs returns the most recent runs, newest first, without their steps.
// A limit of zero or less returns every run.
func (s *Store) Runs(limit int) ([]types.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrJournalClosed
	}
	query := `SELECT run_id, variant, script, created_at FROM runs ORDER BY created_at DESC, run_id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns one run with its steps.
func (s *Store) Get(runID string) (types.Run, error) {
	if runID == "" {
		return types.Run{}, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return types.Run{}, types.ErrJournalClosed
	}
	row := s.db.QueryRow(`SELECT run_id, variant, script, created_at FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, types.ErrRunNotFound
	}
	if err != nil {
		return types.Run{}, err
	}
	steps, err := s.stepsLocked(runID)
	if err != nil {
		return types.Run{}, err
	}
	run.Steps = steps
	return run, nil
}

// Steps returns the steps of a run in order.
func (s *Store) Steps(runID string) ([]types.Step, error) {
	run, err := s.Get(runID)
	if err != nil {
		return nil, err
	}
	return run.Steps, nil
}

func (s *Store) stepsLocked(runID string) ([]types.Step, error) {
	rows, err := s.db.Query(
		`SELECT seq, op, arg, result, error FROM steps WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	var steps []types.Step
	for rows.Next() {
		var st types.Step
		if err := rows.Scan(&st.Seq, &st.Op, &st.Arg, &st.Result, &st.Error); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, st)
	}
	return steps, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (types.Run, error) {
	var (
		run     types.Run
		created string
	)
	if err := sc.Scan(&run.RunID, &run.Variant, &run.Script, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return run, err
		}
		return run, fmt.Errorf("scan run: %w", err)
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return run, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	run.CreatedAt = t
	return run, nil
}
