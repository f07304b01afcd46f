// Package store persists run reports in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/rumorsim/internal/report"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrNotFound indicates an unknown run ID.
var ErrNotFound = errors.New("store: run not found")

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and initializes the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := MemoryPath
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer; also keeps one :memory: database

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores r; saving the same run ID twice replaces the earlier row.
func (s *Store) Save(ctx context.Context, r report.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	weights, err := json.Marshal(r.Weights)
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	var kp sql.NullFloat64
	if r.KillingPoint != nil {
		kp = sql.NullFloat64{Float64: *r.KillingPoint, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, kind, created_at, weights, killing_point, payload)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, string(r.Kind), r.CreatedAt.UTC().Format(time.RFC3339Nano), string(weights), kp, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", r.RunID, err)
	}

	return nil
}

// List returns up to limit runs, newest first. limit <= 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]report.Summary, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, created_at, weights, killing_point
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []report.Summary
	for rows.Next() {
		var (
			sum       report.Summary
			kind      string
			createdAt string
			weights   string
			kp        sql.NullFloat64
		)
		if err := rows.Scan(&sum.RunID, &kind, &createdAt, &weights, &kp); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		sum.Kind = report.Kind(kind)
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("run %s: bad created_at: %w", sum.RunID, err)
		}
		if err := json.Unmarshal([]byte(weights), &sum.Weights); err != nil {
			return nil, fmt.Errorf("run %s: bad weights: %w", sum.RunID, err)
		}
		if kp.Valid {
			v := kp.Float64
			sum.KillingPoint = &v
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return out, nil
}

// Get returns the full report for a run ID.
func (s *Store) Get(ctx context.Context, id string) (report.Report, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to load run %s: %w", id, err)
	}

	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return report.Report{}, fmt.Errorf("run %s: bad payload: %w", id, err)
	}

	return r, nil
}
