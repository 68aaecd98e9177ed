// Package journal records batch runs and per-file outcomes in a local
// SQLite database. The journal is strictly best-effort bookkeeping: callers
// log journal errors and move on, and a nil *Journal is a no-op so it can
// be wired unconditionally.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cdoebler/rename-invoice-pdfs/constants"
	"github.com/cdoebler/rename-invoice-pdfs/internal/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	directory   TEXT NOT NULL,
	backend     TEXT NOT NULL,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	scanned     INTEGER NOT NULL DEFAULT 0,
	renamed     INTEGER NOT NULL DEFAULT 0,
	skipped     INTEGER NOT NULL DEFAULT 0,
	failed      INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS file_results (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL REFERENCES runs(id),
	path         TEXT NOT NULL,
	outcome      TEXT NOT NULL,
	new_path     TEXT,
	invoice_date TEXT,
	error        TEXT,
	recorded_at  TIMESTAMP NOT NULL
);`

type Journal struct {
	db  *sql.DB
	log *slog.Logger
}

// Open creates or opens the journal database and ensures the schema.
func Open(path string, logger *slog.Logger) (*Journal, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Journal{db: db, log: logger}, nil
}

func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// RecordRun stores a completed run and its per-file outcomes in one
// transaction. Returns the generated run ID.
func (j *Journal) RecordRun(ctx context.Context, dir string, backend constants.Backend, startedAt time.Time, results []core.FileResult, stats core.BatchStats) (string, error) {
	if j == nil {
		return "", nil
	}

	runID := uuid.New().String()
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin journal tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, directory, backend, started_at, finished_at, scanned, renamed, skipped, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, dir, string(backend), startedAt.UTC(), now,
		stats.Scanned, stats.Renamed, stats.Skipped, stats.Failed,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO file_results (run_id, path, outcome, new_path, invoice_date, error, recorded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Path, string(r.Outcome), r.NewPath, r.InvoiceDate, r.Err, now,
		); err != nil {
			return "", fmt.Errorf("insert file result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit journal tx: %w", err)
	}
	j.log.Debug("journal.run.recorded", "run_id", runID, "files", len(results))
	return runID, nil
}
