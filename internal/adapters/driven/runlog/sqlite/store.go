// Package sqlite persists the run ledger: one row per processed file per
// run. The ledger is the durable trace an operator reconciles against
// when a file ends up stored in Drive but unrecorded in the destination
// database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/aruiz-labs/nominas-cli/internal/adapters/driven/runlog/sqlite/migrations"
	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunLedger = (*Store)(nil)

// Store is the SQLite-backed run ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (and migrates) the ledger database in dataDir. If
// dataDir is empty, defaults to ~/.nominas/data/runlog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".nominas", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runlog.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record appends one ledger entry.
func (s *Store) Record(ctx context.Context, e domain.RunEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_entries
			(id, run_id, sequence, file_name, outcome, gross, deductions, net, storage_id, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), e.RunID, e.Sequence, e.FileName, string(e.Outcome),
		e.Gross, e.Deductions, e.Net, e.StorageID, e.Detail,
	)
	if err != nil {
		return fmt.Errorf("inserting run entry for %s: %w", e.FileName, err)
	}
	return nil
}

// Entries returns the ledger entries of one run ordered by sequence.
func (s *Store) Entries(ctx context.Context, runID string) ([]domain.RunEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, sequence, file_name, outcome, gross, deductions, net, storage_id, detail
		FROM run_entries
		WHERE run_id = ?
		ORDER BY sequence`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", runID, err)
	}
	defer rows.Close()

	var entries []domain.RunEntry
	for rows.Next() {
		var e domain.RunEntry
		var outcome string
		if err := rows.Scan(
			&e.RunID, &e.Sequence, &e.FileName, &outcome,
			&e.Gross, &e.Deductions, &e.Net, &e.StorageID, &e.Detail,
		); err != nil {
			return nil, fmt.Errorf("scanning run entry: %w", err)
		}
		e.Outcome = domain.Outcome(outcome)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Unreconciled returns every entry across all runs that was stored but
// not recorded, oldest first.
func (s *Store) Unreconciled(ctx context.Context) ([]domain.RunEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, sequence, file_name, outcome, gross, deductions, net, storage_id, detail
		FROM run_entries
		WHERE outcome = ?
		ORDER BY created_at`,
		string(domain.OutcomeStoredNotRecorded),
	)
	if err != nil {
		return nil, fmt.Errorf("querying unreconciled entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RunEntry
	for rows.Next() {
		var e domain.RunEntry
		var outcome string
		if err := rows.Scan(
			&e.RunID, &e.Sequence, &e.FileName, &outcome,
			&e.Gross, &e.Deductions, &e.Net, &e.StorageID, &e.Detail,
		); err != nil {
			return nil, fmt.Errorf("scanning run entry: %w", err)
		}
		e.Outcome = domain.Outcome(outcome)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
