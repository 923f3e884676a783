// internal/opencache/store.go
//
// SQLite-backed cache for precomputed opening guesses.
// Responsibilities:
//   - Open the database with safe defaults (WAL, busy timeout).
//   - Persist a ranked opening list keyed by the word-bank fingerprint.
//   - Retrieve a previously stored list for the same fingerprint.
//
// A fingerprint identifies the bank's exact content and order, so a
// changed word list never serves stale openings. Ranks are 1-based and
// dense; Save replaces any previous list for the fingerprint atomically.

package opencache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pl9ed/wordle-solver/internal/solver"
)

const schema = `
CREATE TABLE IF NOT EXISTS openings (
    fingerprint TEXT    NOT NULL,
    rank        INTEGER NOT NULL,
    word        TEXT    NOT NULL,
    score       REAL    NOT NULL,
    computed_at TEXT    NOT NULL,
    PRIMARY KEY (fingerprint, rank)
);`

// Store persists opening-guess lists in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if missing) the SQLite database at dsn and
// ensures the schema exists.
//
//   - Ensures the parent directory exists for relative DSNs
//     (e.g. ./data/openings.db).
//   - Configures busy timeout and WAL journaling.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create openings table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the cached opening list for fingerprint in rank order,
// or (nil, nil) if none is stored.
func (s *Store) Load(ctx context.Context, fingerprint string) ([]solver.Opening, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, score FROM openings WHERE fingerprint=? ORDER BY rank ASC`,
		fingerprint,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []solver.Opening
	for rows.Next() {
		var o solver.Opening
		if err := rows.Scan(&o.Word, &o.Score); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Save replaces the stored opening list for fingerprint.
func (s *Store) Save(ctx context.Context, fingerprint string, list []solver.Opening) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM openings WHERE fingerprint=?`, fingerprint); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for i, o := range list {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO openings(fingerprint, rank, word, score, computed_at) VALUES(?,?,?,?,?)`,
			fingerprint, i+1, o.Word, o.Score, now,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
