// Package dbopen opens SQLite databases with the pragmas a long-lived
// process needs: WAL journaling, a busy timeout, and foreign keys on.
// Callers get a ready *sql.DB with the schema applied.
package dbopen

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const driver = "sqlite"

type config struct {
	busyTimeoutMS int
	synchronous   string
	foreignKeys   bool
	mkdirAll      bool
	schema        string
	ping          bool
}

// Option customises how a database is opened.
type Option func(*config)

// WithBusyTimeout sets the busy_timeout pragma in milliseconds.
// Default: 10000.
func WithBusyTimeout(ms int) Option { return func(c *config) { c.busyTimeoutMS = ms } }

// WithSynchronous sets the synchronous pragma. Default: NORMAL.
func WithSynchronous(mode string) Option { return func(c *config) { c.synchronous = mode } }

// WithoutForeignKeys skips enabling the foreign_keys pragma.
func WithoutForeignKeys() Option { return func(c *config) { c.foreignKeys = false } }

// WithMkdirAll creates the parent directory of the database file before
// opening it.
func WithMkdirAll() Option { return func(c *config) { c.mkdirAll = true } }

// WithSchema executes ddl after the pragmas are applied. The DDL must be
// idempotent (CREATE TABLE IF NOT EXISTS and friends).
func WithSchema(ddl string) Option { return func(c *config) { c.schema = ddl } }

// WithoutPing skips the connectivity check after opening.
func WithoutPing() Option { return func(c *config) { c.ping = false } }

// Open opens the SQLite database at path and applies pragmas and schema.
func Open(path string, opts ...Option) (*sql.DB, error) {
	c := config{
		busyTimeoutMS: 10000,
		synchronous:   "NORMAL",
		foreignKeys:   true,
		ping:          true,
	}
	for _, o := range opts {
		o(&c)
	}

	if c.mkdirAll {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("dbopen: mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("dbopen: open %s: %w", path, err)
	}
	if err := setup(db, c, path != ":memory:"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenMemory opens an in-memory database for tests, capped at one
// connection so every statement sees the same memory. Closed on cleanup.
func OpenMemory(t testing.TB, opts ...Option) *sql.DB {
	t.Helper()
	db, err := sql.Open(driver, ":memory:")
	if err != nil {
		t.Fatalf("dbopen: open memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	c := config{
		busyTimeoutMS: 10000,
		synchronous:   "NORMAL",
		foreignKeys:   true,
		ping:          true,
	}
	for _, o := range opts {
		o(&c)
	}
	if err := setup(db, c, false); err != nil {
		t.Fatalf("dbopen: %v", err)
	}
	return db
}

func setup(db *sql.DB, c config, wal bool) error {
	pragmas := make([]string, 0, 4)
	if wal {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL")
	}
	pragmas = append(pragmas,
		fmt.Sprintf("PRAGMA busy_timeout=%d", c.busyTimeoutMS),
		fmt.Sprintf("PRAGMA synchronous=%s", c.synchronous),
	)
	if c.foreignKeys {
		pragmas = append(pragmas, "PRAGMA foreign_keys=ON")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("dbopen: %s: %w", p, err)
		}
	}
	if c.schema != "" {
		if _, err := db.Exec(c.schema); err != nil {
			return fmt.Errorf("dbopen: apply schema: %w", err)
		}
	}
	if c.ping {
		if err := db.Ping(); err != nil {
			return fmt.Errorf("dbopen: ping: %w", err)
		}
	}
	return nil
}
