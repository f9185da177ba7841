// Package sqlite implements the catalogue repositories on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// DB is the store handle shared by every repository.
// Whoever calls Open owns the handle and is the only caller of Close.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
	path   string

	mu     sync.Mutex
	closed bool
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens or creates the SQLite database at path
func Open(ctx context.Context, path string, logger *slog.Logger) (*DB, error) {
	if path == "" {
		path = MemoryPath
	}
	if !strings.HasPrefix(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One connection: SQLite has a single writer, and an in-memory
	// database only exists on the connection that created it.
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set pragma %q: %w", pragma, err)
		}
	}

	logger.Debug("opened catalogue store", slog.String("path", path))

	return &DB{
		conn:   conn,
		logger: logger,
		path:   path,
	}, nil
}

// Path returns the location the store was opened from
func (db *DB) Path() string {
	return db.path
}

// Conn returns the underlying sql.DB connection
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close releases the handle. Closing an already closed handle is a no-op.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil
	}
	db.closed = true
	return db.conn.Close()
}

// WithTx runs fn inside a transaction.
// If fn returns an error the transaction is rolled back, otherwise it is committed.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Error("failed to rollback transaction",
				slog.String("error", err.Error()),
				slog.String("rollback_error", rbErr.Error()),
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// exec runs each statement in order inside one transaction
func (db *DB) exec(ctx context.Context, statements []string) error {
	return db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// likePattern turns a search term into a substring LIKE pattern that
// matches the term literally. Use with ESCAPE '\'.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
