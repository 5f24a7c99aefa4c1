// Package database selects the SQL backend and owns schema creation and
// first-run seeding. Two engines are supported: an embedded SQLite file and an
// optional PostgreSQL server named by DATABASE_URL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Conn runs dialect-neutral statements against a database or a transaction.
type Conn struct {
	q       Querier
	dialect Dialect
}

func (c Conn) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.dialect.Rebind(query), args...)
}

func (c Conn) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.dialect.Rebind(query), args...)
}

func (c Conn) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.dialect.Rebind(query), args...)
}

// Insert executes an INSERT and returns the id generated for the new row.
func (c Conn) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	return c.dialect.InsertID(ctx, c.q, query, args...)
}

// DB is the store handle passed to every repository.
type DB struct {
	Conn
	sql *sql.DB
}

// New wraps an already opened database. Mostly useful in tests.
func New(db *sql.DB, dialect Dialect) *DB {
	return &DB{Conn: Conn{q: db, dialect: dialect}, sql: db}
}

// Dialect reports the engine in use.
func (db *DB) Dialect() Dialect { return db.dialect }

// Close releases the underlying pool.
func (db *DB) Close() error { return db.sql.Close() }

// WithTx runs fn inside a transaction, committing when fn returns nil.
func (db *DB) WithTx(ctx context.Context, fn func(tx Conn) error) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(Conn{q: tx, dialect: db.dialect}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Open connects to PostgreSQL when databaseURL is set and reachable. Any
// failure there falls back to the SQLite file at sqlitePath.
func Open(ctx context.Context, databaseURL, sqlitePath string, logger *zap.Logger) (*DB, error) {
	if databaseURL != "" {
		db, err := openPostgres(ctx, databaseURL)
		if err == nil {
			logger.Info("using postgres backend")
			return db, nil
		}
		logger.Warn("DATABASE_URL set but postgres unavailable, falling back to sqlite",
			zap.Error(err), zap.String("path", sqlitePath))
	}
	db, err := OpenSQLite(sqlitePath)
	if err != nil {
		return nil, err
	}
	logger.Info("using sqlite backend", zap.String("path", sqlitePath))
	return db, nil
}

func openPostgres(ctx context.Context, url string) (*DB, error) {
	sqlDB, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return New(sqlDB, postgresDialect{}), nil
}

// OpenSQLite opens (creating if needed) the embedded database file.
func OpenSQLite(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; transactions hold the only connection.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return New(sqlDB, sqliteDialect{}), nil
}

// BoolInt stores booleans as 0/1 so both engines share one schema.
func BoolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
