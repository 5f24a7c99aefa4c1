package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect hides the differences between the two supported SQL engines.
// Queries are written once with `?` placeholders and rebound per dialect.
type Dialect interface {
	Name() string
	Rebind(query string) string
	// PrimaryKey is the column definition of an auto-generated integer key.
	PrimaryKey() string
	// InsertID runs an INSERT and returns the generated id.
	InsertID(ctx context.Context, q Querier, query string, args ...any) (int64, error)
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string              { return "sqlite" }
func (sqliteDialect) Rebind(query string) string { return query }
func (sqliteDialect) PrimaryKey() string        { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

func (sqliteDialect) InsertID(ctx context.Context, q Querier, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) PrimaryKey() string { return "SERIAL PRIMARY KEY" }

// Rebind turns `?` placeholders into `$1, $2, ...`.
func (postgresDialect) Rebind(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d postgresDialect) InsertID(ctx context.Context, q Querier, query string, args ...any) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, d.Rebind(query)+" RETURNING id", args...).Scan(&id)
	return id, err
}
