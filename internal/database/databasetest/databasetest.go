// Package databasetest opens throwaway SQLite stores for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/georgemunganga/shopfront/internal/database"
)

// New returns a migrated, empty store that is closed when the test ends.
func New(t testing.TB) *database.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "shop.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewSeeded is New followed by the first-run seed.
func NewSeeded(t testing.TB) *database.DB {
	t.Helper()
	db := New(t)
	if err := db.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
