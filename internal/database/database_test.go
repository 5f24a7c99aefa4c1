package database

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPostgresRebind(t *testing.T) {
	d := postgresDialect{}
	assert.Equal(t, "SELECT 1", d.Rebind("SELECT 1"))
	assert.Equal(t,
		"UPDATE products SET sort_order = $1 WHERE id = $2",
		d.Rebind("UPDATE products SET sort_order = ? WHERE id = ?"))
	assert.Equal(t, "SERIAL PRIMARY KEY", d.PrimaryKey())
}

func TestSQLiteDialectIsIdentity(t *testing.T) {
	d := sqliteDialect{}
	q := "SELECT * FROM staff WHERE id = ?"
	assert.Equal(t, q, d.Rebind(q))
	assert.Contains(t, d.PrimaryKey(), "AUTOINCREMENT")
}

func TestOpenFallsBackToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.db")
	db, err := Open(context.Background(),
		"postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1",
		path, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "sqlite", db.Dialect().Name())
	assert.FileExists(t, path)
}

func TestOpenWithoutURLUsesSQLite(t *testing.T) {
	db, err := Open(context.Background(), "", filepath.Join(t.TempDir(), "a.db"), zap.NewNop())
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, "sqlite", db.Dialect().Name())
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx))

	id, err := db.Insert(ctx, `INSERT INTO staff (name, hourly_wage) VALUES (?, ?)`, "Aki", 1300.0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestSeedRunsOnce(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Seed(ctx))

	// A settings edit must survive a second start.
	_, err := db.Exec(ctx, `UPDATE website_settings SET settings_json = ? WHERE id = ?`, `{"shop_name":"Mine"}`, SettingsRowID)
	require.NoError(t, err)
	require.NoError(t, db.Seed(ctx))

	var n int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&n))
	assert.Equal(t, len(seedInventory), n)

	var raw string
	require.NoError(t, db.QueryRow(ctx, `SELECT settings_json FROM website_settings WHERE id = ?`, SettingsRowID).Scan(&raw))
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "Mine", doc["shop_name"])
}

func TestWithTxRollsBack(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))

	err := db.WithTx(ctx, func(tx Conn) error {
		if _, err := tx.Exec(ctx, `INSERT INTO announcements (title) VALUES (?)`, "x"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var n int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&n))
	assert.Zero(t, n)
}
