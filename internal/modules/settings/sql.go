package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/georgemunganga/shopfront/internal/database"
	"go.uber.org/zap"
)

type sqlRepo struct {
	db     *database.DB
	logger *zap.Logger
}

func NewSQLRepository(db *database.DB, logger *zap.Logger) Repository {
	return &sqlRepo{db: db, logger: logger}
}

func (r *sqlRepo) Get(ctx context.Context) (Settings, error) {
	return r.get(ctx, r.db.Conn)
}

// get treats a missing row and a malformed document alike: both read as
// empty. A malformed document is therefore dropped on the next merge.
func (r *sqlRepo) get(ctx context.Context, c database.Conn) (Settings, error) {
	var raw sql.NullString
	err := c.QueryRow(ctx, `SELECT settings_json FROM website_settings WHERE id = ?`, database.SettingsRowID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return Settings{}, nil
	}
	var s Settings
	if err := json.Unmarshal([]byte(raw.String), &s); err != nil {
		r.logger.Warn("settings document is not valid JSON, reading as empty", zap.Error(err))
		return Settings{}, nil
	}
	if s == nil {
		s = Settings{}
	}
	return s, nil
}

func (r *sqlRepo) Merge(ctx context.Context, partial Settings) (Settings, error) {
	var merged Settings
	err := r.db.WithTx(ctx, func(tx database.Conn) error {
		existing, err := r.get(ctx, tx)
		if err != nil {
			return err
		}
		merged = existing.Merge(partial)
		raw, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		res, err := tx.Exec(ctx,
			`UPDATE website_settings SET settings_json = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			string(raw), database.SettingsRowID)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO website_settings (id, settings_json) VALUES (?, ?)`,
				database.SettingsRowID, string(raw)); err != nil {
				return fmt.Errorf("insert settings: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
