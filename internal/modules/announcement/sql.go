package announcement

import (
	"context"
	"fmt"

	"github.com/georgemunganga/shopfront/internal/database"
)

type sqlRepo struct{ db *database.DB }

func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) Create(ctx context.Context, a *Announcement) error {
	id, err := r.db.Insert(ctx, `INSERT INTO announcements (title, content, is_active) VALUES (?, ?, ?)`,
		a.Title, a.Content, database.BoolInt(a.IsActive))
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	a.ID = id
	return nil
}

func (r *sqlRepo) ListActive(ctx context.Context) ([]*Announcement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(content, ''), is_active FROM announcements WHERE is_active = 1 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*Announcement
	for rows.Next() {
		a := &Announcement{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.IsActive); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *sqlRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE announcements SET is_active = ? WHERE id = ?`, database.BoolInt(active), id)
	return err
}

func (r *sqlRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	return err
}
