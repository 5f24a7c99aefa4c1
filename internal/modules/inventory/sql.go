package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/shopfront/internal/database"
)

const itemColumns = `id, item_name, category, quantity, threshold, unit`

type sqlRepo struct{ db *database.DB }

func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) Create(ctx context.Context, item *Item) error {
	id, err := r.db.Insert(ctx,
		`INSERT INTO inventory (item_name, category, quantity, threshold, unit) VALUES (?, ?, ?, ?, ?)`,
		item.ItemName, item.Category, item.Quantity, item.Threshold, item.Unit)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	item.ID = id
	return nil
}

func (r *sqlRepo) GetByID(ctx context.Context, id int64) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory WHERE id = ?`, id).
		Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Threshold, &item.Unit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *sqlRepo) List(ctx context.Context) ([]*Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM inventory ORDER BY category, item_name, id`)
}

func (r *sqlRepo) ListLow(ctx context.Context) ([]*Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM inventory WHERE quantity < threshold ORDER BY category, item_name, id`)
}

func (r *sqlRepo) list(ctx context.Context, query string) ([]*Item, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Threshold, &item.Unit); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AdjustQuantity applies delta in a single statement. The result may go
// negative.
func (r *sqlRepo) AdjustQuantity(ctx context.Context, id int64, delta int) error {
	_, err := r.db.Exec(ctx, `UPDATE inventory SET quantity = quantity + ? WHERE id = ?`, delta, id)
	return err
}

func (r *sqlRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	return err
}
