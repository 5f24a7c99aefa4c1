package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/shopfront/internal/database"
)

const productColumns = `id, name, COALESCE(description, ''), COALESCE(price, ''), category,
	COALESCE(image_path, ''), status, sort_order, image_fit, image_position`

type sqlRepo struct{ db *database.DB }

func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) Create(ctx context.Context, p *Product) error {
	return r.db.WithTx(ctx, func(tx database.Conn) error {
		var next int
		if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(sort_order), 0) + 1 FROM products`).Scan(&next); err != nil {
			return fmt.Errorf("next sort order: %w", err)
		}
		id, err := tx.Insert(ctx,
			`INSERT INTO products (name, description, price, category, image_path, status, sort_order, image_fit, image_position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Description, p.Price, p.Category, p.ImagePath, p.Status, next, p.ImageFit, p.ImagePosition)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		p.ID = id
		p.SortOrder = next
		return nil
	})
}

func (r *sqlRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *sqlRepo) List(ctx context.Context, category Category) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY sort_order, id`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *sqlRepo) Update(ctx context.Context, id int64, patch ProductPatch) error {
	var sets []string
	var args []any
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.ImagePath != nil {
		add("image_path", *patch.ImagePath)
	}
	if patch.ImageFit != nil {
		add("image_fit", *patch.ImageFit)
	}
	if patch.ImagePosition != nil {
		add("image_position", *patch.ImagePosition)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db.Exec(ctx, `UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r *sqlRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *sqlRepo) Move(ctx context.Context, id int64, dir Direction) (bool, error) {
	var neighbour string
	switch dir {
	case Up:
		neighbour = `SELECT id, sort_order FROM products WHERE sort_order < ? ORDER BY sort_order DESC, id DESC LIMIT 1`
	case Down:
		neighbour = `SELECT id, sort_order FROM products WHERE sort_order > ? ORDER BY sort_order, id LIMIT 1`
	default:
		return false, fmt.Errorf("%w: unknown direction %q", ErrInvalid, dir)
	}
	moved := false
	err := r.db.WithTx(ctx, func(tx database.Conn) error {
		var order int
		err := tx.QueryRow(ctx, `SELECT sort_order FROM products WHERE id = ?`, id).Scan(&order)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		var otherID int64
		var otherOrder int
		err = tx.QueryRow(ctx, neighbour, order).Scan(&otherID, &otherOrder)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE products SET sort_order = ? WHERE id = ?`, otherOrder, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE products SET sort_order = ? WHERE id = ?`, order, otherID); err != nil {
			return err
		}
		moved = true
		return nil
	})
	return moved, err
}

type scanner interface{ Scan(dest ...any) error }

func scanProduct(s scanner) (*Product, error) {
	p := &Product{}
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImagePath, &p.Status, &p.SortOrder, &p.ImageFit, &p.ImagePosition)
	if err != nil {
		return nil, err
	}
	return p, nil
}
