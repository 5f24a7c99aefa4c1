package pos

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgemunganga/shopfront/internal/database"
)

const dateLayout = "2006-01-02"

type sqlRepo struct{ db *database.DB }

func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) Create(ctx context.Context, sale *Sale) error {
	id, err := r.db.Insert(ctx,
		`INSERT INTO sales (reference, items, total_amount, payment_method, staff_id, sale_date, sale_day)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sale.Reference, sale.Items, sale.TotalAmount, sale.PaymentMethod, sale.StaffID,
		sale.SaleDate.Format(time.RFC3339Nano), sale.SaleDate.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	sale.ID = id
	return nil
}

func (r *sqlRepo) ListDay(ctx context.Context, day string) ([]*Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.reference, s.items, s.total_amount, s.payment_method, s.staff_id, st.name, s.sale_date
		 FROM sales s LEFT JOIN staff st ON s.staff_id = st.id
		 WHERE s.sale_day = ? ORDER BY s.sale_date DESC, s.id DESC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sales []*Sale
	for rows.Next() {
		s := &Sale{}
		var staffID sql.NullInt64
		var staffName sql.NullString
		var saleDate string
		if err := rows.Scan(&s.ID, &s.Reference, &s.Items, &s.TotalAmount, &s.PaymentMethod,
			&staffID, &staffName, &saleDate); err != nil {
			return nil, err
		}
		if staffID.Valid {
			s.StaffID = &staffID.Int64
		}
		s.StaffName = staffName.String
		if s.SaleDate, err = time.Parse(time.RFC3339Nano, saleDate); err != nil {
			return nil, fmt.Errorf("sale %d date: %w", s.ID, err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *sqlRepo) TotalDay(ctx context.Context, day string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE sale_day = ?`, day).Scan(&total)
	return total, err
}
