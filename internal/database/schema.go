package database

import (
	"context"
	"fmt"
)

// Migrate creates any missing table. It runs on every start.
func (db *DB) Migrate(ctx context.Context) error {
	pk := db.dialect.PrimaryKey()
	statements := []string{
		`CREATE TABLE IF NOT EXISTS staff (
			id ` + pk + `,
			name TEXT NOT NULL,
			hourly_wage DOUBLE PRECISION DEFAULT 1200,
			is_active INTEGER DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id ` + pk + `,
			staff_id INTEGER NOT NULL REFERENCES staff(id),
			clock_in TEXT NOT NULL,
			clock_out TEXT,
			work_date TEXT NOT NULL,
			hours_worked DOUBLE PRECISION DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id ` + pk + `,
			item_name TEXT NOT NULL,
			category TEXT DEFAULT 'Ingredient',
			quantity INTEGER DEFAULT 0,
			threshold INTEGER DEFAULT 10,
			unit TEXT DEFAULT 'pcs',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id ` + pk + `,
			reference TEXT NOT NULL,
			items TEXT NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL,
			payment_method TEXT DEFAULT 'cash',
			staff_id INTEGER REFERENCES staff(id),
			sale_date TEXT NOT NULL,
			sale_day TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS website_settings (
			id INTEGER PRIMARY KEY,
			settings_json TEXT DEFAULT '{}',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id ` + pk + `,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			price TEXT DEFAULT '',
			category TEXT DEFAULT 'cake',
			image_path TEXT DEFAULT '',
			status TEXT DEFAULT 'active',
			sort_order INTEGER DEFAULT 0,
			image_fit TEXT DEFAULT 'cover',
			image_position TEXT DEFAULT 'center',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS announcements (
			id ` + pk + `,
			title TEXT NOT NULL,
			content TEXT DEFAULT '',
			is_active INTEGER DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_staff_date ON attendance(staff_id, work_date)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_day ON sales(sale_day)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
