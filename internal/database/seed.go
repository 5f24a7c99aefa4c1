package database

import (
	"context"
	"encoding/json"
	"fmt"
)

// SettingsRowID is the single row holding the settings blob.
const SettingsRowID = 1

type seedItem struct {
	name      string
	category  string
	quantity  int
	threshold int
	unit      string
}

var seedInventory = []seedItem{
	{"Cream cheese", "Ingredient", 50, 20, "block"},
	{"Eggs", "Ingredient", 100, 30, "pcs"},
	{"Caster sugar", "Ingredient", 20, 5, "kg"},
	{"Flour", "Ingredient", 15, 5, "kg"},
	{"Butter", "Ingredient", 30, 10, "block"},
	{"Lemons", "Ingredient", 40, 15, "pcs"},
	{"Cake box (6 inch)", "Packaging", 50, 20, "pcs"},
	{"Slice container", "Packaging", 100, 30, "pcs"},
	{"Paper bag", "Packaging", 80, 25, "pcs"},
}

// SeedSettings is the settings document written on first start.
var SeedSettings = map[string]any{
	"shop_name":    "Lemon Patisserie",
	"shop_icon":    "🍋",
	"catchphrase":  "Sweet moments, fresh flavours",
	"about_text":   "Every dessert is made by hand with the best ingredients we can find.",
	"brand_color":  "#FCD34D",
	"hero_badge":   "Baked fresh every day",
	"address":      "1-2-3 Shinsaibashi, Chuo-ku, Osaka",
	"phone":        "06-1234-5678",
	"hours":        "Mon-Sat 10:00-20:00",
	"stat1_number": "5+",
	"stat1_label":  "Years of craft",
	"stat2_number": "10K+",
	"stat2_label":  "Happy customers",
	"stat3_number": "15+",
	"stat3_label":  "Recipes",
	"rating_score": "4.9",
	"rating_label": "Top rated",
	"rating_count": "500+ reviews",
	"footer_text":  "All rights reserved.",
}

// Seed inserts the default inventory and settings document, each only when
// its table is empty. Existing data is never touched.
func (db *DB) Seed(ctx context.Context) error {
	return db.WithTx(ctx, func(tx Conn) error {
		var n int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&n); err != nil {
			return fmt.Errorf("count inventory: %w", err)
		}
		if n == 0 {
			for _, it := range seedInventory {
				if _, err := tx.Exec(ctx,
					`INSERT INTO inventory (item_name, category, quantity, threshold, unit) VALUES (?, ?, ?, ?, ?)`,
					it.name, it.category, it.quantity, it.threshold, it.unit); err != nil {
					return fmt.Errorf("seed inventory: %w", err)
				}
			}
		}

		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM website_settings`).Scan(&n); err != nil {
			return fmt.Errorf("count settings: %w", err)
		}
		if n == 0 {
			raw, err := json.Marshal(SeedSettings)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO website_settings (id, settings_json) VALUES (?, ?)`,
				SettingsRowID, string(raw)); err != nil {
				return fmt.Errorf("seed settings: %w", err)
			}
		}
		return nil
	})
}
