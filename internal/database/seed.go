package database

import "fmt"

type seedItem struct {
	name     string
	category string
	minLevel int
	isCore   bool
	unit     string
}

// starterCatalog is inserted once, when the items table is empty at first
// boot. It is a bootstrap, not a migration: existing installs are never
// touched, and deleting seeded items does not bring them back unless the
// table ends up empty again.
var starterCatalog = []seedItem{
	{"Espresso Beans", "Coffee", 2, true, "kg"},
	{"Decaf Beans", "Coffee", 1, false, "kg"},
	{"Drinking Chocolate", "Coffee", 1, false, "kg"},
	{"Chai Powder", "Coffee", 1, false, "kg"},
	{"Full Cream Milk", "Dairy", 6, true, "L"},
	{"Skim Milk", "Dairy", 2, false, "L"},
	{"Oat Milk", "Dairy", 4, true, "L"},
	{"Almond Milk", "Dairy", 2, false, "L"},
	{"Soy Milk", "Dairy", 2, false, "L"},
	{"Takeaway Cups 8oz", "Supplies", 100, true, "units"},
	{"Takeaway Cups 12oz", "Supplies", 100, true, "units"},
	{"Cup Lids", "Supplies", 200, false, "units"},
	{"Napkins", "Supplies", 300, false, "units"},
}

func (d *DB) seedCatalog() error {
	var count int
	if err := d.conn.QueryRow("SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	insert := d.Rebind(`INSERT INTO items (name, category, min_level, is_core, unit) VALUES (?, ?, ?, ?, ?)`)
	for _, it := range starterCatalog {
		if _, err := tx.Exec(insert, it.name, it.category, it.minLevel, it.isCore, it.unit); err != nil {
			return fmt.Errorf("insert seed item %q: %w", it.name, err)
		}
	}
	return tx.Commit()
}
