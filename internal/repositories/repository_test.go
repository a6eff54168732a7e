package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"

	"github.com/shopspring/decimal"
)

// setupTestStore opens a throwaway sqlite store. The starter catalog is
// cleared so each test builds exactly the rows it asserts on.
func setupTestStore(t *testing.T) *database.DB {
	t.Helper()
	store, err := database.Open(database.Config{
		Backend:    database.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.Conn().Exec("DELETE FROM items"); err != nil {
		t.Fatalf("clearing seed catalog failed: %v", err)
	}
	return store
}

func mustCreateItem(t *testing.T, store *database.DB, name, category string, isCore bool) *models.Item {
	t.Helper()
	repo := NewItemRepository(store)
	item := &models.Item{Name: name, Category: category, IsCore: isCore, Unit: "units"}
	if _, err := repo.Create(store.Conn(), item); err != nil {
		t.Fatalf("Create item %q failed: %v", name, err)
	}
	return item
}

func countRows(t *testing.T, store *database.DB, table string) int {
	t.Helper()
	var n int
	if err := store.Conn().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

func testTime() time.Time {
	return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}
