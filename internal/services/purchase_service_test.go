package services

import (
	"errors"
	"testing"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

func newTestPurchaseService(store *database.DB) PurchaseService {
	return NewPurchaseService(
		repositories.NewPurchaseRepository(store),
		repositories.NewItemRepository(store),
		store,
		fixedClock(),
	)
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestRecordPurchase(t *testing.T) {
	store := setupTestStore(t)
	beans := mustCreateTestItem(t, store, "Beans", "Coffee")
	svc := newTestPurchaseService(store)

	purchase, err := svc.RecordPurchase(RecordPurchaseRequest{
		ItemID:   beans.ID,
		Quantity: 2,
		Cost:     mustDec(t, "12.50"),
		Store:    "Costco",
	})
	if err != nil {
		t.Fatalf("RecordPurchase failed: %v", err)
	}
	if purchase.ID == 0 {
		t.Error("purchase should have an id after insert")
	}
	if purchase.Date != "2025-03-15" {
		t.Errorf("date should default to the clock's today, got %s", purchase.Date)
	}
	if purchase.ItemName != "Beans" {
		t.Errorf("purchase should carry the item name, got %q", purchase.ItemName)
	}

	list, err := svc.ListPurchases()
	if err != nil {
		t.Fatalf("ListPurchases failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 purchase, got %d", len(list))
	}
	if !list[0].Cost.Equal(mustDec(t, "12.50")) {
		t.Errorf("cost must round-trip exactly, got %s", list[0].Cost)
	}
}

func TestRecordPurchaseValidation(t *testing.T) {
	store := setupTestStore(t)
	beans := mustCreateTestItem(t, store, "Beans", "Coffee")
	svc := newTestPurchaseService(store)

	if _, err := svc.RecordPurchase(RecordPurchaseRequest{Quantity: 1}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing item_id: expected ErrValidation, got %v", err)
	}
	if _, err := svc.RecordPurchase(RecordPurchaseRequest{ItemID: beans.ID, Date: "15-03-2025"}); !errors.Is(err, ErrValidation) {
		t.Errorf("malformed date: expected ErrValidation, got %v", err)
	}
	if _, err := svc.RecordPurchase(RecordPurchaseRequest{ItemID: 9999}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown item: expected ErrItemNotFound, got %v", err)
	}
}

func TestWeeklyStatsWindowBoundaries(t *testing.T) {
	store := setupTestStore(t)
	beans := mustCreateTestItem(t, store, "Beans", "Coffee")
	svc := newTestPurchaseService(store)

	// Today is 2025-03-15, so the window starts at 2025-03-09.
	record := func(date, cost string) {
		t.Helper()
		if _, err := svc.RecordPurchase(RecordPurchaseRequest{
			ItemID: beans.ID, Quantity: 1, Cost: mustDec(t, cost), Store: "Coles", Date: date,
		}); err != nil {
			t.Fatalf("RecordPurchase %s failed: %v", date, err)
		}
	}
	record("2025-03-08", "100.00") // one day too old, must be excluded
	record("2025-03-09", "5.00")   // first day in the window
	record("2025-03-15", "2.00")   // today

	stats, err := svc.WeeklyStats()
	if err != nil {
		t.Fatalf("WeeklyStats failed: %v", err)
	}
	if len(stats.Items) != 1 {
		t.Fatalf("expected 1 item stat, got %d", len(stats.Items))
	}
	if got, want := stats.Items[0].TotalCost, mustDec(t, "7.00"); !got.Equal(want) {
		t.Errorf("window total = %s, want %s", got, want)
	}
	if stats.Items[0].TotalQuantity != 2 {
		t.Errorf("window quantity = %d, want 2", stats.Items[0].TotalQuantity)
	}
}

func TestWeeklyStatsExactDecimalSums(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Dairy")
	svc := newTestPurchaseService(store)

	// 0.1 three times must be exactly 0.3, not a float approximation.
	for i := 0; i < 3; i++ {
		if _, err := svc.RecordPurchase(RecordPurchaseRequest{
			ItemID: milk.ID, Quantity: 1, Cost: mustDec(t, "0.1"), Store: "Coles",
		}); err != nil {
			t.Fatalf("RecordPurchase failed: %v", err)
		}
	}

	stats, err := svc.WeeklyStats()
	if err != nil {
		t.Fatalf("WeeklyStats failed: %v", err)
	}
	if got, want := stats.Items[0].TotalCost, mustDec(t, "0.3"); !got.Equal(want) {
		t.Errorf("item total = %s, want exactly %s", got, want)
	}
	if got, want := stats.Stores[0].TotalCost, mustDec(t, "0.3"); !got.Equal(want) {
		t.Errorf("store total = %s, want exactly %s", got, want)
	}
}

func TestWeeklyStatsGrouping(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Dairy")
	beans := mustCreateTestItem(t, store, "Beans", "Coffee")
	svc := newTestPurchaseService(store)

	record := func(id int64, cost, shop string) {
		t.Helper()
		if _, err := svc.RecordPurchase(RecordPurchaseRequest{
			ItemID: id, Quantity: 1, Cost: mustDec(t, cost), Store: shop,
		}); err != nil {
			t.Fatalf("RecordPurchase failed: %v", err)
		}
	}
	record(milk.ID, "3.00", "Coles")
	record(milk.ID, "3.50", "coles") // different store: grouping is case-sensitive
	record(beans.ID, "12.50", "Costco")

	stats, err := svc.WeeklyStats()
	if err != nil {
		t.Fatalf("WeeklyStats failed: %v", err)
	}

	if len(stats.Items) != 2 {
		t.Fatalf("expected 2 item stats, got %d", len(stats.Items))
	}
	// Sorted by total cost descending.
	if stats.Items[0].Name != "Beans" || !stats.Items[0].TotalCost.Equal(mustDec(t, "12.50")) {
		t.Errorf("top item mismatch: %+v", stats.Items[0])
	}
	if stats.Items[1].Name != "Milk" || !stats.Items[1].TotalCost.Equal(mustDec(t, "6.50")) {
		t.Errorf("second item mismatch: %+v", stats.Items[1])
	}

	if len(stats.Stores) != 3 {
		t.Fatalf("expected 3 store stats (case-sensitive), got %d", len(stats.Stores))
	}
	byStore := map[string]string{}
	for _, s := range stats.Stores {
		byStore[s.Store] = s.TotalCost.String()
	}
	if byStore["Coles"] != "3" || byStore["coles"] != "3.5" || byStore["Costco"] != "12.5" {
		t.Errorf("store totals mismatch: %v", byStore)
	}
}

func TestWeeklyStatsEmpty(t *testing.T) {
	store := setupTestStore(t)
	svc := newTestPurchaseService(store)

	stats, err := svc.WeeklyStats()
	if err != nil {
		t.Fatalf("WeeklyStats failed: %v", err)
	}
	if stats.Items == nil || stats.Stores == nil {
		t.Error("empty stats should serialize as empty arrays, not null")
	}
	if len(stats.Items) != 0 || len(stats.Stores) != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
