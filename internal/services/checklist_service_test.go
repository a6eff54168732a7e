package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
	"stockcheck_backend/internal/repositories"
)

// fixedClock pins "now" to 2025-03-15 10:30 UTC for deterministic dates.
func fixedClock() Clock {
	return func() time.Time {
		return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	}
}

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

func newTestItemService(store *database.DB) ItemService {
	return NewItemService(repositories.NewItemRepository(store), store)
}

func newTestChecklistService(store *database.DB) ChecklistService {
	return NewChecklistService(
		repositories.NewCheckRepository(store),
		repositories.NewReportRepository(store),
		store,
		fixedClock(),
	)
}

func mustCreateTestItem(t *testing.T, store *database.DB, name, category string) *models.Item {
	t.Helper()
	item, err := newTestItemService(store).CreateItem(CreateItemRequest{Name: name, Category: category})
	if err != nil {
		t.Fatalf("CreateItem %q failed: %v", name, err)
	}
	return item
}

func TestSubmitChecklistAndGetTodaysChecks(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Coffee")
	svc := newTestChecklistService(store)

	err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Alex",
		Items: []ChecklistItemInput{
			{ItemID: milk.ID, Status: models.CheckStatusCritical, IsUrgent: true},
		},
	})
	if err != nil {
		t.Fatalf("SubmitChecklist failed: %v", err)
	}

	checks, err := svc.GetTodaysChecks()
	if err != nil {
		t.Fatalf("GetTodaysChecks failed: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(checks))
	}
	got := checks[0]
	if got.ItemID != milk.ID || got.Status != models.CheckStatusCritical || !got.IsUrgent {
		t.Errorf("check mismatch: %+v", got)
	}
	if got.StaffName != "Alex" || got.ItemName != "Milk" || got.ItemCategory != "Coffee" {
		t.Errorf("enrichment mismatch: %+v", got)
	}
	if got.Date != "2025-03-15" {
		t.Errorf("date should come from the injected clock, got %s", got.Date)
	}
	if got.QuantityNeeded != 0 {
		t.Errorf("quantity_needed must persist as 0, got %d", got.QuantityNeeded)
	}
}

func TestSubmitChecklistReplacesPriorSubmission(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Coffee")
	beans := mustCreateTestItem(t, store, "Beans", "Coffee")
	cups := mustCreateTestItem(t, store, "Cups", "Supplies")
	svc := newTestChecklistService(store)

	// First submission: A covers milk (urgent) and beans.
	if err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Alex",
		Items: []ChecklistItemInput{
			{ItemID: milk.ID, Status: models.CheckStatusCritical, IsUrgent: true},
			{ItemID: beans.ID, Status: models.CheckStatusLow},
		},
	}); err != nil {
		t.Fatalf("submission A failed: %v", err)
	}

	// Second submission: B overlaps on milk with different flags and swaps
	// beans for cups. Everything from A must be gone.
	if err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Sam",
		Items: []ChecklistItemInput{
			{ItemID: milk.ID, Status: models.CheckStatusEnough},
			{ItemID: cups.ID, Status: models.CheckStatusLow, IsUrgent: true},
		},
	}); err != nil {
		t.Fatalf("submission B failed: %v", err)
	}

	checks, err := svc.GetTodaysChecks()
	if err != nil {
		t.Fatalf("GetTodaysChecks failed: %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("expected exactly B's 2 checks, got %d", len(checks))
	}
	byItem := map[int64]models.DailyCheck{}
	for _, c := range checks {
		byItem[c.ItemID] = c
		if c.StaffName != "Sam" {
			t.Errorf("all rows must carry the last submitter, got %q", c.StaffName)
		}
	}
	if got := byItem[milk.ID]; got.Status != models.CheckStatusEnough || got.IsUrgent {
		t.Errorf("milk row must reflect B, not A: %+v", got)
	}
	if _, exists := byItem[beans.ID]; exists {
		t.Error("beans row from A should have been replaced away")
	}
	if _, exists := byItem[cups.ID]; !exists {
		t.Error("cups row from B is missing")
	}
}

func TestSubmitChecklistRollsBackOnMidBatchFailure(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Coffee")
	svc := newTestChecklistService(store)

	if err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Alex",
		Items:     []ChecklistItemInput{{ItemID: milk.ID, Status: models.CheckStatusLow}},
	}); err != nil {
		t.Fatalf("initial submission failed: %v", err)
	}

	// Second row references a missing item: the insert fails mid-batch and
	// the whole day must roll back to the prior submission.
	err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Sam",
		Items: []ChecklistItemInput{
			{ItemID: milk.ID, Status: models.CheckStatusEnough},
			{ItemID: 9999, Status: models.CheckStatusCritical},
		},
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	checks, err := svc.GetTodaysChecks()
	if err != nil {
		t.Fatalf("GetTodaysChecks failed: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("prior day state must be intact, got %d rows", len(checks))
	}
	if checks[0].Status != models.CheckStatusLow || checks[0].StaffName != "Alex" {
		t.Errorf("surviving row must be the original submission: %+v", checks[0])
	}
}

func TestSubmitChecklistValidation(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Coffee")
	svc := newTestChecklistService(store)

	err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Alex",
		Items:     []ChecklistItemInput{{ItemID: milk.ID, Status: "plenty"}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("unknown status: expected ErrValidation, got %v", err)
	}

	err = svc.SubmitChecklist(SubmitChecklistRequest{Date: "15/03/2025", StaffName: "Alex"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("malformed date: expected ErrValidation, got %v", err)
	}
}

func TestSubmitChecklistEmptyClearsDay(t *testing.T) {
	store := setupTestStore(t)
	milk := mustCreateTestItem(t, store, "Milk", "Coffee")
	svc := newTestChecklistService(store)

	if err := svc.SubmitChecklist(SubmitChecklistRequest{
		StaffName: "Alex",
		Items:     []ChecklistItemInput{{ItemID: milk.ID, Status: models.CheckStatusLow}},
	}); err != nil {
		t.Fatalf("initial submission failed: %v", err)
	}
	if err := svc.SubmitChecklist(SubmitChecklistRequest{StaffName: "Sam"}); err != nil {
		t.Fatalf("empty submission failed: %v", err)
	}

	checks, err := svc.GetTodaysChecks()
	if err != nil {
		t.Fatalf("GetTodaysChecks failed: %v", err)
	}
	if len(checks) != 0 {
		t.Errorf("empty replacement should clear the day, got %d rows", len(checks))
	}
}

func TestSubmitReport(t *testing.T) {
	store := setupTestStore(t)
	svc := newTestChecklistService(store)

	report, err := svc.SubmitReport(SubmitReportRequest{
		StaffName:   "Alex",
		ItemsNeeded: []string{"Milk", "Cups"}, // accepted, not persisted
	})
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}
	if report.ID == 0 {
		t.Error("report should have an id after insert")
	}
	if report.Date != "2025-03-15" || report.Status != ReportStatusPending {
		t.Errorf("report defaults mismatch: %+v", report)
	}

	if _, err := svc.SubmitReport(SubmitReportRequest{StaffName: "  "}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank staff name: expected ErrValidation, got %v", err)
	}
}
