package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
	"stockcheck_backend/internal/repositories"
)

// ReportStatusPending is the initial (and so far only) report status.
const ReportStatusPending = "pending"

// --- DTOs ---

type ChecklistItemInput struct {
	ItemID   int64  `json:"item_id"`
	Status   string `json:"status"`
	IsUrgent bool   `json:"is_urgent"`
}

type SubmitChecklistRequest struct {
	Date      string               `json:"date"` // optional, defaults to today
	StaffName string               `json:"staff_name"`
	Items     []ChecklistItemInput `json:"items"`
}

type SubmitReportRequest struct {
	Date      string `json:"date"` // optional, defaults to today
	StaffName string `json:"staff_name"`
	// ItemsNeeded is accepted for API compatibility but not persisted.
	ItemsNeeded []string `json:"items_needed"`
}

// --- ChecklistService Interface ---
type ChecklistService interface {
	GetTodaysChecks() ([]models.DailyCheck, error)
	SubmitChecklist(req SubmitChecklistRequest) error
	SubmitReport(req SubmitReportRequest) (*models.Report, error)
}

type checklistService struct {
	checkRepo  repositories.CheckRepository
	reportRepo repositories.ReportRepository
	store      *database.DB
	now        Clock
}

// NewChecklistService creates a new instance of ChecklistService.
// A nil clock falls back to wall time.
func NewChecklistService(checkRepo repositories.CheckRepository, reportRepo repositories.ReportRepository, store *database.DB, now Clock) ChecklistService {
	if now == nil {
		now = time.Now
	}
	return &checklistService{
		checkRepo:  checkRepo,
		reportRepo: reportRepo,
		store:      store,
		now:        now,
	}
}

func (s *checklistService) today() string {
	return s.now().Format(dayFormat)
}

// GetTodaysChecks returns the checks recorded for the current calendar day,
// enriched with item display fields. The day boundary is midnight in the
// clock's location.
func (s *checklistService) GetTodaysChecks() ([]models.DailyCheck, error) {
	checks, err := s.checkRepo.ListForDate(s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's checks: %w", err)
	}
	return checks, nil
}

func validCheckStatus(status string) bool {
	switch status {
	case models.CheckStatusEnough, models.CheckStatusLow, models.CheckStatusCritical:
		return true
	}
	return false
}

// SubmitChecklist replaces the day's records in one transaction: every
// existing check for the date is deleted, then one fresh row is inserted per
// submitted item, all stamped with the same staff name and timestamp.
// Re-submitting is last-write-wins; a failure part way through rolls the
// whole day back to its prior state.
func (s *checklistService) SubmitChecklist(req SubmitChecklistRequest) error {
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return err
	}
	for _, item := range req.Items {
		if !validCheckStatus(item.Status) {
			return fmt.Errorf("%w: invalid check status %q for item %d", ErrValidation, item.Status, item.ItemID)
		}
	}

	checkedAt := s.now()

	tx, err := s.store.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin checklist transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.checkRepo.DeleteForDate(tx, date); err != nil {
		return fmt.Errorf("failed to clear checks for %s: %w", date, err)
	}
	for _, item := range req.Items {
		check := &models.DailyCheck{
			Date:           date,
			ItemID:         item.ItemID,
			Status:         item.Status,
			QuantityNeeded: 0, // kept for schema compatibility, never computed
			IsUrgent:       item.IsUrgent,
			CheckedAt:      checkedAt,
			StaffName:      req.StaffName,
		}
		if _, err := s.checkRepo.Insert(tx, check); err != nil {
			if errors.Is(err, repositories.ErrForeignKey) {
				return fmt.Errorf("%w: item ID %d", ErrItemNotFound, item.ItemID)
			}
			return fmt.Errorf("failed to insert check for item %d: %w", item.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checklist for %s: %w", date, err)
	}
	return nil
}

// SubmitReport records that a staff member shared the day's summary.
func (s *checklistService) SubmitReport(req SubmitReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.StaffName) == "" {
		return nil, fmt.Errorf("%w: staff name cannot be empty", ErrValidation)
	}
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Date:        date,
		StaffName:   req.StaffName,
		SubmittedAt: s.now(),
		Status:      ReportStatusPending,
	}
	if _, err := s.reportRepo.Create(s.store.Conn(), report); err != nil {
		return nil, fmt.Errorf("failed to submit report: %w", err)
	}
	return report, nil
}

// resolveDate defaults an empty date to today and rejects malformed input.
func (s *checklistService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if _, err := time.Parse(dayFormat, date); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, date)
	}
	return date, nil
}
