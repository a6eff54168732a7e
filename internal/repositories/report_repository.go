package repositories

import (
	"fmt"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
)

// ReportRepository defines the interface for report persistence.
// Reports are insert-only; nothing reads them back yet.
type ReportRepository interface {
	Create(executor SQLExecutor, report *models.Report) (int64, error)
}

type reportRepository struct {
	store *database.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(store *database.DB) ReportRepository {
	return &reportRepository{store: store}
}

func (r *reportRepository) Create(executor SQLExecutor, report *models.Report) (int64, error) {
	query := r.store.Rebind(`INSERT INTO reports (date, staff_name, submitted_at, status)
	          VALUES (?, ?, ?, ?)
	          RETURNING id`)
	err := executor.QueryRow(query,
		report.Date, report.StaffName, report.SubmittedAt.Format(time.RFC3339), report.Status,
	).Scan(&report.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating report: %v", ErrDatabaseError, err)
	}
	return report.ID, nil
}
