package repositories

import (
	"fmt"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
)

// CheckRepository defines the interface for daily check persistence.
// Rows for one date are only ever written as a full batch (delete all,
// reinsert), so there is no single-row update path.
type CheckRepository interface {
	ListForDate(date string) ([]models.DailyCheck, error)
	DeleteForDate(executor SQLExecutor, date string) error
	Insert(executor SQLExecutor, check *models.DailyCheck) (int64, error)
}

type checkRepository struct {
	store *database.DB
}

// NewCheckRepository creates a new instance of CheckRepository.
func NewCheckRepository(store *database.DB) CheckRepository {
	return &checkRepository{store: store}
}

// ListForDate returns the checks recorded for one calendar day, enriched
// with the referenced item's display fields, in catalog order.
func (r *checkRepository) ListForDate(date string) ([]models.DailyCheck, error) {
	checks := []models.DailyCheck{}
	query := r.store.Rebind(`SELECT dc.id, dc.date, dc.item_id, dc.status, dc.quantity_needed,
	                 dc.is_urgent, dc.checked_at, dc.staff_name,
	                 i.name, i.category, i.is_core, i.unit
	          FROM daily_checks dc
	          JOIN items i ON dc.item_id = i.id
	          WHERE dc.date = ?
	          ORDER BY i.category ASC, i.name ASC`)
	rows, err := r.store.Conn().Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: listing checks for %s: %v", ErrDatabaseError, date, err)
	}
	defer rows.Close()

	for rows.Next() {
		var check models.DailyCheck
		var checkedAt string
		if err := rows.Scan(
			&check.ID, &check.Date, &check.ItemID, &check.Status, &check.QuantityNeeded,
			&check.IsUrgent, &checkedAt, &check.StaffName,
			&check.ItemName, &check.ItemCategory, &check.ItemIsCore, &check.ItemUnit,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning daily check: %v", ErrDatabaseError, err)
		}
		check.CheckedAt, _ = time.Parse(time.RFC3339, checkedAt)
		checks = append(checks, check)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating daily checks: %v", ErrDatabaseError, err)
	}
	return checks, nil
}

func (r *checkRepository) DeleteForDate(executor SQLExecutor, date string) error {
	query := r.store.Rebind(`DELETE FROM daily_checks WHERE date = ?`)
	if _, err := executor.Exec(query, date); err != nil {
		return fmt.Errorf("%w: deleting checks for %s: %v", ErrDatabaseError, date, err)
	}
	return nil
}

func (r *checkRepository) Insert(executor SQLExecutor, check *models.DailyCheck) (int64, error) {
	query := r.store.Rebind(`INSERT INTO daily_checks (date, item_id, status, quantity_needed, is_urgent, checked_at, staff_name)
	          VALUES (?, ?, ?, ?, ?, ?, ?)
	          RETURNING id`)
	err := executor.QueryRow(query,
		check.Date, check.ItemID, check.Status, check.QuantityNeeded,
		check.IsUrgent, check.CheckedAt.Format(time.RFC3339), check.StaffName,
	).Scan(&check.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: item ID %d: %v", ErrForeignKey, check.ItemID, err)
		}
		return 0, fmt.Errorf("%w: inserting daily check: %v", ErrDatabaseError, err)
	}
	return check.ID, nil
}
