package repositories

import (
	"fmt"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"

	"github.com/shopspring/decimal"
)

// PurchaseRepository defines the interface for purchase persistence.
// Purchases are append-only: no update or delete path exists.
type PurchaseRepository interface {
	Create(executor SQLExecutor, purchase *models.Purchase) (int64, error)
	List() ([]models.Purchase, error)
	ListSince(date string) ([]models.Purchase, error)
}

type purchaseRepository struct {
	store *database.DB
}

// NewPurchaseRepository creates a new instance of PurchaseRepository.
func NewPurchaseRepository(store *database.DB) PurchaseRepository {
	return &purchaseRepository{store: store}
}

func (r *purchaseRepository) Create(executor SQLExecutor, purchase *models.Purchase) (int64, error) {
	query := r.store.Rebind(`INSERT INTO purchases (date, item_id, quantity, cost, store, purchased_at)
	          VALUES (?, ?, ?, ?, ?, ?)
	          RETURNING id`)
	err := executor.QueryRow(query,
		purchase.Date, purchase.ItemID, purchase.Quantity,
		purchase.Cost.String(), purchase.Store, purchase.PurchasedAt.Format(time.RFC3339),
	).Scan(&purchase.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: item ID %d: %v", ErrForeignKey, purchase.ItemID, err)
		}
		return 0, fmt.Errorf("%w: creating purchase: %v", ErrDatabaseError, err)
	}
	return purchase.ID, nil
}

// List returns every purchase, most recent date first, enriched with the
// item's name.
func (r *purchaseRepository) List() ([]models.Purchase, error) {
	query := `SELECT p.id, p.date, p.item_id, p.quantity, p.cost, p.store, p.purchased_at, i.name
	          FROM purchases p
	          JOIN items i ON p.item_id = i.id
	          ORDER BY p.date DESC, p.id DESC`
	return r.queryPurchases(query)
}

// ListSince returns purchases with date >= the given YYYY-MM-DD day.
// ISO date strings compare lexicographically in calendar order.
func (r *purchaseRepository) ListSince(date string) ([]models.Purchase, error) {
	query := r.store.Rebind(`SELECT p.id, p.date, p.item_id, p.quantity, p.cost, p.store, p.purchased_at, i.name
	          FROM purchases p
	          JOIN items i ON p.item_id = i.id
	          WHERE p.date >= ?
	          ORDER BY p.date DESC, p.id DESC`)
	return r.queryPurchases(query, date)
}

func (r *purchaseRepository) queryPurchases(query string, args ...interface{}) ([]models.Purchase, error) {
	purchases := []models.Purchase{}
	rows, err := r.store.Conn().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing purchases: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var purchase models.Purchase
		var cost, purchasedAt string
		if err := rows.Scan(
			&purchase.ID, &purchase.Date, &purchase.ItemID, &purchase.Quantity,
			&cost, &purchase.Store, &purchasedAt, &purchase.ItemName,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning purchase: %v", ErrDatabaseError, err)
		}
		purchase.Cost, err = decimal.NewFromString(cost)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing cost %q for purchase ID %d: %v", ErrDatabaseError, cost, purchase.ID, err)
		}
		purchase.PurchasedAt, _ = time.Parse(time.RFC3339, purchasedAt)
		purchases = append(purchases, purchase)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating purchases: %v", ErrDatabaseError, err)
	}
	return purchases, nil
}
