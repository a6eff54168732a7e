package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
)

// ItemRepository defines the interface for stock catalog persistence.
type ItemRepository interface {
	Create(executor SQLExecutor, item *models.Item) (int64, error)
	List() ([]models.Item, error)
	GetByID(id int64) (*models.Item, error)
	Delete(executor SQLExecutor, id int64) error
}

type itemRepository struct {
	store *database.DB
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(store *database.DB) ItemRepository {
	return &itemRepository{store: store}
}

func (r *itemRepository) Create(executor SQLExecutor, item *models.Item) (int64, error) {
	query := r.store.Rebind(`INSERT INTO items (name, category, min_level, is_core, unit)
	          VALUES (?, ?, ?, ?, ?)
	          RETURNING id`)
	err := executor.QueryRow(query, item.Name, item.Category, item.MinLevel, item.IsCore, item.Unit).
		Scan(&item.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *itemRepository) List() ([]models.Item, error) {
	items := []models.Item{}
	query := `SELECT id, name, category, min_level, is_core, unit
	          FROM items
	          ORDER BY category ASC, name ASC`
	rows, err := r.store.Conn().Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.MinLevel, &item.IsCore, &item.Unit); err != nil {
			return nil, fmt.Errorf("%w: scanning item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *itemRepository) GetByID(id int64) (*models.Item, error) {
	item := &models.Item{}
	query := r.store.Rebind(`SELECT id, name, category, min_level, is_core, unit FROM items WHERE id = ?`)
	err := r.store.Conn().QueryRow(query, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.MinLevel, &item.IsCore, &item.Unit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting item by ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

// Delete removes an item; dependent daily_checks and purchases go with it
// via the schema's ON DELETE CASCADE rules. Deleting an id that does not
// exist is not an error: the operation is idempotent by contract.
func (r *itemRepository) Delete(executor SQLExecutor, id int64) error {
	query := r.store.Rebind(`DELETE FROM items WHERE id = ?`)
	if _, err := executor.Exec(query, id); err != nil {
		return fmt.Errorf("%w: deleting item ID %d: %v", ErrDatabaseError, id, err)
	}
	return nil
}
