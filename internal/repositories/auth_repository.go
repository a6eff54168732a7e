package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
)

// AuthRepository defines the interface for staff account persistence.
type AuthRepository interface {
	CreateAccount(executor SQLExecutor, account *models.StaffAccount, hashedPassword string) (int64, error)
	FindByUsername(username string) (*models.StaffAccount, string, error) // account, hashed password, error
	FindByID(id int64) (*models.StaffAccount, error)
}

type authRepository struct {
	store *database.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(store *database.DB) AuthRepository {
	return &authRepository{store: store}
}

func (r *authRepository) CreateAccount(executor SQLExecutor, account *models.StaffAccount, hashedPassword string) (int64, error) {
	query := r.store.Rebind(`INSERT INTO staff_accounts (username, password_hash, full_name, is_active, created_at)
	          VALUES (?, ?, ?, ?, ?)
	          RETURNING id`)
	account.IsActive = true
	account.CreatedAt = time.Now().UTC()
	err := executor.QueryRow(query,
		account.Username, hashedPassword, account.FullName, account.IsActive,
		account.CreatedAt.Format(time.RFC3339),
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: username %q already taken", ErrDuplicateKey, account.Username)
		}
		return 0, fmt.Errorf("%w: creating staff account: %v", ErrDatabaseError, err)
	}
	return account.ID, nil
}

func (r *authRepository) FindByUsername(username string) (*models.StaffAccount, string, error) {
	account := &models.StaffAccount{}
	var hashedPassword, createdAt string
	query := r.store.Rebind(`SELECT id, username, password_hash, full_name, is_active, created_at
	          FROM staff_accounts WHERE username = ?`)
	err := r.store.Conn().QueryRow(query, username).
		Scan(&account.ID, &account.Username, &hashedPassword, &account.FullName, &account.IsActive, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding staff account %q: %v", ErrDatabaseError, username, err)
	}
	account.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return account, hashedPassword, nil
}

func (r *authRepository) FindByID(id int64) (*models.StaffAccount, error) {
	account := &models.StaffAccount{}
	var createdAt string
	query := r.store.Rebind(`SELECT id, username, full_name, is_active, created_at
	          FROM staff_accounts WHERE id = ?`)
	err := r.store.Conn().QueryRow(query, id).
		Scan(&account.ID, &account.Username, &account.FullName, &account.IsActive, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding staff account ID %d: %v", ErrDatabaseError, id, err)
	}
	account.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return account, nil
}
