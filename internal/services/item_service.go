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

// --- Custom Service Errors ---
var (
	// ErrValidation covers missing or malformed required fields.
	ErrValidation = errors.New("validation error")

	// ErrItemNotFound covers writes that reference a catalog item which
	// does not exist.
	ErrItemNotFound = errors.New("referenced item not found")
)

// Clock supplies the current time. "Today" and the weekly window are
// derived from it, so tests inject a fixed clock instead of wall time.
type Clock func() time.Time

// dayFormat is the calendar-day form used throughout the schema.
const dayFormat = "2006-01-02"

// DefaultUnit is applied when an item is created without a unit.
const DefaultUnit = "units"

// --- DTOs ---

type CreateItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	MinLevel int    `json:"min_level"`
	IsCore   bool   `json:"is_core"`
	Unit     string `json:"unit"`
}

// --- ItemService Interface ---
type ItemService interface {
	ListItems() ([]models.Item, error)
	CreateItem(req CreateItemRequest) (*models.Item, error)
	DeleteItem(id int64) error
}

type itemService struct {
	itemRepo repositories.ItemRepository
	store    *database.DB
}

// NewItemService creates a new instance of ItemService.
func NewItemService(repo repositories.ItemRepository, store *database.DB) ItemService {
	return &itemService{itemRepo: repo, store: store}
}

func (s *itemService) ListItems() ([]models.Item, error) {
	items, err := s.itemRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *itemService) CreateItem(req CreateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: item category cannot be empty", ErrValidation)
	}
	unit := req.Unit
	if unit == "" {
		unit = DefaultUnit
	}

	item := &models.Item{
		Name:     req.Name,
		Category: req.Category,
		MinLevel: req.MinLevel,
		IsCore:   req.IsCore,
		Unit:     unit,
	}
	if _, err := s.itemRepo.Create(s.store.Conn(), item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item and, through the cascade rules, every daily
// check and purchase that references it. Unknown ids succeed silently.
func (s *itemService) DeleteItem(id int64) error {
	if err := s.itemRepo.Delete(s.store.Conn(), id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
