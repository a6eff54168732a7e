package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
	"stockcheck_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// weeklyWindowDays is the span of the trailing spending window: today plus
// the six days before it, both endpoints inclusive.
const weeklyWindowDays = 7

// --- DTOs ---

type RecordPurchaseRequest struct {
	ItemID   int64           `json:"item_id"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Store    string          `json:"store"`
	Date     string          `json:"date"` // optional, defaults to today
}

// --- PurchaseService Interface ---
type PurchaseService interface {
	ListPurchases() ([]models.Purchase, error)
	RecordPurchase(req RecordPurchaseRequest) (*models.Purchase, error)
	WeeklyStats() (*models.WeeklyStats, error)
}

type purchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	itemRepo     repositories.ItemRepository
	store        *database.DB
	now          Clock
}

// NewPurchaseService creates a new instance of PurchaseService.
// A nil clock falls back to wall time.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, itemRepo repositories.ItemRepository, store *database.DB, now Clock) PurchaseService {
	if now == nil {
		now = time.Now
	}
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
		store:        store,
		now:          now,
	}
}

func (s *purchaseService) ListPurchases() ([]models.Purchase, error) {
	purchases, err := s.purchaseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// RecordPurchase appends a purchase row. The referenced item must exist;
// quantity and cost are trusted as already-parsed numeric input.
func (s *purchaseService) RecordPurchase(req RecordPurchaseRequest) (*models.Purchase, error) {
	if req.ItemID == 0 {
		return nil, fmt.Errorf("%w: item_id is required", ErrValidation)
	}
	date := req.Date
	if date == "" {
		date = s.now().Format(dayFormat)
	} else if _, err := time.Parse(dayFormat, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, date)
	}

	item, err := s.itemRepo.GetByID(req.ItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: item ID %d", ErrItemNotFound, req.ItemID)
		}
		return nil, fmt.Errorf("failed to resolve purchase item: %w", err)
	}

	purchase := &models.Purchase{
		Date:        date,
		ItemID:      req.ItemID,
		Quantity:    req.Quantity,
		Cost:        req.Cost,
		Store:       req.Store,
		PurchasedAt: s.now(),
		ItemName:    item.Name,
	}
	if _, err := s.purchaseRepo.Create(s.store.Conn(), purchase); err != nil {
		// The existence check above can race a concurrent delete.
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, fmt.Errorf("%w: item ID %d", ErrItemNotFound, req.ItemID)
		}
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	return purchase, nil
}

// WeeklyStats aggregates purchases over the inclusive trailing 7-day window
// ending today. Item totals are keyed by item id so distinct items sharing a
// name never merge; store totals are keyed by the literal store string,
// case-sensitively. Sums use exact decimal arithmetic throughout.
func (s *purchaseService) WeeklyStats() (*models.WeeklyStats, error) {
	cutoff := s.now().AddDate(0, 0, -(weeklyWindowDays - 1)).Format(dayFormat)
	purchases, err := s.purchaseRepo.ListSince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases for weekly stats: %w", err)
	}

	itemTotals := map[int64]*models.WeeklyItemStat{}
	storeTotals := map[string]decimal.Decimal{}
	for _, p := range purchases {
		stat, ok := itemTotals[p.ItemID]
		if !ok {
			stat = &models.WeeklyItemStat{ItemID: p.ItemID, Name: p.ItemName, TotalCost: decimal.Zero}
			itemTotals[p.ItemID] = stat
		}
		stat.TotalQuantity += p.Quantity
		stat.TotalCost = stat.TotalCost.Add(p.Cost)

		total, ok := storeTotals[p.Store]
		if !ok {
			total = decimal.Zero
		}
		storeTotals[p.Store] = total.Add(p.Cost)
	}

	stats := &models.WeeklyStats{
		Items:  make([]models.WeeklyItemStat, 0, len(itemTotals)),
		Stores: make([]models.WeeklyStoreStat, 0, len(storeTotals)),
	}
	for _, stat := range itemTotals {
		stats.Items = append(stats.Items, *stat)
	}
	for store, total := range storeTotals {
		stats.Stores = append(stats.Stores, models.WeeklyStoreStat{Store: store, TotalCost: total})
	}

	// Biggest spend first; names break ties so the order is stable.
	sort.Slice(stats.Items, func(i, j int) bool {
		if !stats.Items[i].TotalCost.Equal(stats.Items[j].TotalCost) {
			return stats.Items[i].TotalCost.GreaterThan(stats.Items[j].TotalCost)
		}
		if stats.Items[i].Name != stats.Items[j].Name {
			return stats.Items[i].Name < stats.Items[j].Name
		}
		return stats.Items[i].ItemID < stats.Items[j].ItemID
	})
	sort.Slice(stats.Stores, func(i, j int) bool {
		if !stats.Stores[i].TotalCost.Equal(stats.Stores[j].TotalCost) {
			return stats.Stores[i].TotalCost.GreaterThan(stats.Stores[j].TotalCost)
		}
		return stats.Stores[i].Store < stats.Stores[j].Store
	})
	return stats, nil
}
