package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one entry in the stock catalog managed via settings.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	MinLevel int    `json:"min_level"`
	IsCore   bool   `json:"is_core"`
	Unit     string `json:"unit"`
}

// Valid DailyCheck statuses.
const (
	CheckStatusEnough   = "enough"
	CheckStatusLow      = "low"
	CheckStatusCritical = "critical"
)

// DailyCheck records one item's stock status for one calendar day.
// A day's checks are replaced wholesale on every checklist submission,
// so there is at most one row per (date, item_id).
type DailyCheck struct {
	ID             int64     `json:"id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	ItemID         int64     `json:"item_id"`
	Status         string    `json:"status"`
	QuantityNeeded int       `json:"quantity_needed"`
	IsUrgent       bool      `json:"is_urgent"`
	CheckedAt      time.Time `json:"checked_at"`
	StaffName      string    `json:"staff_name"`

	// Joined from items for display.
	ItemName     string `json:"name"`
	ItemCategory string `json:"category"`
	ItemIsCore   bool   `json:"is_core"`
	ItemUnit     string `json:"unit"`
}

// Purchase is an append-only record of a stock purchase.
type Purchase struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD, day of purchase
	ItemID      int64           `json:"item_id"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
	Store       string          `json:"store"`
	PurchasedAt time.Time       `json:"purchased_at"`

	// Joined from items for display.
	ItemName string `json:"name"`
}

// Report marks that a staff member shared the day's summary. Insert-only.
type Report struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	StaffName   string    `json:"staff_name"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}

// WeeklyItemStat aggregates purchases of a single item over the trailing
// 7-day window. Keyed by item id so two items sharing a name stay separate.
type WeeklyItemStat struct {
	ItemID        int64           `json:"item_id"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// WeeklyStoreStat aggregates spend per store string. Grouping is
// case-sensitive: "coles" and "Coles" are distinct stores.
type WeeklyStoreStat struct {
	Store     string          `json:"store"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// WeeklyStats is the derived weekly spending view. Not stored.
type WeeklyStats struct {
	Items  []WeeklyItemStat  `json:"items"`
	Stores []WeeklyStoreStat `json:"stores"`
}
