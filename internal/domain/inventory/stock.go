package inventory

import (
	"errors"
	"math"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

// ErrUndefinedStockLevel is returned when an item has no positive minimum,
// so no stock ratio exists.
var ErrUndefinedStockLevel = errors.New("stock level undefined: min_stock must be positive")

const healthyStockPercent = 150

// StockTier is the stock-health bucket.
type StockTier string

const (
	TierLowStock StockTier = "Low Stock"
	TierAdequate StockTier = "Adequate"
	TierHealthy  StockTier = "Healthy"
)

// StockLevel is the evaluated stock health of one item.
type StockLevel struct {
	Tier     StockTier      `json:"tier"`
	Severity severity.Level `json:"severity"`
	// Percent is quantity/minStock*100, unclamped.
	Percent float64 `json:"percent"`
	// DisplayPercent is Percent clamped to 100 for progress bars. It plays
	// no part in classification.
	DisplayPercent float64 `json:"display_percent"`
}

// EvaluateStock classifies quantity against minStock: below the minimum is
// Low Stock, under 150% Adequate, otherwise Healthy.
func EvaluateStock(quantity, minStock int) (StockLevel, error) {
	if minStock <= 0 {
		return StockLevel{}, ErrUndefinedStockLevel
	}
	pct := float64(quantity) / float64(minStock) * 100

	lvl := StockLevel{Percent: pct, DisplayPercent: math.Min(pct, 100)}
	switch {
	case quantity < minStock:
		lvl.Tier, lvl.Severity = TierLowStock, severity.Critical
	case pct < healthyStockPercent:
		lvl.Tier, lvl.Severity = TierAdequate, severity.Warning
	default:
		lvl.Tier, lvl.Severity = TierHealthy, severity.Normal
	}
	return lvl, nil
}

// RowStatus is the single status badge of an inventory row.
type RowStatus string

const (
	RowLowStock RowStatus = "Low Stock"
	RowExpired  RowStatus = "Expired"
	RowCritical RowStatus = "Critical"
	RowNormal   RowStatus = "Normal"
)

func (s RowStatus) Severity() severity.Level {
	if s == RowNormal {
		return severity.Normal
	}
	return severity.Critical
}

// ClassifyRow applies the precedence Low Stock > Expired > Critical > Normal,
// so a shortage is reported even when the item is also near expiry.
func ClassifyRow(item Item, reference calendar.Date) RowStatus {
	if item.Quantity < item.MinStock {
		return RowLowStock
	}
	days := DaysUntilExpiry(item.ExpiryDate, reference)
	switch {
	case days < 0:
		return RowExpired
	case days <= criticalExpiryDays:
		return RowCritical
	default:
		return RowNormal
	}
}

// Row is an item together with everything derived from it.
type Row struct {
	Item
	// Stock is nil when the stock level is undefined (min_stock <= 0).
	Stock         *StockLevel      `json:"stock"`
	Expiry        ExpiryStatus     `json:"expiry"`
	Status        RowStatus        `json:"status"`
	StatusVariant severity.Variant `json:"status_variant"`
}

func NewRow(item Item, reference calendar.Date) Row {
	row := Row{
		Item:   item,
		Expiry: ClassifyExpiry(item.ExpiryDate, reference),
		Status: ClassifyRow(item, reference),
	}
	if lvl, err := EvaluateStock(item.Quantity, item.MinStock); err == nil {
		row.Stock = &lvl
	}
	row.StatusVariant = row.Status.Severity().Variant()
	return row
}

// Summary holds the counters of the inventory header cards.
type Summary struct {
	TotalItems   int `json:"total_items"`
	LowStock     int `json:"low_stock"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// Summarize counts low-stock, expiring (0..90 days) and expired items.
func Summarize(items []*Item, reference calendar.Date) Summary {
	s := Summary{TotalItems: len(items)}
	for _, it := range items {
		if it.Quantity < it.MinStock {
			s.LowStock++
		}
		days := DaysUntilExpiry(it.ExpiryDate, reference)
		switch {
		case days < 0:
			s.Expired++
		case days <= warningExpiryDays:
			s.ExpiringSoon++
		}
	}
	return s
}
