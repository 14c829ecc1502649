package inventory

import (
	"errors"
	"testing"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

func TestEvaluateStock(t *testing.T) {
	tests := []struct {
		name             string
		quantity, min    int
		tier             StockTier
		severity         severity.Level
		percent, display float64
	}{
		{"below minimum", 120, 150, TierLowStock, severity.Critical, 80, 80},
		{"just below", 95, 100, TierLowStock, severity.Critical, 95, 95},
		{"at minimum", 100, 100, TierAdequate, severity.Warning, 100, 100},
		{"adequate", 180, 150, TierAdequate, severity.Warning, 120, 100},
		{"healthy boundary", 300, 200, TierHealthy, severity.Normal, 150, 100},
		{"healthy", 450, 200, TierHealthy, severity.Normal, 225, 100},
		{"empty", 0, 10, TierLowStock, severity.Critical, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := EvaluateStock(tt.quantity, tt.min)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lvl.Tier != tt.tier {
				t.Errorf("tier = %s, want %s", lvl.Tier, tt.tier)
			}
			if lvl.Severity != tt.severity {
				t.Errorf("severity = %s, want %s", lvl.Severity, tt.severity)
			}
			if lvl.Percent != tt.percent {
				t.Errorf("percent = %v, want %v", lvl.Percent, tt.percent)
			}
			if lvl.DisplayPercent != tt.display {
				t.Errorf("display = %v, want %v", lvl.DisplayPercent, tt.display)
			}
		})
	}
}

func TestEvaluateStock_Undefined(t *testing.T) {
	for _, min := range []int{0, -1} {
		if _, err := EvaluateStock(10, min); !errors.Is(err, ErrUndefinedStockLevel) {
			t.Errorf("min %d: expected ErrUndefinedStockLevel, got %v", min, err)
		}
	}
}

func TestEvaluateStock_LowStockIffBelowMinimum(t *testing.T) {
	for q := 0; q <= 400; q += 7 {
		lvl, _ := EvaluateStock(q, 200)
		if (lvl.Tier == TierLowStock) != (q < 200) {
			t.Errorf("quantity %d: tier %s", q, lvl.Tier)
		}
	}
}

func item(qty, min int, expiry string) Item {
	return Item{ID: "x", Name: "x", Category: CategorySupplies, Quantity: qty, MinStock: min,
		ExpiryDate: calendar.MustParseDate(expiry)}
}

func TestClassifyRow_Precedence(t *testing.T) {
	tests := []struct {
		name string
		it   Item
		want RowStatus
	}{
		{"low stock beats expired", item(10, 100, "2024-01-01"), RowLowStock},
		{"low stock beats critical", item(10, 100, "2024-10-25"), RowLowStock},
		{"expired", item(500, 100, "2024-10-01"), RowExpired},
		{"critical", item(500, 100, "2024-11-17"), RowCritical},
		{"warning expiry is still normal", item(500, 100, "2024-11-30"), RowNormal},
		{"normal", item(500, 100, "2026-01-10"), RowNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRow(tt.it, testReference); got != tt.want {
				t.Errorf("ClassifyRow = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewRow(t *testing.T) {
	row := NewRow(item(120, 150, "2025-06-20"), testReference)
	if row.Status != RowLowStock || row.StatusVariant != severity.VariantDestructive {
		t.Errorf("unexpected status: %s/%s", row.Status, row.StatusVariant)
	}
	if row.Stock == nil || row.Stock.Tier != TierLowStock {
		t.Errorf("unexpected stock: %+v", row.Stock)
	}
	if row.Expiry.Severity != severity.Normal {
		t.Errorf("unexpected expiry: %+v", row.Expiry)
	}

	undefined := NewRow(item(5, 0, "2025-06-20"), testReference)
	if undefined.Stock != nil {
		t.Errorf("expected nil stock for min_stock 0, got %+v", undefined.Stock)
	}
	if undefined.Status != RowNormal {
		t.Errorf("expected Normal, got %s", undefined.Status)
	}
	if normal := NewRow(item(450, 200, "2025-03-15"), testReference); normal.StatusVariant != severity.VariantSecondary {
		t.Errorf("expected secondary variant, got %s", normal.StatusVariant)
	}
}

func TestSummarize(t *testing.T) {
	items := []*Item{
		{Quantity: 450, MinStock: 200, ExpiryDate: calendar.MustParseDate("2025-03-15")},
		{Quantity: 120, MinStock: 150, ExpiryDate: calendar.MustParseDate("2025-06-20")},
		{Quantity: 380, MinStock: 200, ExpiryDate: calendar.MustParseDate("2024-11-30")},
		{Quantity: 95, MinStock: 100, ExpiryDate: calendar.MustParseDate("2024-12-20")},
		{Quantity: 50, MinStock: 10, ExpiryDate: calendar.MustParseDate("2024-10-01")},
		{Quantity: 50, MinStock: 10, ExpiryDate: calendar.MustParseDate("2024-10-18")},
	}
	got := Summarize(items, testReference)
	want := Summary{TotalItems: 6, LowStock: 2, ExpiringSoon: 3, Expired: 1}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}
