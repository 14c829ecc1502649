package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/db"
)

var itemColumns = []string{"id", "name", "category", "quantity", "unit", "min_stock", "expiry_date", "location", "supplier"}

func TestItemRepoPG_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, category, .* FROM inventory_item ORDER BY seq`).
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow("1", "Surgical Gloves", "PPE", 450, "boxes", 200,
				time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "Storage Room A", "MedSupply Co").
			AddRow("2", "N95 Masks", "PPE", 120, "boxes", 150,
				time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "Storage Room A", "SafetyFirst Inc"))

	items, err := NewItemRepoPG(mock).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Category != CategoryPPE {
		t.Errorf("Category = %q, want PPE", items[0].Category)
	}
	if !items[1].ExpiryDate.Equal(calendar.MustParseDate("2025-06-20")) {
		t.Errorf("ExpiryDate = %s, want 2025-06-20", items[1].ExpiryDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestItemRepoPG_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM inventory_item WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = NewItemRepoPG(mock).GetByID(context.Background(), "missing")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected db.ErrNotFound, got %v", err)
	}
}

func TestItemRepoPG_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	it := &Item{ID: "abc", Name: "Saline", Category: CategoryFluids, Quantity: 95, Unit: "bags",
		MinStock: 100, ExpiryDate: calendar.MustParseDate("2024-12-20"), Location: "Emergency Room", Supplier: "FluidTech"}

	mock.ExpectExec(`INSERT INTO inventory_item`).
		WithArgs("abc", "Saline", "Fluids", 95, "bags", 100, it.ExpiryDate.Time(), "Emergency Room", "FluidTech").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := NewItemRepoPG(mock).Create(context.Background(), it); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
