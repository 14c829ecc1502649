package inventory

import (
	"fmt"
	"strings"

	"github.com/ehr/opsboard/internal/platform/calendar"
)

// Category is the closed set of supply categories.
type Category string

const (
	CategoryPPE        Category = "PPE"
	CategorySupplies   Category = "Supplies"
	CategoryMedication Category = "Medication"
	CategoryFluids     Category = "Fluids"
	CategoryHygiene    Category = "Hygiene"
	CategoryEquipment  Category = "Equipment"
)

var categories = []Category{
	CategoryPPE, CategorySupplies, CategoryMedication,
	CategoryFluids, CategoryHygiene, CategoryEquipment,
}

func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (c *Category) UnmarshalText(b []byte) error {
	v := Category(b)
	if !v.Valid() {
		return fmt.Errorf("invalid category: %s", b)
	}
	*c = v
	return nil
}

// Item maps to the inventory_item table.
type Item struct {
	ID         string        `db:"id" json:"id"`
	Name       string        `db:"name" json:"name"`
	Category   Category      `db:"category" json:"category"`
	Quantity   int           `db:"quantity" json:"quantity"`
	Unit       string        `db:"unit" json:"unit"`
	MinStock   int           `db:"min_stock" json:"min_stock"`
	ExpiryDate calendar.Date `db:"expiry_date" json:"expiry_date"`
	Location   string        `db:"location" json:"location"`
	Supplier   string        `db:"supplier" json:"supplier"`
}

func (i *Item) RecordID() string { return i.ID }

// Validate checks a new item before it is submitted.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !i.Category.Valid() {
		return fmt.Errorf("invalid category: %q", i.Category)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if i.MinStock <= 0 {
		return fmt.Errorf("min_stock must be positive")
	}
	if i.ExpiryDate.IsZero() {
		return fmt.Errorf("expiry_date is required")
	}
	return nil
}
