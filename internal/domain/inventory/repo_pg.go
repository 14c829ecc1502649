package inventory

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/db"
)

type itemRepoPG struct{ q db.Querier }

func NewItemRepoPG(q db.Querier) Repository {
	return &itemRepoPG{q: q}
}

const itemCols = `id, name, category, quantity, unit, min_stock, expiry_date, location, supplier`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	var category string
	var expiry time.Time
	if err := row.Scan(&it.ID, &it.Name, &category, &it.Quantity, &it.Unit,
		&it.MinStock, &expiry, &it.Location, &it.Supplier); err != nil {
		return nil, err
	}
	it.Category = Category(category)
	it.ExpiryDate = calendar.DateOf(expiry)
	return &it, nil
}

func (r *itemRepoPG) Create(ctx context.Context, it *Item) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_item (`+itemCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		it.ID, it.Name, string(it.Category), it.Quantity, it.Unit,
		it.MinStock, it.ExpiryDate.Time(), it.Location, it.Supplier)
	return err
}

func (r *itemRepoPG) GetByID(ctx context.Context, id string) (*Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemCols+` FROM inventory_item WHERE id = $1`, id))
	return it, db.NotFound(err)
}

func (r *itemRepoPG) List(ctx context.Context) ([]*Item, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemCols+` FROM inventory_item ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
