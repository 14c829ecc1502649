package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	// List returns every item in insertion order.
	List(ctx context.Context) ([]*Item, error)
}
