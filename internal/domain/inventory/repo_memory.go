package inventory

import (
	"context"

	"github.com/ehr/opsboard/internal/platform/memstore"
)

type memoryRepo struct {
	store *memstore.Store[*Item]
}

func NewMemoryRepo(seed ...*Item) Repository {
	return &memoryRepo{store: memstore.New(seed...)}
}

func (r *memoryRepo) Create(_ context.Context, item *Item) error {
	return r.store.Append(item)
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Item, error) {
	return r.store.Get(id)
}

func (r *memoryRepo) List(_ context.Context) ([]*Item, error) {
	return r.store.All(), nil
}
