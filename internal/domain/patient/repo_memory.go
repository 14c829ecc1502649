package patient

import (
	"context"

	"github.com/ehr/opsboard/internal/platform/memstore"
)

type memoryRepo struct {
	store *memstore.Store[*Patient]
}

func NewMemoryRepo(seed ...*Patient) Repository {
	return &memoryRepo{store: memstore.New(seed...)}
}

func (r *memoryRepo) Create(_ context.Context, p *Patient) error {
	return r.store.Append(p)
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	return r.store.Get(id)
}

func (r *memoryRepo) List(_ context.Context) ([]*Patient, error) {
	return r.store.All(), nil
}
