package scheduling

import (
	"context"

	"github.com/ehr/opsboard/internal/platform/memstore"
)

type memoryRepo struct {
	store *memstore.Store[*Appointment]
}

func NewMemoryRepo(seed ...*Appointment) Repository {
	return &memoryRepo{store: memstore.New(seed...)}
}

func (r *memoryRepo) Create(_ context.Context, a *Appointment) error {
	return r.store.Append(a)
}

func (r *memoryRepo) List(_ context.Context) ([]*Appointment, error) {
	return r.store.All(), nil
}
