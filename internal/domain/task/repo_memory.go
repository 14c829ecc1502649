package task

import (
	"context"
	"sync"

	"github.com/ehr/opsboard/internal/platform/memstore"
)

type memoryRepo struct {
	// mu serializes read-modify-write status changes.
	mu    sync.Mutex
	store *memstore.Store[*Task]
}

func NewMemoryRepo(seed ...*Task) Repository {
	return &memoryRepo{store: memstore.New(seed...)}
}

func (r *memoryRepo) Create(_ context.Context, t *Task) error {
	return r.store.Append(t)
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Task, error) {
	return r.store.Get(id)
}

func (r *memoryRepo) List(_ context.Context) ([]*Task, error) {
	return r.store.All(), nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id string, s Status) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	next := cur.withStatus(s)
	if err := r.store.Replace(next); err != nil {
		return nil, err
	}
	return next, nil
}
