package task

import "context"

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
	// UpdateStatus is the only in-place change a task supports.
	UpdateStatus(ctx context.Context, id string, s Status) (*Task, error)
}
