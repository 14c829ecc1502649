package scheduling

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*Appointment, error)
}
