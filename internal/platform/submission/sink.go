// Package submission models where "add record" requests go. The board's add
// forms historically closed without storing anything; Discard keeps that
// behaviour but makes it visible in logs and in the response receipt.
package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalid marks a record rejected by validation before it reached a sink.
var ErrInvalid = errors.New("invalid record")

// Invalid wraps a validation error so handlers can tell it apart from a
// failing sink.
func Invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// Mode selects the sink wired at startup.
type Mode string

const (
	ModeDiscard Mode = "discard"
	ModePersist Mode = "persist"
)

func (m Mode) Valid() bool {
	return m == ModeDiscard || m == ModePersist
}

// Receipt reports what happened to a submitted record.
type Receipt struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	Persisted bool   `json:"persisted"`
}

// Identifiable is implemented by every record kind that can be submitted.
type Identifiable interface {
	RecordID() string
}

// Sink receives validated new records.
type Sink[T Identifiable] interface {
	Submit(ctx context.Context, record T) (Receipt, error)
}

// Discard accepts records and drops them.
type Discard[T Identifiable] struct {
	Kind   string
	Logger zerolog.Logger
}

func NewDiscard[T Identifiable](kind string, logger zerolog.Logger) *Discard[T] {
	return &Discard[T]{Kind: kind, Logger: logger}
}

func (d *Discard[T]) Submit(_ context.Context, record T) (Receipt, error) {
	d.Logger.Warn().
		Str("kind", d.Kind).
		Str("id", record.RecordID()).
		Msg("record accepted but not persisted (submission sink is discard)")
	return Receipt{Kind: d.Kind, ID: record.RecordID(), Persisted: false}, nil
}

// Func adapts a store function, typically a repository Create, into a Sink.
type Func[T Identifiable] struct {
	Kind  string
	Store func(ctx context.Context, record T) error
}

func (f Func[T]) Submit(ctx context.Context, record T) (Receipt, error) {
	if err := f.Store(ctx, record); err != nil {
		return Receipt{}, fmt.Errorf("store %s: %w", f.Kind, err)
	}
	return Receipt{Kind: f.Kind, ID: record.RecordID(), Persisted: true}, nil
}

// For picks the sink for mode. store is only used in persist mode.
func For[T Identifiable](mode Mode, kind string, logger zerolog.Logger, store func(ctx context.Context, record T) error) Sink[T] {
	if mode == ModePersist {
		return Func[T]{Kind: kind, Store: store}
	}
	return NewDiscard[T](kind, logger)
}

// Observer is told about every record a sink accepted.
type Observer interface {
	SubmissionAccepted(kind string, persisted bool)
}

type observed[T Identifiable] struct {
	next Sink[T]
	obs  Observer
}

// WithObserver reports each successful submission to obs. A nil obs returns
// sink unchanged.
func WithObserver[T Identifiable](sink Sink[T], obs Observer) Sink[T] {
	if obs == nil {
		return sink
	}
	return observed[T]{next: sink, obs: obs}
}

func (o observed[T]) Submit(ctx context.Context, record T) (Receipt, error) {
	r, err := o.next.Submit(ctx, record)
	if err != nil {
		return r, err
	}
	o.obs.SubmissionAccepted(r.Kind, r.Persisted)
	return r, nil
}
