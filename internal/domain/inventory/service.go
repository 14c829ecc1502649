package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/search"
	"github.com/ehr/opsboard/internal/platform/submission"
)

// SearchFields are the item fields the inventory search box matches.
var SearchFields = []search.Field[*Item]{
	func(i *Item) string { return i.Name },
	func(i *Item) string { return string(i.Category) },
	func(i *Item) string { return i.Location },
}

type Service struct {
	items     Repository
	sink      submission.Sink[*Item]
	reference calendar.Date
}

func NewService(items Repository, sink submission.Sink[*Item], reference calendar.Date) *Service {
	return &Service{items: items, sink: sink, reference: reference}
}

// Reference is the date every expiry is measured from.
func (s *Service) Reference() calendar.Date { return s.reference }

func (s *Service) ListItems(ctx context.Context, query string) ([]*Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return search.Filter(items, query, SearchFields...), nil
}

// ListRows returns the matching items classified against the reference date.
func (s *Service) ListRows(ctx context.Context, query string) ([]Row, error) {
	items, err := s.ListItems(ctx, query)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = NewRow(*it, s.reference)
	}
	return rows, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list inventory: %w", err)
	}
	return Summarize(items, s.reference), nil
}

// Submit validates a new item, assigns it an id and hands it to the sink.
func (s *Service) Submit(ctx context.Context, it *Item) (submission.Receipt, error) {
	if err := it.Validate(); err != nil {
		return submission.Receipt{}, submission.Invalid(err)
	}
	it.ID = uuid.NewString()
	return s.sink.Submit(ctx, it)
}
