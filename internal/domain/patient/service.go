package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/search"
	"github.com/ehr/opsboard/internal/platform/submission"
)

// SearchFields are matched by the patient search box: name, MRN, department.
var SearchFields = []search.Field[*Patient]{
	func(p *Patient) string { return p.Name },
	func(p *Patient) string { return p.MRN },
	func(p *Patient) string { return p.Department },
}

type Service struct {
	patients  Repository
	sink      submission.Sink[*Patient]
	reference calendar.Date
}

func NewService(patients Repository, sink submission.Sink[*Patient], reference calendar.Date) *Service {
	return &Service{patients: patients, sink: sink, reference: reference}
}

func (s *Service) ListPatients(ctx context.Context, query string) ([]*Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return search.Filter(patients, query, SearchFields...), nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Census(ctx context.Context) (Census, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return Census{}, fmt.Errorf("list patients: %w", err)
	}
	return TakeCensus(patients, s.reference), nil
}

func (s *Service) Submit(ctx context.Context, p *Patient) (submission.Receipt, error) {
	if err := p.Validate(); err != nil {
		return submission.Receipt{}, submission.Invalid(err)
	}
	p.ID = uuid.NewString()
	if p.LastVisit.IsZero() {
		p.LastVisit = s.reference
	}
	return s.sink.Submit(ctx, p)
}
