package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/submission"
)

type Service struct {
	appts Repository
	sink  submission.Sink[*Appointment]
	// defaultDay is the day shown when a request names none.
	defaultDay calendar.Date
}

func NewService(appts Repository, sink submission.Sink[*Appointment], defaultDay calendar.Date) *Service {
	return &Service{appts: appts, sink: sink, defaultDay: defaultDay}
}

func (s *Service) DefaultDay() calendar.Date { return s.defaultDay }

// Day is the appointment list of one day with its header counters.
type Day struct {
	Date         calendar.Date `json:"date"`
	Counts       StatusCounts  `json:"counts"`
	Appointments []Card        `json:"appointments"`
}

func (s *Service) dayAppointments(ctx context.Context, day calendar.Date) ([]*Appointment, error) {
	all, err := s.appts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return ForDay(all, day), nil
}

func (s *Service) Day(ctx context.Context, day calendar.Date) (Day, error) {
	appts, err := s.dayAppointments(ctx, day)
	if err != nil {
		return Day{}, err
	}
	cards := make([]Card, len(appts))
	for i, a := range appts {
		cards[i] = NewCard(a)
	}
	return Day{Date: day, Counts: CountByStatus(appts), Appointments: cards}, nil
}

func (s *Service) Timeline(ctx context.Context, day calendar.Date) (Timeline, error) {
	appts, err := s.dayAppointments(ctx, day)
	if err != nil {
		return Timeline{}, err
	}
	return BuildTimeline(day, appts), nil
}

func (s *Service) Submit(ctx context.Context, a *Appointment) (submission.Receipt, error) {
	if err := a.Validate(); err != nil {
		return submission.Receipt{}, submission.Invalid(err)
	}
	a.ID = uuid.NewString()
	return s.sink.Submit(ctx, a)
}
