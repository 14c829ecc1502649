package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehr/opsboard/internal/platform/db"
	"github.com/ehr/opsboard/internal/platform/search"
	"github.com/ehr/opsboard/internal/platform/submission"
)

var SearchFields = []search.Field[*Task]{
	func(t *Task) string { return t.Title },
	func(t *Task) string { return t.Assignee },
	func(t *Task) string { return t.Department },
}

// MoveObserver is told about every completed lane move.
type MoveObserver interface {
	TaskMoved(status string)
}

type Service struct {
	tasks Repository
	sink  submission.Sink[*Task]
	moves MoveObserver
}

func NewService(tasks Repository, sink submission.Sink[*Task]) *Service {
	return &Service{tasks: tasks, sink: sink}
}

// ObserveMoves registers o to be told about status changes.
func (s *Service) ObserveMoves(o MoveObserver) { s.moves = o }

func (s *Service) ListTasks(ctx context.Context) ([]*Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Board partitions the tasks matching query into lanes.
func (s *Service) Board(ctx context.Context, query string) (Board, error) {
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return Board{}, err
	}
	return Partition(search.Filter(tasks, query, SearchFields...)), nil
}

// UpdateStatus moves a task to another lane. It returns the stored task and
// the full board after the move.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Task, Board, error) {
	if !status.Valid() {
		return nil, Board{}, submission.Invalid(fmt.Errorf("invalid status: %q", status))
	}
	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return nil, Board{}, err
	}
	board, err := Partition(tasks).Move(id, status)
	if errors.Is(err, ErrTaskNotOnBoard) {
		return nil, Board{}, db.ErrNotFound
	}
	if err != nil {
		return nil, Board{}, err
	}
	t, err := s.tasks.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, Board{}, err
	}
	if s.moves != nil {
		s.moves.TaskMoved(string(status))
	}
	return t, board, nil
}

func (s *Service) Submit(ctx context.Context, t *Task) (submission.Receipt, error) {
	if err := t.Validate(); err != nil {
		return submission.Receipt{}, submission.Invalid(err)
	}
	t.ID = uuid.NewString()
	return s.sink.Submit(ctx, t)
}
