package task

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehr/opsboard/internal/platform/db"
	"github.com/ehr/opsboard/internal/platform/submission"
)

func newTestService() *Service {
	repo := NewMemoryRepo(testTasks()...)
	return NewService(repo, submission.NewDiscard[*Task]("task", zerolog.Nop()))
}

func TestService_Board_Search(t *testing.T) {
	svc := newTestService()
	b, err := svc.Board(context.Background(), "nurse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := laneIDs(b.Lane(StatusInProgress)); !sameIDs(got, []string{"2", "5"}) {
		t.Errorf("In Progress = %v", got)
	}
	if b.Lane(StatusToDo).Count != 0 {
		t.Errorf("expected empty To Do lane")
	}
}

func TestService_UpdateStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tk, board, err := svc.UpdateStatus(ctx, "1", StatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Status != StatusInProgress {
		t.Errorf("expected In Progress, got %s", tk.Status)
	}
	if got := laneIDs(board.Lane(StatusInProgress)); !sameIDs(got, []string{"1", "2", "5"}) {
		t.Errorf("In Progress = %v", got)
	}

	after, _ := svc.Board(ctx, "")
	if got := laneIDs(after.Lane(StatusToDo)); !sameIDs(got, []string{"3", "6"}) {
		t.Errorf("stored To Do = %v", got)
	}
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.UpdateStatus(context.Background(), "99", StatusCompleted); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, _, err := svc.UpdateStatus(context.Background(), "1", ""); !errors.Is(err, submission.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestService_Submit_Defaults(t *testing.T) {
	svc := newTestService()
	tk := &Task{Title: "Restock crash cart"}
	if _, err := svc.Submit(context.Background(), tk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Status != StatusToDo || tk.Priority != PriorityMedium || tk.ID == "" {
		t.Errorf("unexpected defaults: %+v", tk)
	}
}

type moveRecorder []string

func (m *moveRecorder) TaskMoved(status string) { *m = append(*m, status) }

func TestService_UpdateStatus_ObservesMoves(t *testing.T) {
	svc := newTestService()
	var moves moveRecorder
	svc.ObserveMoves(&moves)

	if _, _, err := svc.UpdateStatus(context.Background(), "1", StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.UpdateStatus(context.Background(), "missing", StatusCompleted); err == nil {
		t.Fatal("expected error for unknown task")
	}
	if len(moves) != 1 || moves[0] != "Completed" {
		t.Errorf("moves = %v, want [Completed]", moves)
	}
}
