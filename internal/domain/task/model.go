package task

import (
	"fmt"
	"strings"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Elevated reports whether the priority counts as high on the dashboard.
func (p Priority) Elevated() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

func (p Priority) Variant() severity.Variant {
	switch p {
	case PriorityUrgent:
		return severity.VariantDestructive
	case PriorityHigh:
		return severity.VariantDefault
	case PriorityMedium:
		return severity.VariantSecondary
	default:
		return severity.VariantOutline
	}
}

func (p *Priority) UnmarshalText(b []byte) error {
	v := Priority(b)
	if !v.Valid() {
		return fmt.Errorf("invalid priority: %s", b)
	}
	*p = v
	return nil
}

type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses is the lane order of the board.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Valid() {
		return fmt.Errorf("invalid task status: %s", b)
	}
	*s = v
	return nil
}

// Task maps to the task table.
type Task struct {
	ID          string        `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Description string        `db:"description" json:"description"`
	Assignee    string        `db:"assignee" json:"assignee"`
	Department  string        `db:"department" json:"department"`
	Priority    Priority      `db:"priority" json:"priority"`
	Status      Status        `db:"status" json:"status"`
	DueDate     calendar.Date `db:"due_date" json:"due_date"`
}

func (t *Task) RecordID() string { return t.ID }

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("invalid priority: %q", t.Priority)
	}
	if t.Status == "" {
		t.Status = StatusToDo
	}
	if !t.Status.Valid() {
		return fmt.Errorf("invalid status: %q", t.Status)
	}
	return nil
}

// withStatus returns a copy of t in status s. Stored tasks are never
// mutated in place.
func (t *Task) withStatus(s Status) *Task {
	cp := *t
	cp.Status = s
	return &cp
}
