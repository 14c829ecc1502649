package task

import (
	"errors"
	"fmt"

	"github.com/ehr/opsboard/internal/platform/severity"
)

var ErrTaskNotOnBoard = errors.New("task not on board")

// Card is a task as rendered in a lane.
type Card struct {
	*Task
	PriorityVariant severity.Variant `json:"priority_variant"`
}

type Lane struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
	Cards  []Card `json:"cards"`
}

// Board is the three-lane partition of a task collection. Each task is in
// exactly the lane of its status, and lanes keep collection order.
type Board struct {
	Lanes []Lane `json:"lanes"`
	tasks []*Task
}

// Partition splits tasks into To Do, In Progress and Completed lanes.
// Tasks with a status outside the closed set are not placed.
func Partition(tasks []*Task) Board {
	b := Board{tasks: tasks, Lanes: make([]Lane, len(Statuses))}
	idx := make(map[Status]int, len(Statuses))
	for i, s := range Statuses {
		b.Lanes[i] = Lane{Status: s, Cards: make([]Card, 0)}
		idx[s] = i
	}
	for _, t := range tasks {
		i, ok := idx[t.Status]
		if !ok {
			continue
		}
		b.Lanes[i].Cards = append(b.Lanes[i].Cards, Card{Task: t, PriorityVariant: t.Priority.Variant()})
		b.Lanes[i].Count++
	}
	return b
}

// Lane returns the lane for s.
func (b Board) Lane(s Status) Lane {
	for _, l := range b.Lanes {
		if l.Status == s {
			return l
		}
	}
	return Lane{Status: s}
}

// Move returns the board with task id in status s. The collection order is
// unchanged, so the task lands in its new lane at its collection position.
func (b Board) Move(id string, s Status) (Board, error) {
	if !s.Valid() {
		return b, fmt.Errorf("invalid task status: %q", s)
	}
	moved := make([]*Task, len(b.tasks))
	found := false
	for i, t := range b.tasks {
		if t.ID == id {
			moved[i] = t.withStatus(s)
			found = true
			continue
		}
		moved[i] = t
	}
	if !found {
		return b, ErrTaskNotOnBoard
	}
	return Partition(moved), nil
}
