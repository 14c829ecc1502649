// Package dashboard computes the home page quick stats from the live
// collections.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/ehr/opsboard/internal/domain/chat"
	"github.com/ehr/opsboard/internal/domain/inventory"
	"github.com/ehr/opsboard/internal/domain/patient"
	"github.com/ehr/opsboard/internal/domain/scheduling"
	"github.com/ehr/opsboard/internal/domain/task"
	"github.com/ehr/opsboard/internal/platform/calendar"
)

// upcomingLimit caps the schedule preview on the home page.
const upcomingLimit = 5

type PatientLister interface {
	ListPatients(ctx context.Context, query string) ([]*patient.Patient, error)
}

type ScheduleReader interface {
	DefaultDay() calendar.Date
	Day(ctx context.Context, day calendar.Date) (scheduling.Day, error)
}

type TaskLister interface {
	ListTasks(ctx context.Context) ([]*task.Task, error)
}

type InventoryReader interface {
	ListRows(ctx context.Context, query string) ([]inventory.Row, error)
}

type ChannelLister interface {
	ListChannels(ctx context.Context, query string) ([]*chat.Channel, error)
}

type PatientStats struct {
	Total int `json:"total"`
}

type AppointmentStats struct {
	Date    calendar.Date `json:"date"`
	Today   int           `json:"today"`
	Pending int           `json:"pending"`
}

type TaskStats struct {
	Active int `json:"active"`
	// Elevated counts active High and Urgent tasks.
	Elevated int `json:"elevated"`
}

type InventoryStats struct {
	LowStock int `json:"low_stock"`
	// Critical counts rows whose badge is Expired or Critical.
	Critical int `json:"critical"`
}

// MessageStats backs the unread messages card.
type MessageStats struct {
	Unread int `json:"unread"`
	// Channels are those with unread messages, in channel order.
	Channels []*chat.Channel `json:"channels"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Patients   int    `json:"patients"`
}

type Summary struct {
	Patients     PatientStats      `json:"patients"`
	Appointments AppointmentStats  `json:"appointments"`
	Tasks        TaskStats         `json:"tasks"`
	Inventory    InventoryStats    `json:"inventory"`
	Messages     MessageStats      `json:"messages"`
	Departments  []DepartmentCount `json:"departments"`
	// Upcoming lists the day's next appointments that are neither
	// completed nor cancelled, in time order.
	Upcoming []scheduling.Card `json:"upcoming"`
}

type Service struct {
	patients  PatientLister
	schedule  ScheduleReader
	tasks     TaskLister
	inventory InventoryReader
	channels  ChannelLister
}

func NewService(patients PatientLister, schedule ScheduleReader, tasks TaskLister, inv InventoryReader, channels ChannelLister) *Service {
	return &Service{patients: patients, schedule: schedule, tasks: tasks, inventory: inv, channels: channels}
}

func (s *Service) DefaultDay() calendar.Date { return s.schedule.DefaultDay() }

// Summary builds the home page stats with day as "today".
func (s *Service) Summary(ctx context.Context, day calendar.Date) (Summary, error) {
	patients, err := s.patients.ListPatients(ctx, "")
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard patients: %w", err)
	}
	schedule, err := s.schedule.Day(ctx, day)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard schedule: %w", err)
	}
	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard tasks: %w", err)
	}
	rows, err := s.inventory.ListRows(ctx, "")
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard inventory: %w", err)
	}
	channels, err := s.channels.ListChannels(ctx, "")
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard channels: %w", err)
	}

	return Summary{
		Patients: PatientStats{Total: len(patients)},
		Appointments: AppointmentStats{
			Date:    schedule.Date,
			Today:   schedule.Counts.Total,
			Pending: schedule.Counts.Pending,
		},
		Tasks:       countTasks(tasks),
		Inventory:   countInventory(rows),
		Messages:    unread(channels),
		Departments: byDepartment(patients),
		Upcoming:    upcoming(schedule.Appointments),
	}, nil
}

// countTasks reads the open lanes of the task board.
func countTasks(tasks []*task.Task) TaskStats {
	board := task.Partition(tasks)
	var st TaskStats
	for _, s := range []task.Status{task.StatusToDo, task.StatusInProgress} {
		lane := board.Lane(s)
		st.Active += lane.Count
		for _, c := range lane.Cards {
			if c.Priority.Elevated() {
				st.Elevated++
			}
		}
	}
	return st
}

func countInventory(rows []inventory.Row) InventoryStats {
	var st InventoryStats
	for _, r := range rows {
		switch r.Status {
		case inventory.RowLowStock:
			st.LowStock++
		case inventory.RowExpired, inventory.RowCritical:
			st.Critical++
		}
	}
	return st
}

func unread(channels []*chat.Channel) MessageStats {
	st := MessageStats{Channels: make([]*chat.Channel, 0)}
	for _, c := range channels {
		if c.Unread <= 0 {
			continue
		}
		st.Unread += c.Unread
		st.Channels = append(st.Channels, c)
	}
	return st
}

func byDepartment(patients []*patient.Patient) []DepartmentCount {
	counts := make(map[string]int)
	for _, p := range patients {
		counts[p.Department]++
	}
	out := make([]DepartmentCount, 0, len(counts))
	for dept, n := range counts {
		out = append(out, DepartmentCount{Department: dept, Patients: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}

func upcoming(cards []scheduling.Card) []scheduling.Card {
	out := make([]scheduling.Card, 0, upcomingLimit)
	for _, c := range cards {
		if c.Status == scheduling.StatusCompleted || c.Status == scheduling.StatusCancelled {
			continue
		}
		out = append(out, c)
		if len(out) == upcomingLimit {
			break
		}
	}
	return out
}
