package scheduling

import (
	"fmt"
	"sort"

	"github.com/ehr/opsboard/internal/platform/calendar"
)

const (
	firstSlotHour = 8
	slotCount     = 10
)

// ForDay returns the appointments on day, ordered by time of day. Dates
// match exactly with no timezone normalisation; equal times keep their
// collection order.
func ForDay(appointments []*Appointment, day calendar.Date) []*Appointment {
	out := make([]*Appointment, 0)
	for _, a := range appointments {
		if a.Date.Equal(day) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// HourlySlots returns the fixed working-day slots 08:00 through 17:00.
func HourlySlots() []calendar.TimeOfDay {
	slots := make([]calendar.TimeOfDay, slotCount)
	for i := range slots {
		slots[i] = calendar.TimeOfDay(fmt.Sprintf("%02d:00", firstSlotHour+i))
	}
	return slots
}

type Slot struct {
	Start        calendar.TimeOfDay `json:"start"`
	Appointments []*Appointment     `json:"appointments"`
	// Available is true when nothing is booked in the slot.
	Available bool `json:"available"`
}

// Timeline is the hourly overview of one day. Every appointment of the day
// is in exactly one slot or in Unslotted.
type Timeline struct {
	Date      calendar.Date  `json:"date"`
	Slots     []Slot         `json:"slots"`
	Unslotted []*Appointment `json:"unslotted"`
}

// BuildTimeline places each appointment of day into the slot whose hour
// digits its time starts with. Times outside 08-17 go to Unslotted.
func BuildTimeline(day calendar.Date, dayAppointments []*Appointment) Timeline {
	tl := Timeline{Date: day, Unslotted: make([]*Appointment, 0)}
	byHour := make(map[string]int, slotCount)
	for i, start := range HourlySlots() {
		tl.Slots = append(tl.Slots, Slot{Start: start, Appointments: make([]*Appointment, 0)})
		byHour[start.Hour()] = i
	}
	for _, a := range dayAppointments {
		if i, ok := byHour[a.Time.Hour()]; ok {
			tl.Slots[i].Appointments = append(tl.Slots[i].Appointments, a)
			continue
		}
		tl.Unslotted = append(tl.Unslotted, a)
	}
	for i := range tl.Slots {
		tl.Slots[i].Available = len(tl.Slots[i].Appointments) == 0
	}
	return tl
}

// StatusCounts backs the day header cards.
type StatusCounts struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func CountByStatus(dayAppointments []*Appointment) StatusCounts {
	c := StatusCounts{Total: len(dayAppointments)}
	for _, a := range dayAppointments {
		switch a.Status {
		case StatusConfirmed:
			c.Confirmed++
		case StatusPending:
			c.Pending++
		case StatusCompleted:
			c.Completed++
		case StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}
