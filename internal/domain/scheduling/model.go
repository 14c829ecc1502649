package scheduling

import (
	"fmt"
	"strings"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) Variant() severity.Variant {
	switch s {
	case StatusConfirmed:
		return severity.VariantDefault
	case StatusPending:
		return severity.VariantSecondary
	case StatusCancelled:
		return severity.VariantDestructive
	default:
		return severity.VariantOutline
	}
}

func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Valid() {
		return fmt.Errorf("invalid appointment status: %s", b)
	}
	*s = v
	return nil
}

// Appointment maps to the appointment table. The patient is referenced by
// name and MRN, not by a foreign key.
type Appointment struct {
	ID          string             `db:"id" json:"id"`
	PatientName string             `db:"patient_name" json:"patient_name"`
	PatientMRN  string             `db:"patient_mrn" json:"patient_mrn"`
	Department  string             `db:"department" json:"department"`
	Doctor      string             `db:"doctor" json:"doctor"`
	Date        calendar.Date      `db:"date" json:"date"`
	Time        calendar.TimeOfDay `db:"time" json:"time"`
	Duration    int                `db:"duration" json:"duration"`
	Type        string             `db:"type" json:"type"`
	Status      Status             `db:"status" json:"status"`
	Room        string             `db:"room" json:"room"`
	Notes       string             `db:"notes" json:"notes,omitempty"`
}

func (a *Appointment) RecordID() string { return a.ID }

func (a *Appointment) Validate() error {
	if strings.TrimSpace(a.PatientName) == "" {
		return fmt.Errorf("patient_name is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if _, err := calendar.ParseTimeOfDay(string(a.Time)); err != nil {
		return err
	}
	if a.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid status: %q", a.Status)
	}
	return nil
}

// Card is an appointment with its status badge variant.
type Card struct {
	*Appointment
	StatusVariant severity.Variant `json:"status_variant"`
}

func NewCard(a *Appointment) Card {
	return Card{Appointment: a, StatusVariant: a.Status.Variant()}
}
