package patient

import (
	"fmt"
	"strings"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

type Status string

const (
	StatusActive     Status = "Active"
	StatusAdmitted   Status = "Admitted"
	StatusDischarged Status = "Discharged"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusAdmitted, StatusDischarged:
		return true
	}
	return false
}

// Variant is the badge style of the status.
func (s Status) Variant() severity.Variant {
	switch s {
	case StatusAdmitted:
		return severity.VariantDefault
	case StatusActive:
		return severity.VariantSecondary
	default:
		return severity.VariantOutline
	}
}

func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Valid() {
		return fmt.Errorf("invalid patient status: %s", b)
	}
	*s = v
	return nil
}

type Vitals struct {
	BloodPressure string  `db:"blood_pressure" json:"blood_pressure"`
	HeartRate     int     `db:"heart_rate" json:"heart_rate"`
	Temperature   float64 `db:"temperature" json:"temperature"`
	Oxygen        int     `db:"oxygen" json:"oxygen"`
}

// Patient maps to the patient table. MRN is unique by convention only.
type Patient struct {
	ID          string        `db:"id" json:"id"`
	MRN         string        `db:"mrn" json:"mrn"`
	Name        string        `db:"name" json:"name"`
	Age         int           `db:"age" json:"age"`
	Gender      string        `db:"gender" json:"gender"`
	BloodType   string        `db:"blood_type" json:"blood_type"`
	Allergies   []string      `db:"allergies" json:"allergies"`
	Conditions  []string      `db:"conditions" json:"conditions"`
	Medications []string      `db:"medications" json:"medications"`
	Vitals      Vitals        `json:"vitals"`
	Department  string        `db:"department" json:"department"`
	Status      Status        `db:"status" json:"status"`
	LastVisit   calendar.Date `db:"last_visit" json:"last_visit"`
	Notes       string        `db:"notes" json:"notes,omitempty"`
}

func (p *Patient) RecordID() string { return p.ID }

func (p *Patient) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.MRN) == "" {
		return fmt.Errorf("mrn is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if !p.Status.Valid() {
		return fmt.Errorf("invalid status: %q", p.Status)
	}
	return nil
}

// Row is a patient with its badge variant for list views.
type Row struct {
	*Patient
	StatusVariant severity.Variant `json:"status_variant"`
}

func NewRow(p *Patient) Row {
	return Row{Patient: p, StatusVariant: p.Status.Variant()}
}
