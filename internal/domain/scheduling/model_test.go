package scheduling

import (
	"encoding/json"
	"testing"

	"github.com/ehr/opsboard/internal/platform/severity"
)

func TestStatus_Variant(t *testing.T) {
	tests := map[Status]severity.Variant{
		StatusConfirmed: severity.VariantDefault,
		StatusPending:   severity.VariantSecondary,
		StatusCompleted: severity.VariantOutline,
		StatusCancelled: severity.VariantDestructive,
	}
	for s, want := range tests {
		if got := s.Variant(); got != want {
			t.Errorf("%s.Variant() = %s, want %s", s, got, want)
		}
	}
}

func TestAppointment_Decode(t *testing.T) {
	var a Appointment
	if err := json.Unmarshal([]byte(`{"date":"2024-10-19","time":"9:00"}`), &a); err == nil {
		t.Error("expected error for unpadded time")
	}
	if err := json.Unmarshal([]byte(`{"status":"Rescheduled"}`), &a); err == nil {
		t.Error("expected error for unknown status")
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-10-19","time":"09:00","status":"Pending"}`), &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Time.Hour() != "09" {
		t.Errorf("Hour() = %s", a.Time.Hour())
	}
}

func TestAppointment_Validate(t *testing.T) {
	a := appt("", "2024-10-19", "09:00", "")
	if err := a.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusPending {
		t.Errorf("expected default Pending, got %s", a.Status)
	}
	bad := appt("", "2024-10-19", "25:00", StatusPending)
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid time")
	}
	noDuration := appt("", "2024-10-19", "09:00", StatusPending)
	noDuration.Duration = 0
	if err := noDuration.Validate(); err == nil {
		t.Error("expected error for zero duration")
	}
}
