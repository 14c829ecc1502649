package inventory

import (
	"testing"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

var testReference = calendar.MustParseDate("2024-10-18")

func TestClassifyExpiry(t *testing.T) {
	tests := []struct {
		expiry   string
		days     int
		label    string
		severity severity.Level
	}{
		{"2024-10-17", -1, "Expired", severity.Critical},
		{"2024-10-18", 0, "0 days", severity.Critical},
		{"2024-11-17", 30, "30 days", severity.Critical},
		{"2024-11-18", 31, "31 days", severity.Warning},
		{"2024-11-30", 43, "43 days", severity.Warning},
		{"2024-12-20", 63, "63 days", severity.Warning},
		{"2025-01-16", 90, "90 days", severity.Warning},
		{"2025-01-17", 91, "91 days", severity.Normal},
		{"2025-03-15", 148, "148 days", severity.Normal},
	}
	for _, tt := range tests {
		t.Run(tt.expiry, func(t *testing.T) {
			st := ClassifyExpiry(calendar.MustParseDate(tt.expiry), testReference)
			if st.DaysRemaining != tt.days {
				t.Errorf("days = %d, want %d", st.DaysRemaining, tt.days)
			}
			if st.Label != tt.label {
				t.Errorf("label = %q, want %q", st.Label, tt.label)
			}
			if st.Severity != tt.severity {
				t.Errorf("severity = %s, want %s", st.Severity, tt.severity)
			}
			if st.Variant != tt.severity.Variant() {
				t.Errorf("variant = %s, want %s", st.Variant, tt.severity.Variant())
			}
		})
	}
}

func TestDaysUntilExpiry_Monotonic(t *testing.T) {
	prev := DaysUntilExpiry(testReference.AddDays(-400), testReference)
	for offset := -399; offset <= 400; offset++ {
		d := DaysUntilExpiry(testReference.AddDays(offset), testReference)
		if d <= prev {
			t.Fatalf("not strictly increasing at offset %d: %d <= %d", offset, d, prev)
		}
		prev = d
	}
}

func TestClassifyExpiry_SeverityNeverDecreasesTowardsExpiry(t *testing.T) {
	rank := map[severity.Level]int{severity.Normal: 0, severity.Warning: 1, severity.Critical: 2}
	prev := severity.Normal
	for offset := 200; offset >= -5; offset-- {
		st := ClassifyExpiry(testReference.AddDays(offset), testReference)
		if rank[st.Severity] < rank[prev] {
			t.Fatalf("severity dropped from %s to %s at %d days", prev, st.Severity, offset)
		}
		prev = st.Severity
	}
}
