package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("2024-10-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-10-18" {
		t.Errorf("expected 2024-10-18, got %s", d.String())
	}
}

func TestParseDate_Malformed(t *testing.T) {
	for _, in := range []string{"", "2024-13-01", "18/10/2024", "2024-10-18T00:00:00Z", "yesterday"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	ref := MustParseDate("2024-10-18")
	tests := []struct {
		expiry string
		want   int
	}{
		{"2024-11-30", 43},
		{"2024-12-20", 63},
		{"2024-10-17", -1},
		{"2024-10-18", 0},
		{"2025-03-15", 148},
	}
	for _, tt := range tests {
		got := ref.DaysUntil(MustParseDate(tt.expiry))
		if got != tt.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tt.expiry, got, tt.want)
		}
	}
}

func TestDaysUntil_CeilsPartialDays(t *testing.T) {
	ref := Date{t: time.Date(2024, 10, 18, 0, 0, 0, 0, time.UTC)}
	later := Date{t: time.Date(2024, 10, 19, 6, 0, 0, 0, time.UTC)}
	if got := ref.DaysUntil(later); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	earlier := Date{t: time.Date(2024, 10, 16, 18, 0, 0, 0, time.UTC)}
	if got := ref.DaysUntil(earlier); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestDateOf_DropsClock(t *testing.T) {
	d := DateOf(time.Date(2024, 10, 19, 23, 59, 0, 0, time.UTC))
	if d.String() != "2024-10-19" {
		t.Errorf("expected 2024-10-19, got %s", d)
	}
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		Expiry Date `json:"expiry"`
	}
	if err := json.Unmarshal([]byte(`{"expiry":"2025-06-20"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Expiry.String() != "2025-06-20" {
		t.Errorf("expected 2025-06-20, got %s", v.Expiry)
	}
	out, _ := json.Marshal(v)
	if string(out) != `{"expiry":"2025-06-20"}` {
		t.Errorf("unexpected json: %s", out)
	}
	if err := json.Unmarshal([]byte(`{"expiry":"20-06-2025"}`), &v); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDate_ZeroRoundTrip(t *testing.T) {
	var v struct {
		Due Date `json:"due"`
	}
	out, _ := json.Marshal(v)
	if string(out) != `{"due":""}` {
		t.Fatalf("unexpected json: %s", out)
	}
	v.Due = MustParseDate("2024-10-18")
	if err := json.Unmarshal(out, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Due.IsZero() {
		t.Errorf("expected unset date, got %s", v.Due)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "08:05", "14:30", "23:59"}
	for _, in := range valid {
		if _, err := ParseTimeOfDay(in); err != nil {
			t.Errorf("unexpected error for %q: %v", in, err)
		}
	}
	invalid := []string{"8:00", "24:00", "12:60", "12-00", ""}
	for _, in := range invalid {
		if _, err := ParseTimeOfDay(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestTimeOfDay_Hour(t *testing.T) {
	if h := TimeOfDay("09:30").Hour(); h != "09" {
		t.Errorf("expected 09, got %s", h)
	}
}
