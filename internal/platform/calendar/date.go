// Package calendar provides date-only and time-of-day value types used by the
// operations board. Dates carry no zone: two dates compare equal exactly when
// their YYYY-MM-DD strings do.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage layout for Date values.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Date is a calendar day. The zero value means "unset".
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string. Malformed input is rejected rather
// than producing a zero date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate for static data; it panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns ceil((o - d) in days). For whole dates the division is
// exact; the ceiling matters only if callers build dates from DateOf on
// mismatched zones.
func (d Date) DaysUntil(o Date) int {
	diff := o.t.Sub(d.t)
	n := int(diff / day)
	if diff%day > 0 {
		n++
	}
	return n
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts an empty string as the unset date so that zero
// values round-trip.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
