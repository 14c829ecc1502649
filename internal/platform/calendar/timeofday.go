package calendar

import (
	"fmt"
	"regexp"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a zero-padded 24h "HH:MM" string. Zero padding makes
// lexicographic order equal chronological order.
type TimeOfDay string

// ParseTimeOfDay validates s as HH:MM.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return "", fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	return TimeOfDay(s), nil
}

// Hour returns the two hour digits.
func (t TimeOfDay) Hour() string {
	if len(t) < 2 {
		return string(t)
	}
	return string(t[:2])
}

func (t TimeOfDay) String() string { return string(t) }

// UnmarshalText leaves an empty string unset; anything else must be HH:MM.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = ""
		return nil
	}
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
