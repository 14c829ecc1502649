package inventory

import (
	"fmt"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/severity"
)

const (
	criticalExpiryDays = 30
	warningExpiryDays  = 90
)

// ExpiryStatus is the badge shown next to an item's expiry date.
type ExpiryStatus struct {
	DaysRemaining int              `json:"days_remaining"`
	Label         string           `json:"label"`
	Severity      severity.Level   `json:"severity"`
	Variant       severity.Variant `json:"variant"`
}

// DaysUntilExpiry is ceil(expiry - reference) in days.
func DaysUntilExpiry(expiry, reference calendar.Date) int {
	return reference.DaysUntil(expiry)
}

// ClassifyExpiry buckets an expiry date relative to reference:
// past is Expired/critical, 0-30 days critical, 31-90 warning, beyond normal.
func ClassifyExpiry(expiry, reference calendar.Date) ExpiryStatus {
	days := DaysUntilExpiry(expiry, reference)

	st := ExpiryStatus{DaysRemaining: days, Label: fmt.Sprintf("%d days", days)}
	switch {
	case days < 0:
		st.Label = "Expired"
		st.Severity = severity.Critical
	case days <= criticalExpiryDays:
		st.Severity = severity.Critical
	case days <= warningExpiryDays:
		st.Severity = severity.Warning
	default:
		st.Severity = severity.Normal
	}
	st.Variant = st.Severity.Variant()
	return st
}
