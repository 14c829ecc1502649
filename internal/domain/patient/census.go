package patient

import "github.com/ehr/opsboard/internal/platform/calendar"

// Census holds the counters of the patient records header cards.
type Census struct {
	Total           int `json:"total"`
	Admitted        int `json:"admitted"`
	Active          int `json:"active"`
	DischargedToday int `json:"discharged_today"`
}

// TakeCensus counts patients by status. A patient counts as discharged
// today when its last visit falls on the reference date.
func TakeCensus(patients []*Patient, reference calendar.Date) Census {
	c := Census{Total: len(patients)}
	for _, p := range patients {
		switch p.Status {
		case StatusAdmitted:
			c.Admitted++
		case StatusActive:
			c.Active++
		case StatusDischarged:
			if p.LastVisit.Equal(reference) {
				c.DischargedToday++
			}
		}
	}
	return c
}
