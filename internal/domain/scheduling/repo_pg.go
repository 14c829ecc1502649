package scheduling

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/db"
)

type appointmentRepoPG struct{ q db.Querier }

func NewAppointmentRepoPG(q db.Querier) Repository {
	return &appointmentRepoPG{q: q}
}

// time_of_day is stored as the zero-padded HH:MM text so ordering by it
// matches the in-memory sort.
const apptCols = `id, patient_name, patient_mrn, department, doctor, date, time_of_day,
	duration, type, status, room, notes`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var date time.Time
	var tod, status string
	if err := row.Scan(&a.ID, &a.PatientName, &a.PatientMRN, &a.Department, &a.Doctor,
		&date, &tod, &a.Duration, &a.Type, &status, &a.Room, &a.Notes); err != nil {
		return nil, err
	}
	a.Date = calendar.DateOf(date)
	a.Time = calendar.TimeOfDay(tod)
	a.Status = Status(status)
	return &a, nil
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO appointment (`+apptCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.PatientName, a.PatientMRN, a.Department, a.Doctor, a.Date.Time(),
		a.Time.String(), a.Duration, a.Type, string(a.Status), a.Room, a.Notes)
	return err
}

func (r *appointmentRepoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+apptCols+` FROM appointment ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var appts []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}
