package patient

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ehr/opsboard/internal/platform/calendar"
	"github.com/ehr/opsboard/internal/platform/db"
)

type patientRepoPG struct{ q db.Querier }

func NewPatientRepoPG(q db.Querier) Repository {
	return &patientRepoPG{q: q}
}

const patientCols = `id, mrn, name, age, gender, blood_type, allergies, conditions, medications,
	blood_pressure, heart_rate, temperature, oxygen, department, status, last_visit, notes`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	var status string
	var lastVisit time.Time
	if err := row.Scan(&p.ID, &p.MRN, &p.Name, &p.Age, &p.Gender, &p.BloodType,
		&p.Allergies, &p.Conditions, &p.Medications,
		&p.Vitals.BloodPressure, &p.Vitals.HeartRate, &p.Vitals.Temperature, &p.Vitals.Oxygen,
		&p.Department, &status, &lastVisit, &p.Notes); err != nil {
		return nil, err
	}
	p.Status = Status(status)
	p.LastVisit = calendar.DateOf(lastVisit)
	return &p, nil
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO patient (`+patientCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		p.ID, p.MRN, p.Name, p.Age, p.Gender, p.BloodType,
		nonNil(p.Allergies), nonNil(p.Conditions), nonNil(p.Medications),
		p.Vitals.BloodPressure, p.Vitals.HeartRate, p.Vitals.Temperature, p.Vitals.Oxygen,
		p.Department, string(p.Status), p.LastVisit.Time(), p.Notes)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id string) (*Patient, error) {
	p, err := scanPatient(r.q.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	return p, db.NotFound(err)
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
