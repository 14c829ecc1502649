package patient

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestPatientRepoPG_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	cols := []string{"id", "mrn", "name", "age", "gender", "blood_type", "allergies", "conditions", "medications",
		"blood_pressure", "heart_rate", "temperature", "oxygen", "department", "status", "last_visit", "notes"}
	mock.ExpectQuery(`FROM patient ORDER BY seq`).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			"1", "OH-20251019001", "Sarah Johnson", 45, "Female", "O+",
			[]string{"Penicillin"}, []string{"Hypertension"}, []string{"Lisinopril 10mg"},
			"138/88", 76, 98.6, 98, "Cardiology", "Active",
			time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC), "stable"))

	patients, err := NewPatientRepoPG(mock).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(patients) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(patients))
	}
	p := patients[0]
	if p.Status != StatusActive || p.Vitals.HeartRate != 76 || p.LastVisit.String() != "2024-10-15" {
		t.Errorf("unexpected patient: %+v", p)
	}
	if len(p.Allergies) != 1 || p.Allergies[0] != "Penicillin" {
		t.Errorf("unexpected allergies: %v", p.Allergies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPatientRepoPG_CreateSendsEmptyArrays(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	p := &Patient{ID: "x", MRN: "M", Name: "N", Status: StatusActive}
	mock.ExpectExec(`INSERT INTO patient`).
		WithArgs("x", "M", "N", 0, "", "", []string{}, []string{}, []string{},
			"", 0, 0.0, 0, "", "Active", p.LastVisit.Time(), "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := NewPatientRepoPG(mock).Create(context.Background(), p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
