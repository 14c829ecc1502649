package seed

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"

	"github.com/ehr/opsboard/internal/domain/inventory"
	"github.com/ehr/opsboard/internal/domain/patient"
	"github.com/ehr/opsboard/internal/domain/scheduling"
	"github.com/ehr/opsboard/internal/domain/task"
)

func TestDatasets_Valid(t *testing.T) {
	for _, p := range Patients() {
		if err := p.Validate(); err != nil {
			t.Errorf("patient %s: %v", p.ID, err)
		}
	}
	for _, a := range Appointments() {
		if err := a.Validate(); err != nil {
			t.Errorf("appointment %s: %v", a.ID, err)
		}
	}
	for _, it := range InventoryItems() {
		if err := it.Validate(); err != nil {
			t.Errorf("inventory item %s: %v", it.ID, err)
		}
	}
	for _, tk := range Tasks() {
		if err := tk.Validate(); err != nil {
			t.Errorf("task %s: %v", tk.ID, err)
		}
	}
}

func TestDatasets_Sizes(t *testing.T) {
	if n := len(Patients()); n != 4 {
		t.Errorf("patients = %d", n)
	}
	if n := len(Appointments()); n != 8 {
		t.Errorf("appointments = %d", n)
	}
	if n := len(InventoryItems()); n != 8 {
		t.Errorf("inventory = %d", n)
	}
	if n := len(Tasks()); n != 6 {
		t.Errorf("tasks = %d", n)
	}
	if n := len(Channels()); n != 5 {
		t.Errorf("channels = %d", n)
	}
	if n := len(Messages()); n != 4 {
		t.Errorf("messages = %d", n)
	}
}

func TestDatasets_FreshCopies(t *testing.T) {
	a := Tasks()
	a[0].Status = task.StatusCompleted
	if Tasks()[0].Status != task.StatusToDo {
		t.Error("mutating one call's result must not affect the next")
	}
}

func TestDatasets_DerivedFigures(t *testing.T) {
	census := patient.TakeCensus(Patients(), ReferenceDate)
	if census.Admitted != 1 || census.Active != 2 || census.DischargedToday != 0 {
		t.Errorf("unexpected census: %+v", census)
	}

	day := scheduling.ForDay(Appointments(), ScheduleDate)
	if len(day) != 6 {
		t.Errorf("expected 6 appointments on %s, got %d", ScheduleDate, len(day))
	}

	s := inventory.Summarize(InventoryItems(), ReferenceDate)
	want := inventory.Summary{TotalItems: 8, LowStock: 2, ExpiringSoon: 2, Expired: 0}
	if s != want {
		t.Errorf("summary = %+v, want %+v", s, want)
	}
	if got := inventory.ClassifyRow(*InventoryItems()[5], ReferenceDate); got != inventory.RowLowStock {
		t.Errorf("saline row = %s, want Low Stock", got)
	}
}

func TestLoad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	for range Patients() {
		mock.ExpectExec(`INSERT INTO patient`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range Appointments() {
		mock.ExpectExec(`INSERT INTO appointment`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range InventoryItems() {
		mock.ExpectExec(`INSERT INTO inventory_item`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range Tasks() {
		mock.ExpectExec(`INSERT INTO task`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range Channels() {
		mock.ExpectExec(`INSERT INTO chat_channel`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range Messages() {
		mock.ExpectExec(`INSERT INTO chat_message`).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	}
	mock.ExpectCommit()

	n, err := Load(context.Background(), mock, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if n.Patients != 4 || n.Appointments != 8 || n.Items != 8 || n.Tasks != 6 || n.Channels != 5 || n.Messages != 4 {
		t.Errorf("unexpected counts: %+v", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoad_RollsBackOnFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	dup := errors.New(`duplicate key value violates unique constraint "patient_pkey"`)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO patient`).WillReturnError(dup)
	mock.ExpectRollback()

	if _, err := Load(context.Background(), mock, zerolog.Nop()); !errors.Is(err, dup) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
