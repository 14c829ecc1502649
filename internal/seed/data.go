// Package seed holds the demo datasets the board starts with. Every call
// returns fresh values so callers may mutate them freely.
package seed

import (
	"github.com/ehr/opsboard/internal/domain/chat"
	"github.com/ehr/opsboard/internal/domain/inventory"
	"github.com/ehr/opsboard/internal/domain/patient"
	"github.com/ehr/opsboard/internal/domain/scheduling"
	"github.com/ehr/opsboard/internal/domain/task"
	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/calendar"
)

// ReferenceDate is the "today" the seeded expiry and census figures are
// written against.
var ReferenceDate = calendar.MustParseDate("2024-10-18")

// ScheduleDate is the day the seeded schedule opens on.
var ScheduleDate = calendar.MustParseDate("2024-10-19")

func date(s string) calendar.Date { return calendar.MustParseDate(s) }

func Patients() []*patient.Patient {
	return []*patient.Patient{
		{
			ID: "1", Name: "Sarah Johnson", Age: 45, Gender: "Female", MRN: "OH-20251019001",
			LastVisit: date("2024-10-15"), Department: "Cardiology", Status: patient.StatusActive,
			BloodType: "O+", Allergies: []string{"Penicillin"},
			Conditions:  []string{"Hypertension", "Type 2 Diabetes"},
			Medications: []string{"Lisinopril 10mg", "Metformin 500mg"},
			Vitals:      patient.Vitals{BloodPressure: "138/88", HeartRate: 76, Temperature: 98.6, Oxygen: 98},
			Notes:       "Patient responding well to current medication regimen.",
		},
		{
			ID: "2", Name: "Michael Chen", Age: 62, Gender: "Male", MRN: "OH-20251019002",
			LastVisit: date("2024-10-17"), Department: "Orthopedics", Status: patient.StatusAdmitted,
			BloodType: "A+", Allergies: []string{},
			Conditions:  []string{"Osteoarthritis"},
			Medications: []string{"Ibuprofen 400mg"},
			Vitals:      patient.Vitals{BloodPressure: "128/82", HeartRate: 72, Temperature: 98.4, Oxygen: 99},
			Notes:       "Post-op knee replacement, day 3. Recovery progressing normally.",
		},
		{
			ID: "3", Name: "Emily Rodriguez", Age: 28, Gender: "Female", MRN: "OH-20251019003",
			LastVisit: date("2024-10-18"), Department: "Obstetrics", Status: patient.StatusActive,
			BloodType: "B+", Allergies: []string{"Latex"},
			Conditions:  []string{"Pregnancy - 28 weeks"},
			Medications: []string{"Prenatal vitamins"},
			Vitals:      patient.Vitals{BloodPressure: "118/75", HeartRate: 82, Temperature: 98.2, Oxygen: 99},
			Notes:       "Routine prenatal checkup. All vitals normal.",
		},
		{
			ID: "4", Name: "Robert Williams", Age: 71, Gender: "Male", MRN: "OH-20251019004",
			LastVisit: date("2024-10-10"), Department: "Neurology", Status: patient.StatusDischarged,
			BloodType: "AB-", Allergies: []string{"Sulfa drugs"},
			Conditions:  []string{"Parkinson's Disease"},
			Medications: []string{"Carbidopa-Levodopa 25/100mg"},
			Vitals:      patient.Vitals{BloodPressure: "142/90", HeartRate: 68, Temperature: 98.3, Oxygen: 97},
			Notes:       "Follow-up in 3 months for medication adjustment.",
		},
	}
}

func Appointments() []*scheduling.Appointment {
	appt := func(id, name, mrn, dept, doctor, day, at string, minutes int, kind string, st scheduling.Status, room, notes string) *scheduling.Appointment {
		return &scheduling.Appointment{
			ID: id, PatientName: name, PatientMRN: mrn, Department: dept, Doctor: doctor,
			Date: date(day), Time: calendar.TimeOfDay(at), Duration: minutes, Type: kind,
			Status: st, Room: room, Notes: notes,
		}
	}
	return []*scheduling.Appointment{
		appt("1", "Sarah Johnson", "OH-20251019001", "Cardiology", "Dr. Smith", "2024-10-19", "09:00", 30, "Follow-up", scheduling.StatusConfirmed, "Room 301", "Routine check-up after medication adjustment"),
		appt("2", "Michael Chen", "OH-20251019002", "Orthopedics", "Dr. Williams", "2024-10-19", "10:00", 45, "Post-operative", scheduling.StatusConfirmed, "Room 205", "Post-op follow-up for knee replacement"),
		appt("3", "Emily Rodriguez", "OH-20251019003", "Obstetrics", "Dr. Martinez", "2024-10-19", "11:00", 30, "Prenatal", scheduling.StatusConfirmed, "Room 102", "28-week prenatal checkup"),
		appt("4", "Robert Williams", "OH-20251019004", "Neurology", "Dr. Chen", "2024-10-19", "13:00", 60, "Consultation", scheduling.StatusPending, "Room 404", "Initial consultation for tremor symptoms"),
		appt("5", "Lisa Anderson", "OH-20251019005", "Dermatology", "Dr. Brown", "2024-10-19", "14:30", 30, "Screening", scheduling.StatusConfirmed, "Room 115", "Annual skin cancer screening"),
		appt("6", "James Wilson", "OH-20251019006", "Emergency", "Dr. Davis", "2024-10-19", "15:30", 30, "Urgent", scheduling.StatusPending, "ER Bay 3", "Acute chest pain evaluation"),
		appt("7", "Maria Garcia", "OH-20251019007", "Pediatrics", "Dr. Lee", "2024-10-20", "09:30", 30, "Check-up", scheduling.StatusConfirmed, "Room 210", "6-month well-child visit"),
		appt("8", "David Thompson", "OH-20251019008", "Cardiology", "Dr. Smith", "2024-10-20", "11:00", 45, "Diagnostic", scheduling.StatusConfirmed, "Room 301", "ECG and stress test"),
	}
}

func InventoryItems() []*inventory.Item {
	item := func(id, name string, cat inventory.Category, qty int, unit string, min int, expiry, loc, supplier string) *inventory.Item {
		return &inventory.Item{
			ID: id, Name: name, Category: cat, Quantity: qty, Unit: unit, MinStock: min,
			ExpiryDate: date(expiry), Location: loc, Supplier: supplier,
		}
	}
	return []*inventory.Item{
		item("1", "Surgical Gloves - Size L", inventory.CategoryPPE, 450, "boxes", 200, "2025-03-15", "Storage Room A", "MediSupply Co."),
		item("2", "N95 Respirator Masks", inventory.CategoryPPE, 120, "boxes", 150, "2025-06-20", "Storage Room A", "SafeGuard Medical"),
		item("3", "Disposable Syringes 10ml", inventory.CategorySupplies, 850, "units", 500, "2026-01-10", "Storage Room B", "MedTech Solutions"),
		item("4", "Antibiotic - Amoxicillin 500mg", inventory.CategoryMedication, 380, "bottles", 200, "2024-11-30", "Pharmacy", "PharmaCorp"),
		item("5", "Sterile Gauze Pads", inventory.CategorySupplies, 650, "packs", 300, "2025-08-15", "Storage Room B", "MediSupply Co."),
		item("6", "IV Solution - Saline 1000ml", inventory.CategoryFluids, 95, "bags", 100, "2024-12-20", "Emergency Room", "FluidMed Inc."),
		item("7", "Pain Relief - Ibuprofen 400mg", inventory.CategoryMedication, 520, "bottles", 250, "2025-04-05", "Pharmacy", "PharmaCorp"),
		item("8", "Alcohol Sanitizer 500ml", inventory.CategoryHygiene, 180, "bottles", 150, "2026-02-28", "Multiple Locations", "CleanCare Medical"),
	}
}

func Tasks() []*task.Task {
	t := func(id, title, desc, assignee, dept string, p task.Priority, st task.Status, due string) *task.Task {
		return &task.Task{
			ID: id, Title: title, Description: desc, Assignee: assignee, Department: dept,
			Priority: p, Status: st, DueDate: date(due),
		}
	}
	return []*task.Task{
		t("1", "Review Lab Results - Patient OH-20251019001", "Complete blood count and metabolic panel review required", "Dr. Smith", "Cardiology", task.PriorityHigh, task.StatusToDo, "2024-10-19"),
		t("2", "Schedule Follow-up Appointment", "Post-surgery follow-up for Patient OH-20251019002", "Nurse Johnson", "Orthopedics", task.PriorityMedium, task.StatusInProgress, "2024-10-20"),
		t("3", "Medication Order Review", "Verify and approve medication changes for ward B", "Dr. Chen", "Pharmacy", task.PriorityUrgent, task.StatusToDo, "2024-10-18"),
		t("4", "Equipment Maintenance", "Routine maintenance check on MRI machine", "Tech Williams", "Radiology", task.PriorityLow, task.StatusCompleted, "2024-10-17"),
		t("5", "Patient Discharge Planning", "Prepare discharge paperwork and home care instructions", "Nurse Davis", "General", task.PriorityMedium, task.StatusInProgress, "2024-10-19"),
		t("6", "Inventory Audit", "Monthly audit of surgical supplies", "Admin Brown", "Supply Chain", task.PriorityLow, task.StatusToDo, "2024-10-25"),
	}
}

func Channels() []*chat.Channel {
	return []*chat.Channel{
		{ID: "1", Name: "Cardiology", Department: "Cardiology", Unread: 3, LastMessage: "Patient needs consultation"},
		{ID: "2", Name: "Emergency", Department: "Emergency", Unread: 0, LastMessage: "All clear"},
		{ID: "3", Name: "Radiology", Department: "Radiology", Unread: 1, LastMessage: "X-ray results ready"},
		{ID: "4", Name: "Laboratory", Department: "Laboratory", Unread: 5, LastMessage: "Blood work completed"},
		{ID: "5", Name: "Pharmacy", Department: "Pharmacy", Unread: 0, LastMessage: "Medication dispensed"},
	}
}

// Messages belong to the Cardiology channel. Message 3 is sent by the
// development user so it shows as the viewer's own in dev mode.
func Messages() []*chat.Message {
	return []*chat.Message{
		{ID: "1", ChannelID: "1", SenderID: "dr-smith", Sender: "Dr. Smith", Department: "Cardiology", Content: "Good morning team. Patient in room 302 needs urgent consultation.", Timestamp: "09:15 AM"},
		{ID: "2", ChannelID: "1", SenderID: "dr-jones", Sender: "Dr. Jones", Department: "Emergency", Content: "I'll be there in 5 minutes.", Timestamp: "09:17 AM"},
		{ID: "3", ChannelID: "1", SenderID: auth.DevUserID, Sender: "You", Department: "Cardiology", Content: "Thank you. The patient's vitals are showing irregularities.", Timestamp: "09:18 AM"},
		{ID: "4", ChannelID: "1", SenderID: "nurse-williams", Sender: "Nurse Williams", Department: "Cardiology", Content: "I've updated the medication chart and informed the family.", Timestamp: "09:22 AM"},
	}
}
