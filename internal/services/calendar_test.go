package services

import (
	"testing"
	"time"

	"github.com/petpalhq/petpal/internal/models"
)

func TestFilterAppointmentsSkipsCancelledAndOutOfWindow(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	window := DefaultCalendarWindow(now)

	appointments := []models.Appointment{
		{ID: 1, AppointmentDate: now.AddDate(0, 0, 7), Status: models.AppointmentStatusScheduled},
		{ID: 2, AppointmentDate: now.AddDate(0, 0, 7), Status: models.AppointmentStatusCancelled},
		{ID: 3, AppointmentDate: now.AddDate(0, 4, 0), Status: models.AppointmentStatusScheduled},
		{ID: 4, AppointmentDate: now.AddDate(0, 0, -1), Status: models.AppointmentStatusScheduled},
	}

	matched := FilterAppointments(appointments, window)
	if len(matched) != 1 || matched[0].ID != 1 {
		t.Fatalf("expected only appointment 1 inside the window, got %#v", matched)
	}
}

func TestFilterMedicationRemindersRequiresActiveEnabledDue(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	window := DefaultCalendarWindow(now)
	due := now.AddDate(0, 0, 3)

	medications := []models.Medication{
		{ID: 1, IsActive: true, ReminderEnabled: true, NextReminderDue: &due},
		{ID: 2, IsActive: false, ReminderEnabled: true, NextReminderDue: &due},
		{ID: 3, IsActive: true, ReminderEnabled: false, NextReminderDue: &due},
		{ID: 4, IsActive: true, ReminderEnabled: true},
	}

	matched := FilterMedicationReminders(medications, window)
	if len(matched) != 1 || matched[0].ID != 1 {
		t.Fatalf("expected only medication 1, got %#v", matched)
	}
}

func TestFilterVaccinationsDueIgnoresOtherRecordTypes(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	window := DashboardWindow(now)
	dueSoon := now.AddDate(0, 0, 10)
	dueLater := now.AddDate(0, 2, 0)

	records := []models.HealthRecord{
		{ID: 1, RecordType: models.RecordTypeVaccination, DueDate: &dueSoon},
		{ID: 2, RecordType: "Checkup", DueDate: &dueSoon},
		{ID: 3, RecordType: models.RecordTypeVaccination, DueDate: &dueLater},
		{ID: 4, RecordType: models.RecordTypeVaccination},
	}

	matched := FilterVaccinationsDue(records, window)
	if len(matched) != 1 || matched[0].ID != 1 {
		t.Fatalf("expected only vaccination 1 due within a month, got %#v", matched)
	}
}

func TestBuildCalendarEventsOrdering(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	petNames := map[uint]string{7: "Buddy"}

	morning := "09:00"
	medicationDue := day.Add(14 * time.Hour)

	appointments := []models.Appointment{
		{ID: 1, PetID: 7, AppointmentDate: day, AppointmentTime: morning, AppointmentType: "Checkup"},
	}
	medications := []models.Medication{
		{ID: 2, PetID: 7, Name: "Heartgard", NextReminderDue: &medicationDue, ReminderTime: stringPtr("14:00")},
	}
	vaccinations := []models.HealthRecord{
		{ID: 3, PetID: 7, RecordType: models.RecordTypeVaccination, Description: "Rabies", DueDate: &day},
		{ID: 4, PetID: 7, RecordType: models.RecordTypeVaccination, Description: "Lepto", DueDate: &earlier},
	}

	events := BuildCalendarEvents(appointments, medications, vaccinations, petNames)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	// Earliest date first; on the shared day the dateless vaccination
	// precedes the timed appointment and medication.
	wantOrder := []uint{4, 3, 1, 2}
	for index, event := range events {
		if event.ID != wantOrder[index] {
			t.Fatalf("expected event order %v, got %d at position %d", wantOrder, event.ID, index)
		}
	}

	if events[2].EventType != EventTypeAppointment || events[2].Title != "Checkup - Buddy" {
		t.Fatalf("unexpected appointment event: %#v", events[2])
	}
	if events[3].EventType != EventTypeMedication || events[3].Title != "Medication: Heartgard - Buddy" {
		t.Fatalf("unexpected medication event: %#v", events[3])
	}
	if events[1].EventType != EventTypeVaccination || events[1].EventTime != nil {
		t.Fatalf("unexpected vaccination event: %#v", events[1])
	}
}

func TestBuildCalendarEventsColors(t *testing.T) {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	due := day.Add(8 * time.Hour)
	events := BuildCalendarEvents(
		[]models.Appointment{{ID: 1, AppointmentDate: day}},
		[]models.Medication{{ID: 2, NextReminderDue: &due}},
		[]models.HealthRecord{{ID: 3, RecordType: models.RecordTypeVaccination, DueDate: &day}},
		nil,
	)

	colors := map[string]string{}
	for _, event := range events {
		colors[event.EventType] = event.Color
	}
	if colors[EventTypeAppointment] != "#4285F4" {
		t.Fatalf("unexpected appointment color %q", colors[EventTypeAppointment])
	}
	if colors[EventTypeMedication] != "#EA4335" {
		t.Fatalf("unexpected medication color %q", colors[EventTypeMedication])
	}
	if colors[EventTypeVaccination] != "#FBBC05" {
		t.Fatalf("unexpected vaccination color %q", colors[EventTypeVaccination])
	}
}

func TestSortCalendarEventsTieBreaksByTime(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	nine := "09:00"
	fourteen := "14:00"

	events := []CalendarEvent{
		{ID: 1, EventDate: day, EventTime: &fourteen},
		{ID: 2, EventDate: day, EventTime: &nine},
		{ID: 3, EventDate: day},
	}
	SortCalendarEvents(events)

	wantOrder := []uint{3, 2, 1}
	for index, event := range events {
		if event.ID != wantOrder[index] {
			t.Fatalf("expected order %v, got %d at position %d", wantOrder, event.ID, index)
		}
	}
}
