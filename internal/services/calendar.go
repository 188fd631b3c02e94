package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/petpalhq/petpal/internal/models"
)

const (
	EventTypeAppointment = "Appointment"
	EventTypeMedication  = "Medication"
	EventTypeVaccination = "Vaccination"

	appointmentColor = "#4285F4"
	medicationColor  = "#EA4335"
	vaccinationColor = "#FBBC05"
)

type CalendarEvent struct {
	ID          uint      `json:"id"`
	EventType   string    `json:"eventType"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	EventTime   *string   `json:"eventTime"`
	PetID       uint      `json:"petId"`
	PetName     string    `json:"petName"`
	Color       string    `json:"color"`
}

type CalendarWindow struct {
	Start time.Time
	End   time.Time
}

func (window CalendarWindow) Contains(instant time.Time) bool {
	return !instant.Before(window.Start) && !instant.After(window.End)
}

// DefaultCalendarWindow is the calendar view default of three months ahead.
func DefaultCalendarWindow(now time.Time) CalendarWindow {
	return CalendarWindow{Start: now, End: now.AddDate(0, 3, 0)}
}

// DashboardWindow bounds the "upcoming" panels to one month ahead.
func DashboardWindow(now time.Time) CalendarWindow {
	return CalendarWindow{Start: now, End: now.AddDate(0, 1, 0)}
}

func FilterAppointments(appointments []models.Appointment, window CalendarWindow) []models.Appointment {
	matched := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == models.AppointmentStatusCancelled {
			continue
		}
		if !window.Contains(appointment.AppointmentDate) {
			continue
		}
		matched = append(matched, appointment)
	}
	return matched
}

func FilterMedicationReminders(medications []models.Medication, window CalendarWindow) []models.Medication {
	matched := make([]models.Medication, 0, len(medications))
	for _, medication := range medications {
		if !medication.IsActive || !medication.ReminderEnabled || medication.NextReminderDue == nil {
			continue
		}
		if !window.Contains(*medication.NextReminderDue) {
			continue
		}
		matched = append(matched, medication)
	}
	return matched
}

func FilterVaccinationsDue(records []models.HealthRecord, window CalendarWindow) []models.HealthRecord {
	matched := make([]models.HealthRecord, 0, len(records))
	for _, record := range records {
		if !record.IsVaccination() || record.DueDate == nil {
			continue
		}
		if !window.Contains(*record.DueDate) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

func AppointmentEvent(appointment models.Appointment, petName string) CalendarEvent {
	eventTime := appointment.AppointmentTime
	return CalendarEvent{
		ID:          appointment.ID,
		EventType:   EventTypeAppointment,
		Title:       fmt.Sprintf("%s - %s", appointment.AppointmentType, petName),
		Description: appointment.Notes,
		EventDate:   appointment.AppointmentDate,
		EventTime:   &eventTime,
		PetID:       appointment.PetID,
		PetName:     petName,
		Color:       appointmentColor,
	}
}

func MedicationEvent(medication models.Medication, petName string) CalendarEvent {
	dueDay := medication.NextReminderDue.UTC().Truncate(24 * time.Hour)
	return CalendarEvent{
		ID:          medication.ID,
		EventType:   EventTypeMedication,
		Title:       fmt.Sprintf("Medication: %s - %s", medication.Name, petName),
		Description: fmt.Sprintf("%s, %s", medication.Dosage, medication.Instructions),
		EventDate:   dueDay,
		EventTime:   medication.ReminderTime,
		PetID:       medication.PetID,
		PetName:     petName,
		Color:       medicationColor,
	}
}

func VaccinationEvent(record models.HealthRecord, petName string) CalendarEvent {
	return CalendarEvent{
		ID:          record.ID,
		EventType:   EventTypeVaccination,
		Title:       fmt.Sprintf("Vaccination Due: %s - %s", record.Description, petName),
		Description: record.Notes,
		EventDate:   *record.DueDate,
		EventTime:   nil,
		PetID:       record.PetID,
		PetName:     petName,
		Color:       vaccinationColor,
	}
}

// BuildCalendarEvents projects the already-filtered sources into the uniform
// event shape and orders them. Callers derive any per-pet counts from the
// same filtered slices so lists and summaries can never diverge.
func BuildCalendarEvents(
	appointments []models.Appointment,
	medications []models.Medication,
	vaccinations []models.HealthRecord,
	petNames map[uint]string,
) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(appointments)+len(medications)+len(vaccinations))
	for _, appointment := range appointments {
		events = append(events, AppointmentEvent(appointment, petNames[appointment.PetID]))
	}
	for _, medication := range medications {
		events = append(events, MedicationEvent(medication, petNames[medication.PetID]))
	}
	for _, vaccination := range vaccinations {
		events = append(events, VaccinationEvent(vaccination, petNames[vaccination.PetID]))
	}
	SortCalendarEvents(events)
	return events
}

// SortCalendarEvents orders ascending by event date, then by event time; at
// equal dates, events without a time sort before timed events.
func SortCalendarEvents(events []CalendarEvent) {
	sort.SliceStable(events, func(left, right int) bool {
		if !events[left].EventDate.Equal(events[right].EventDate) {
			return events[left].EventDate.Before(events[right].EventDate)
		}
		leftTime, rightTime := events[left].EventTime, events[right].EventTime
		if leftTime == nil {
			return rightTime != nil
		}
		if rightTime == nil {
			return false
		}
		return *leftTime < *rightTime
	})
}
