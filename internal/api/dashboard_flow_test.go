package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/services"
)

// seedDashboardData creates a pet with one upcoming appointment, one active
// reminder-enabled medication and one vaccination due within a month.
func seedDashboardData(t *testing.T, app *fiber.App, handler *Handler, cookie string) uint {
	t.Helper()

	petID := createPetForUser(t, app, cookie, "Buddy")
	vetID := createTestVeterinarian(t, handler, "Priya")

	appointmentDate := time.Now().UTC().AddDate(0, 0, 7).Format(time.RFC3339)
	response := jsonRequest(t, app, http.MethodPost, "/api/appointments", cookie, fiber.Map{
		"petId":           petID,
		"veterinarianId":  vetID,
		"appointmentDate": appointmentDate,
		"appointmentTime": "10:00",
		"appointmentType": "Checkup",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create appointment: expected status 201, got %d", response.StatusCode)
	}
	response.Body.Close()

	createMedicationWithReminder(t, app, cookie, petID)

	vaccinationDue := time.Now().UTC().AddDate(0, 0, 14).Format(time.RFC3339)
	response = jsonRequest(t, app, http.MethodPost, "/api/vaccinations", cookie, fiber.Map{
		"petId":       petID,
		"description": "Rabies",
		"recordDate":  "2026-01-10T00:00:00Z",
		"dueDate":     vaccinationDue,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create vaccination: expected status 201, got %d", response.StatusCode)
	}
	response.Body.Close()

	return petID
}

func TestGetUserDashboard(t *testing.T) {
	app, handler, _ := newTestApp(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodGet, "/api/dashboard", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: expected status 200, got %d", response.StatusCode)
	}
	var dashboard services.UserDashboard
	decodeJSON(t, response, &dashboard)

	if dashboard.TotalPets != 1 || len(dashboard.Pets) != 1 {
		t.Fatalf("expected one pet on the dashboard, got %#v", dashboard.Pets)
	}
	if dashboard.TotalUpcomingAppointments != 1 {
		t.Fatalf("expected 1 upcoming appointment, got %d", dashboard.TotalUpcomingAppointments)
	}
	if dashboard.TotalActiveMedications != 1 {
		t.Fatalf("expected 1 active medication, got %d", dashboard.TotalActiveMedications)
	}
	if dashboard.TotalUpcomingVaccinations != 1 {
		t.Fatalf("expected 1 upcoming vaccination, got %d", dashboard.TotalUpcomingVaccinations)
	}

	summary := dashboard.Pets[0]
	if summary.PetID != petID || summary.UpcomingAppointmentsCount != 1 ||
		summary.ActiveMedicationsCount != 1 || summary.UpcomingVaccinationsCount != 1 {
		t.Fatalf("unexpected pet summary: %#v", summary)
	}
	if len(dashboard.UpcomingEvents) != 3 {
		t.Fatalf("expected 3 upcoming events, got %d", len(dashboard.UpcomingEvents))
	}
}

func TestGetPetDashboard(t *testing.T) {
	app, handler, _ := newTestApp(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/pets/%d/dashboard", petID), cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("pet dashboard: expected status 200, got %d", response.StatusCode)
	}
	var dashboard services.PetDashboard
	decodeJSON(t, response, &dashboard)

	if dashboard.PetID != petID || dashboard.PetName != "Buddy" {
		t.Fatalf("unexpected pet header: %#v", dashboard)
	}
	if dashboard.UpcomingAppointmentsCount != 1 || len(dashboard.UpcomingAppointments) != 1 {
		t.Fatalf("expected one upcoming appointment, got %#v", dashboard.UpcomingAppointments)
	}
	if dashboard.UpcomingAppointments[0].VeterinarianName != "Priya Vetter" {
		t.Fatalf("expected the veterinarian name to resolve, got %q", dashboard.UpcomingAppointments[0].VeterinarianName)
	}
	if dashboard.ActiveMedicationsCount != 1 {
		t.Fatalf("expected one active medication, got %d", dashboard.ActiveMedicationsCount)
	}
	// The vaccination shows both as upcoming and under recent records.
	if dashboard.UpcomingVaccinationsCount != 1 {
		t.Fatalf("expected one upcoming vaccination, got %d", dashboard.UpcomingVaccinationsCount)
	}
	if len(dashboard.RecentHealthRecords) != 1 {
		t.Fatalf("expected one recent health record, got %d", len(dashboard.RecentHealthRecords))
	}
}

func TestGetCalendarWindows(t *testing.T) {
	app, handler, _ := newTestApp(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodGet, "/api/calendar", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("calendar: expected status 200, got %d", response.StatusCode)
	}
	var events []services.CalendarEvent
	decodeJSON(t, response, &events)
	if len(events) != 3 {
		t.Fatalf("expected 3 events in the default window, got %d", len(events))
	}
	for index := 1; index < len(events); index++ {
		if events[index].EventDate.Before(events[index-1].EventDate) {
			t.Fatalf("events out of order: %v before %v", events[index].EventDate, events[index-1].EventDate)
		}
	}

	// A window entirely before the seeded data excludes everything.
	response = jsonRequest(t, app, http.MethodGet, "/api/calendar?startDate=2020-01-01&endDate=2020-01-02", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("calendar with window: expected status 200, got %d", response.StatusCode)
	}
	var narrowed []services.CalendarEvent
	decodeJSON(t, response, &narrowed)
	if len(narrowed) != 0 {
		t.Fatalf("expected no events in a past window, got %d", len(narrowed))
	}

	response = jsonRequest(t, app, http.MethodGet, "/api/calendar?startDate=2026-06-10&endDate=2026-06-01", cookie, nil)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an inverted window, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodGet, "/api/calendar?startDate=not-a-date", cookie, nil)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a malformed date, got %d", response.StatusCode)
	}
}
