package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/services"
)

type feedingScheduleTestResponse struct {
	ID          uint   `json:"id"`
	PetID       uint   `json:"petId"`
	FeedingTime string `json:"feedingTime"`
	FoodType    string `json:"foodType"`
	Portion     string `json:"portion"`
	IsActive    bool   `json:"isActive"`
}

func TestFeedingScheduleLifecycle(t *testing.T) {
	app, _, _ := newTestApp(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := createPetForUser(t, app, cookie, "Buddy")

	response := jsonRequest(t, app, http.MethodPost, "/api/feeding-schedules", cookie, fiber.Map{
		"petId":       petID,
		"feedingTime": "07:30",
		"foodType":    "Dry kibble",
		"portion":     "1 cup",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", response.StatusCode, readAPIError(t, response))
	}
	var created feedingScheduleTestResponse
	decodeJSON(t, response, &created)
	if created.FeedingTime != "07:30" || created.FoodType != "Dry kibble" {
		t.Fatalf("unexpected schedule %+v", created)
	}
	if !created.IsActive {
		t.Fatalf("expected a new schedule to be active")
	}

	response = jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/pets/%d/feeding-schedules", petID), cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var listed []feedingScheduleTestResponse
	decodeJSON(t, response, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the created schedule in the pet listing, got %+v", listed)
	}

	response = jsonRequest(t, app, http.MethodPut, fmt.Sprintf("/api/feeding-schedules/%d", created.ID), cookie, fiber.Map{
		"petId":       petID,
		"feedingTime": "18:00",
		"foodType":    "Wet food",
		"isActive":    false,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var updated feedingScheduleTestResponse
	decodeJSON(t, response, &updated)
	if updated.FeedingTime != "18:00" || updated.IsActive {
		t.Fatalf("expected an inactive evening schedule, got %+v", updated)
	}

	response = jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/feeding-schedules/%d", created.ID), cookie, nil)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}
	response = jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/feeding-schedules/%d", created.ID), cookie, nil)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 after deletion, got %d", response.StatusCode)
	}
}

func TestFeedingScheduleRules(t *testing.T) {
	app, handler, _ := newTestApp(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	vetCookie := registerRoleAccount(t, app, handler, "vet@example.com", []string{services.RoleVeterinarian})
	petID := createPetForUser(t, app, cookie, "Buddy")

	response := jsonRequest(t, app, http.MethodPost, "/api/feeding-schedules", cookie, fiber.Map{
		"petId":       petID,
		"feedingTime": "25:00",
		"foodType":    "Dry kibble",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an invalid feeding time, got %d", response.StatusCode)
	}

	// Feeding logistics stay with owners, even for veterinarians.
	response = jsonRequest(t, app, http.MethodPost, "/api/feeding-schedules", vetCookie, fiber.Map{
		"petId":       petID,
		"feedingTime": "08:00",
		"foodType":    "Prescription diet",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for a veterinarian, got %d", response.StatusCode)
	}

	strangerCookie, _ := registerTestUser(t, app, "stranger@example.com", "Stranger")
	response = jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/pets/%d/feeding-schedules", petID), strangerCookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for a non-owner, got %d", response.StatusCode)
	}
}

func TestCareProviderIdentityScoping(t *testing.T) {
	app, handler, _ := newTestApp(t)
	ownerCookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	otherCookie, _ := registerTestUser(t, app, "other@example.com", "Other")
	adminCookie := registerRoleAccount(t, app, handler, "admin@example.com", []string{services.RoleAdmin, services.RoleUser})

	response := jsonRequest(t, app, http.MethodPost, "/api/care-providers", ownerCookie, fiber.Map{
		"name":  "Happy Tails Grooming",
		"type":  "Groomer",
		"phone": "555-0142",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", response.StatusCode, readAPIError(t, response))
	}
	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	decodeJSON(t, response, &created)
	providerPath := fmt.Sprintf("/api/care-providers/%d", created.ID)

	response = jsonRequest(t, app, http.MethodGet, "/api/care-providers", ownerCookie, nil)
	var ownProviders []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, response, &ownProviders)
	if len(ownProviders) != 1 || ownProviders[0].ID != created.ID {
		t.Fatalf("expected the creator to list exactly their provider, got %+v", ownProviders)
	}

	// Another identity cannot see or touch the entry, and its own listing
	// stays empty.
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var payload any
		if method == http.MethodPut {
			payload = fiber.Map{"name": "Hijacked"}
		}
		response = jsonRequest(t, app, method, providerPath, otherCookie, payload)
		if response.StatusCode != http.StatusForbidden {
			t.Fatalf("%s: expected status 403 for another identity, got %d", method, response.StatusCode)
		}
	}
	response = jsonRequest(t, app, http.MethodGet, "/api/care-providers", otherCookie, nil)
	var otherProviders []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, response, &otherProviders)
	if len(otherProviders) != 0 {
		t.Fatalf("expected an empty listing for another identity, got %+v", otherProviders)
	}

	response = jsonRequest(t, app, http.MethodGet, providerPath, adminCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for an admin, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodDelete, providerPath, ownerCookie, nil)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}
	response = jsonRequest(t, app, http.MethodGet, providerPath, ownerCookie, nil)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 after deletion, got %d", response.StatusCode)
	}
}

func TestCreateCareProviderValidation(t *testing.T) {
	app, _, _ := newTestApp(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")

	response := jsonRequest(t, app, http.MethodPost, "/api/care-providers", cookie, fiber.Map{
		"type": "Boarding",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 without a name, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, "/api/care-providers", cookie, fiber.Map{
		"name":  "Paws Inn",
		"email": "not-an-email",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a malformed email, got %d", response.StatusCode)
	}
}
