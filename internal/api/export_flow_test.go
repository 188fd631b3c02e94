package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/export"
)

func TestExportPetWritesCSV(t *testing.T) {
	app, handler, _, uploadDir := newTestAppWithUploads(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodPost, fmt.Sprintf("/api/pets/%d/export", petID), cookie, fiber.Map{
		"format": "CSV",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export: expected status 200, got %d", response.StatusCode)
	}
	var result export.Result
	decodeJSON(t, response, &result)

	if !result.Success || result.Format != "CSV" {
		t.Fatalf("unexpected export result: %#v", result)
	}
	if !strings.HasPrefix(result.FileName, fmt.Sprintf("pet_%d_", petID)) || !strings.HasSuffix(result.FileName, ".csv") {
		t.Fatalf("unexpected file name %q", result.FileName)
	}
	if !strings.HasPrefix(result.FileURL, "http://localhost:8080/exports/") {
		t.Fatalf("unexpected file URL %q", result.FileURL)
	}

	written := filepath.Join(uploadDir, "exports", result.FileName)
	content, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	for _, heading := range []string{"PET INFORMATION", "OWNERS", "HEALTH RECORDS", "MEDICATIONS", "APPOINTMENTS"} {
		if !strings.Contains(string(content), heading) {
			t.Fatalf("expected section %q in the export:\n%s", heading, content)
		}
	}
	if !strings.Contains(string(content), "Buddy") {
		t.Fatalf("expected the pet name in the export:\n%s", content)
	}
}

func TestExportPetSingleSection(t *testing.T) {
	app, handler, _, uploadDir := newTestAppWithUploads(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodPost, fmt.Sprintf("/api/pets/%d/export", petID), cookie, fiber.Map{
		"format":   "CSV",
		"sections": []string{"Medications"},
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export: expected status 200, got %d", response.StatusCode)
	}
	var result export.Result
	decodeJSON(t, response, &result)

	content, err := os.ReadFile(filepath.Join(uploadDir, "exports", result.FileName))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(content), "MEDICATIONS") {
		t.Fatalf("expected the medications section:\n%s", content)
	}
	for _, heading := range []string{"HEALTH RECORDS", "APPOINTMENTS", "WEIGHT RECORDS"} {
		if strings.Contains(string(content), heading) {
			t.Fatalf("expected section %q to be excluded:\n%s", heading, content)
		}
	}
}

func TestExportPetSectionSubset(t *testing.T) {
	app, handler, _, uploadDir := newTestAppWithUploads(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodPost, fmt.Sprintf("/api/pets/%d/export", petID), cookie, fiber.Map{
		"format":   "CSV",
		"sections": []string{"HealthRecords", "Appointments"},
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export: expected status 200, got %d", response.StatusCode)
	}
	var result export.Result
	decodeJSON(t, response, &result)

	content, err := os.ReadFile(filepath.Join(uploadDir, "exports", result.FileName))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	for _, heading := range []string{"HEALTH RECORDS", "APPOINTMENTS"} {
		if !strings.Contains(string(content), heading) {
			t.Fatalf("expected section %q in the export:\n%s", heading, content)
		}
	}
	for _, heading := range []string{"MEDICATIONS", "WEIGHT RECORDS", "FEEDING SCHEDULES"} {
		if strings.Contains(string(content), heading) {
			t.Fatalf("expected section %q to be excluded:\n%s", heading, content)
		}
	}
}

func TestExportPetValidation(t *testing.T) {
	app, handler, _, _ := newTestAppWithUploads(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	strangerCookie, _ := registerTestUser(t, app, "stranger@example.com", "Stranger")
	petID := seedDashboardData(t, app, handler, cookie)
	exportPath := fmt.Sprintf("/api/pets/%d/export", petID)

	response := jsonRequest(t, app, http.MethodPost, exportPath, cookie, fiber.Map{
		"format": "XLSX",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unsupported format, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, exportPath, cookie, fiber.Map{
		"format":   "CSV",
		"sections": []string{"Grooming"},
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unknown section, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, exportPath, cookie, fiber.Map{
		"format":   "CSV",
		"sections": []string{"HealthRecords", "Grooming"},
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 when any listed section is unknown, got %d", response.StatusCode)
	}

	response = jsonRequest(t, app, http.MethodPost, exportPath, strangerCookie, fiber.Map{
		"format": "CSV",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 for a stranger, got %d", response.StatusCode)
	}
}

func TestExportPetPDFPlaceholder(t *testing.T) {
	app, handler, _, _ := newTestAppWithUploads(t)
	cookie, _ := registerTestUser(t, app, "owner@example.com", "Owner")
	petID := seedDashboardData(t, app, handler, cookie)

	response := jsonRequest(t, app, http.MethodPost, fmt.Sprintf("/api/pets/%d/export", petID), cookie, fiber.Map{
		"format": "pdf",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export: expected status 200, got %d", response.StatusCode)
	}
	var result export.Result
	decodeJSON(t, response, &result)
	if result.Format != "PDF" || !strings.HasSuffix(result.FileName, ".pdf") {
		t.Fatalf("unexpected PDF result: %#v", result)
	}
}
