package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/db"
	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	app, handler, database, _ := newTestAppWithUploads(t)
	return app, handler, database
}

func newTestAppWithUploads(t *testing.T) (*fiber.App, *Handler, *gorm.DB, string) {
	t.Helper()

	root := t.TempDir()
	database, err := db.OpenSQLite(filepath.Join(root, "petpal-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	uploadDir := filepath.Join(root, "uploads")
	handler := NewHandler(database, Options{
		SecretKey: "test-secret",
		UploadDir: uploadDir,
		BaseURL:   "http://localhost:8080",
	})
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, database, uploadDir
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, cookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func extractAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("auth cookie was not set")
	return ""
}

// registerTestUser signs up a plain user over HTTP and returns the session
// cookie together with the created profile id.
func registerTestUser(t *testing.T, app *fiber.App, email, firstName string) (string, uint) {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":     email,
		"password":  "StrongPass1",
		"firstName": firstName,
		"lastName":  "Tester",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", email, response.StatusCode)
	}
	cookie := extractAuthCookie(t, response)

	var profile profileResponse
	decodeJSON(t, response, &profile)
	return cookie, profile.ID
}

// registerRoleAccount provisions an account with extra roles directly and
// logs it in over HTTP.
func registerRoleAccount(t *testing.T, app *fiber.App, handler *Handler, email string, roles []string) string {
	t.Helper()

	account, err := handler.accounts.Register(email, "StrongPass1", roles)
	if err != nil {
		t.Fatalf("register %s account: %v", email, err)
	}
	if !account.HasRole(services.RoleAdmin) {
		profile := models.UserProfile{
			FirstName:      "Role",
			LastName:       "Holder",
			Email:          account.Email,
			IdentityUserID: account.ID,
		}
		if err := handler.repositories.Profiles.Create(&profile); err != nil {
			t.Fatalf("create %s profile: %v", email, err)
		}
	}

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "StrongPass1",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected status 200, got %d", email, response.StatusCode)
	}
	return extractAuthCookie(t, response)
}

func createPetForUser(t *testing.T, app *fiber.App, cookie, name string) uint {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/pets", cookie, fiber.Map{
		"name":    name,
		"species": "Dog",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create pet %s: expected status 201, got %d", name, response.StatusCode)
	}
	var pet petResponse
	decodeJSON(t, response, &pet)
	return pet.ID
}

func createTestVeterinarian(t *testing.T, handler *Handler, firstName string) uint {
	t.Helper()

	vet := models.Veterinarian{FirstName: firstName, LastName: "Vetter"}
	if err := handler.repositories.Veterinarians.Create(&vet); err != nil {
		t.Fatalf("create veterinarian: %v", err)
	}
	return vet.ID
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	decodeJSON(t, response, &payload)
	return payload.Error
}
