package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBPath        string
	SecretKey     string
	UploadDir     string
	BaseURL       string
	CookieSecure  bool
	AdminEmail    string
	AdminPassword string
}

// Load reads a .env file when present, then the environment, falling back
// to development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", filepath.Join("data", "petpal.db")),
		SecretKey:     getEnv("SECRET_KEY", "change_me_in_production"),
		UploadDir:     getEnv("UPLOAD_DIR", "wwwroot"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@petpal.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
