package api

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/db"
	"github.com/petpalhq/petpal/internal/export"
	"github.com/petpalhq/petpal/internal/identity"
	"github.com/petpalhq/petpal/internal/services"
	"github.com/petpalhq/petpal/internal/storage"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	validate     *validator.Validate

	repositories *db.Repositories
	accounts     *identity.Provider
	ownership    *services.OwnershipService
	weights      *services.WeightTracker
	calendar     *services.CalendarService
	exporter     *services.ExportService
	uploads      *storage.LocalStore
	exportFiles  *export.Store
}

type Options struct {
	SecretKey    string
	CookieSecure bool
	UploadDir    string
	BaseURL      string
}

func NewHandler(database *gorm.DB, options Options) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		secretKey:    []byte(options.SecretKey),
		cookieSecure: options.CookieSecure,
		validate:     validator.New(),
		repositories: repositories,
		accounts:     identity.NewProvider(database),
		ownership:    services.NewOwnershipService(repositories.PetOwners),
		weights:      services.NewWeightTracker(repositories.Weights),
		calendar: services.NewCalendarService(
			repositories.Pets,
			repositories.Appointments,
			repositories.Medications,
			repositories.HealthRecords,
			repositories.Weights,
		),
		exporter: services.NewExportService(
			repositories.PetOwners,
			repositories.HealthRecords,
			repositories.Medications,
			repositories.Appointments,
			repositories.Weights,
			repositories.Feedings,
		),
		uploads:     storage.NewLocalStore(options.UploadDir, options.BaseURL),
		exportFiles: export.NewStore(options.UploadDir, options.BaseURL),
	}
}
