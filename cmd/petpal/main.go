package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/api"
	"github.com/petpalhq/petpal/internal/cli"
	"github.com/petpalhq/petpal/internal/config"
	"github.com/petpalhq/petpal/internal/db"
	"github.com/petpalhq/petpal/internal/identity"
	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: petpal reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(cfg.DBPath, os.Args[2]); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if err := seedAdmin(database, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	handler := api.NewHandler(database, api.Options{
		SecretKey:    cfg.SecretKey,
		CookieSecure: cfg.CookieSecure,
		UploadDir:    cfg.UploadDir,
		BaseURL:      cfg.BaseURL,
	})

	app := fiber.New(fiber.Config{
		AppName:               "PetPal",
		DisableStartupMessage: true,
		BodyLimit:             25 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Static("/pets", cfg.UploadDir+"/pets")
	app.Static("/health-documents", cfg.UploadDir+"/health-documents")
	app.Static("/exports", cfg.UploadDir+"/exports")

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("PetPal listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// seedAdmin provisions the initial admin account when credentials are
// configured and the email is not registered yet.
func seedAdmin(database *gorm.DB, cfg config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}
	provider := identity.NewProvider(database)
	account, err := provider.Register(cfg.AdminEmail, cfg.AdminPassword, []string{services.RoleAdmin})
	if errors.Is(err, identity.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}

	profile := models.UserProfile{
		FirstName:      "Admin",
		LastName:       "User",
		Email:          account.Email,
		IdentityUserID: account.ID,
	}
	return database.Create(&profile).Error
}
