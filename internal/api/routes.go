package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	user := api.Group("/user", handler.AuthRequired)
	user.Get("/pets", handler.ListUserPets)
	user.Get("/appointments", handler.ListUserAppointments)
	user.Get("/medication-reminders", handler.ListUserMedicationReminders)

	pets := api.Group("/pets", handler.AuthRequired)
	pets.Get("", handler.AdminOnly, handler.ListAllPets)
	pets.Post("", handler.CreatePet)
	pets.Get("/:id<int>", handler.GetPet)
	pets.Put("/:id<int>", handler.UpdatePet)
	pets.Delete("/:id<int>", handler.DeletePet)
	pets.Post("/:id<int>/owners", handler.AddPetOwner)
	pets.Delete("/:petId<int>/owners/:ownerId<int>", handler.RemovePetOwner)
	pets.Put("/:petId<int>/owners/:ownerId<int>/primary", handler.SetPrimaryPetOwner)
	pets.Post("/:id<int>/photo", handler.UploadPetPhoto)
	pets.Get("/:petId<int>/health-records", handler.ListPetHealthRecords)
	pets.Get("/:petId<int>/vaccinations", handler.ListPetVaccinations)
	pets.Get("/:petId<int>/vaccinations/upcoming", handler.ListPetUpcomingVaccinations)
	pets.Get("/:petId<int>/appointments", handler.ListPetAppointments)
	pets.Get("/:petId<int>/medications", handler.ListPetMedications)
	pets.Get("/:petId<int>/weights", handler.ListPetWeights)
	pets.Get("/:petId<int>/weight-history", handler.GetPetWeightHistory)
	pets.Get("/:petId<int>/feeding-schedules", handler.ListPetFeedingSchedules)
	pets.Get("/:petId<int>/dashboard", handler.GetPetDashboard)
	pets.Post("/:petId<int>/export", handler.ExportPet)

	healthRecords := api.Group("/health-records", handler.AuthRequired)
	healthRecords.Get("/:id<int>", handler.GetHealthRecord)
	healthRecords.Post("", handler.CreateHealthRecord)
	healthRecords.Put("/:id<int>", handler.UpdateHealthRecord)
	healthRecords.Delete("/:id<int>", handler.DeleteHealthRecord)
	healthRecords.Post("/:id<int>/documents", handler.UploadHealthRecordDocuments)

	vaccinations := api.Group("/vaccinations", handler.AuthRequired)
	vaccinations.Get("/upcoming", handler.ListUpcomingVaccinations)
	vaccinations.Get("/:id<int>", handler.GetVaccination)
	vaccinations.Post("", handler.CreateVaccination)
	vaccinations.Put("/:id<int>", handler.UpdateVaccination)
	vaccinations.Delete("/:id<int>", handler.DeleteVaccination)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("", handler.AdminOnly, handler.ListAllAppointments)
	appointments.Get("/:id<int>", handler.GetAppointment)
	appointments.Post("", handler.CreateAppointment)
	appointments.Put("/:id<int>", handler.UpdateAppointment)
	appointments.Put("/:id<int>/status", handler.UpdateAppointmentStatus)
	appointments.Delete("/:id<int>", handler.DeleteAppointment)

	medications := api.Group("/medications", handler.AuthRequired)
	medications.Get("/:id<int>", handler.GetMedication)
	medications.Post("", handler.CreateMedication)
	medications.Put("/:id<int>", handler.UpdateMedication)
	medications.Delete("/:id<int>", handler.DeleteMedication)
	medications.Put("/:id<int>/reminder", handler.UpdateMedicationReminder)
	medications.Post("/:id<int>/reminder-sent", handler.AdminOnly, handler.MarkReminderSent)

	weights := api.Group("/weights", handler.AuthRequired)
	weights.Get("/:id<int>", handler.GetWeight)
	weights.Post("", handler.CreateWeight)
	weights.Put("/:id<int>", handler.UpdateWeight)
	weights.Delete("/:id<int>", handler.DeleteWeight)

	feedings := api.Group("/feeding-schedules", handler.AuthRequired)
	feedings.Get("/:id<int>", handler.GetFeedingSchedule)
	feedings.Post("", handler.CreateFeedingSchedule)
	feedings.Put("/:id<int>", handler.UpdateFeedingSchedule)
	feedings.Delete("/:id<int>", handler.DeleteFeedingSchedule)

	careProviders := api.Group("/care-providers", handler.AuthRequired)
	careProviders.Get("", handler.ListCareProviders)
	careProviders.Get("/:id<int>", handler.GetCareProvider)
	careProviders.Post("", handler.CreateCareProvider)
	careProviders.Put("/:id<int>", handler.UpdateCareProvider)
	careProviders.Delete("/:id<int>", handler.DeleteCareProvider)

	veterinarians := api.Group("/veterinarians", handler.AuthRequired)
	veterinarians.Get("", handler.ListVeterinarians)
	veterinarians.Get("/:id<int>", handler.GetVeterinarian)
	veterinarians.Get("/:id<int>/appointments", handler.ListVeterinarianAppointments)
	veterinarians.Post("", handler.AdminOnly, handler.CreateVeterinarian)
	veterinarians.Put("/:id<int>", handler.AdminOnly, handler.UpdateVeterinarian)
	veterinarians.Delete("/:id<int>", handler.AdminOnly, handler.DeleteVeterinarian)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/notifications", handler.GetNotificationSettings)
	settings.Put("/notifications", handler.UpdateNotificationSettings)
	settings.Get("/theme", handler.GetTheme)
	settings.Put("/theme", handler.UpdateTheme)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("", handler.GetUserDashboard)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("", handler.GetCalendar)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
