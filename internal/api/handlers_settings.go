package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
)

type notificationSettingsInput struct {
	EmailNotificationsEnabled bool `json:"emailNotificationsEnabled"`
	PushNotificationsEnabled  bool `json:"pushNotificationsEnabled"`
	AppointmentReminders      bool `json:"appointmentReminders"`
	MedicationReminders       bool `json:"medicationReminders"`
	VaccinationReminders      bool `json:"vaccinationReminders"`
	WeightReminders           bool `json:"weightReminders"`
	FeedingReminders          bool `json:"feedingReminders"`
	ReminderLeadTime          int  `json:"reminderLeadTime" validate:"gte=0"`
}

type themeInput struct {
	ThemePreference string `json:"themePreference" validate:"required,oneof=light dark"`
}

func (handler *Handler) GetNotificationSettings(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	settings, err := handler.repositories.Notifications.FindOrCreate(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newNotificationSettingsResponse(settings))
}

func (handler *Handler) UpdateNotificationSettings(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	var input notificationSettingsInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	settings, err := handler.repositories.Notifications.FindOrCreate(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	settings.EmailNotificationsEnabled = input.EmailNotificationsEnabled
	settings.PushNotificationsEnabled = input.PushNotificationsEnabled
	settings.AppointmentReminders = input.AppointmentReminders
	settings.MedicationReminders = input.MedicationReminders
	settings.VaccinationReminders = input.VaccinationReminders
	settings.WeightReminders = input.WeightReminders
	settings.FeedingReminders = input.FeedingReminders
	if input.ReminderLeadTime > 0 {
		settings.ReminderLeadTime = input.ReminderLeadTime
	}
	if err := handler.repositories.Notifications.Save(&settings); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newNotificationSettingsResponse(settings))
}

func (handler *Handler) GetTheme(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	theme := profile.ThemePreference
	if theme == "" {
		theme = models.ThemeLight
	}
	return c.JSON(fiber.Map{"themePreference": theme})
}

func (handler *Handler) UpdateTheme(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	var input themeInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Profiles.UpdateTheme(profile.ID, input.ThemePreference); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"themePreference": input.ThemePreference})
}
