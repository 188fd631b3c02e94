package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/services"
)

const calendarDateLayout = "2006-01-02"

func (handler *Handler) GetUserDashboard(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	dashboard, err := handler.calendar.BuildUserDashboard(profile, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dashboard)
}

func (handler *Handler) GetPetDashboard(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	pet, err := handler.authorizePet(c, petID, services.OpReadPetRecords)
	if err != nil {
		return serviceError(c, err)
	}
	dashboard, err := handler.calendar.BuildPetDashboard(pet, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dashboard)
}

// GetCalendar merges appointments, medication reminders and vaccinations
// due for the caller's pets. The window defaults to three months ahead.
func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	window := services.DefaultCalendarWindow(time.Now())
	if raw := c.Query("startDate"); raw != "" {
		start, err := time.Parse(calendarDateLayout, raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid startDate")
		}
		window.Start = start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := time.Parse(calendarDateLayout, raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid endDate")
		}
		window.End = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if window.End.Before(window.Start) {
		return apiError(c, fiber.StatusBadRequest, "endDate before startDate")
	}

	pets, err := handler.repositories.Pets.ListByOwner(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	events, err := handler.calendar.BuildCalendar(pets, window)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(events)
}
