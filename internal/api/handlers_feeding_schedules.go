package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type feedingScheduleInput struct {
	PetID       uint   `json:"petId" validate:"required"`
	FeedingTime string `json:"feedingTime" validate:"required"`
	FoodType    string `json:"foodType" validate:"required"`
	Portion     string `json:"portion"`
	Notes       string `json:"notes"`
	IsActive    *bool  `json:"isActive"`
}

func (handler *Handler) ListPetFeedingSchedules(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	schedules, err := handler.repositories.Feedings.ListForPet(petID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newFeedingScheduleListResponse(schedules))
}

func (handler *Handler) GetFeedingSchedule(c *fiber.Ctx) error {
	scheduleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}
	schedule, err := handler.repositories.Feedings.FindByID(scheduleID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, schedule.PetID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newFeedingScheduleResponse(schedule))
}

func (handler *Handler) CreateFeedingSchedule(c *fiber.Ctx) error {
	var input feedingScheduleInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := services.ParseTimeOfDay(input.FeedingTime); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, input.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	schedule := models.FeedingSchedule{
		PetID:       input.PetID,
		FeedingTime: input.FeedingTime,
		FoodType:    input.FoodType,
		Portion:     input.Portion,
		Notes:       input.Notes,
		IsActive:    true,
	}
	if input.IsActive != nil {
		schedule.IsActive = *input.IsActive
	}
	if err := handler.repositories.Feedings.Create(&schedule); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newFeedingScheduleResponse(schedule))
}

func (handler *Handler) UpdateFeedingSchedule(c *fiber.Ctx) error {
	scheduleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}
	schedule, err := handler.repositories.Feedings.FindByID(scheduleID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, schedule.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	var input feedingScheduleInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := services.ParseTimeOfDay(input.FeedingTime); err != nil {
		return serviceError(c, err)
	}

	schedule.FeedingTime = input.FeedingTime
	schedule.FoodType = input.FoodType
	schedule.Portion = input.Portion
	schedule.Notes = input.Notes
	if input.IsActive != nil {
		schedule.IsActive = *input.IsActive
	}
	if err := handler.repositories.Feedings.Save(&schedule); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newFeedingScheduleResponse(schedule))
}

func (handler *Handler) DeleteFeedingSchedule(c *fiber.Ctx) error {
	scheduleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid schedule id")
	}
	schedule, err := handler.repositories.Feedings.FindByID(scheduleID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, schedule.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Feedings.Delete(scheduleID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
