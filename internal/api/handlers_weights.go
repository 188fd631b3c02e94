package api

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type weightInput struct {
	PetID       uint       `json:"petId" validate:"required"`
	WeightValue float64    `json:"weightValue" validate:"required,gt=0"`
	WeightUnit  string     `json:"weightUnit"`
	Date        *time.Time `json:"date"`
	Notes       string     `json:"notes"`
}

func (handler *Handler) ListPetWeights(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	weights, err := handler.repositories.Weights.ListForPet(petID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newWeightListResponse(weights))
}

func (handler *Handler) GetWeight(c *fiber.Ctx) error {
	weightID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid weight id")
	}
	weight, err := handler.repositories.Weights.GetWeight(weightID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, weight.PetID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newWeightResponse(weight))
}

func (handler *Handler) CreateWeight(c *fiber.Ctx) error {
	var input weightInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, input.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	recordedAt := time.Now().UTC()
	if input.Date != nil {
		recordedAt = *input.Date
	}
	unit := input.WeightUnit
	if unit == "" {
		unit = "kg"
	}

	weight := models.Weight{
		PetID:       input.PetID,
		WeightValue: input.WeightValue,
		WeightUnit:  unit,
		Date:        recordedAt,
		Notes:       input.Notes,
	}
	if err := handler.weights.RecordWeight(&weight); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newWeightResponse(weight))
}

func (handler *Handler) UpdateWeight(c *fiber.Ctx) error {
	weightID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid weight id")
	}
	weight, err := handler.repositories.Weights.GetWeight(weightID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, weight.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	var input weightInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	weight.WeightValue = input.WeightValue
	if input.WeightUnit != "" {
		weight.WeightUnit = input.WeightUnit
	}
	if input.Date != nil {
		weight.Date = *input.Date
	}
	weight.Notes = input.Notes
	if err := handler.weights.UpdateWeight(&weight); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newWeightResponse(weight))
}

func (handler *Handler) DeleteWeight(c *fiber.Ctx) error {
	weightID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid weight id")
	}
	weight, err := handler.repositories.Weights.GetWeight(weightID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, weight.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}
	if err := handler.weights.DeleteWeight(weightID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPetWeightHistory returns the pet's weight entries oldest first, ready
// for charting.
func (handler *Handler) GetPetWeightHistory(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	weights, err := handler.repositories.Weights.ListForPet(petID)
	if err != nil {
		return serviceError(c, err)
	}
	sort.SliceStable(weights, func(left, right int) bool {
		if !weights[left].Date.Equal(weights[right].Date) {
			return weights[left].Date.Before(weights[right].Date)
		}
		return weights[left].ID < weights[right].ID
	})
	return c.JSON(newWeightListResponse(weights))
}
