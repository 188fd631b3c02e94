package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type vaccinationInput struct {
	PetID          uint       `json:"petId" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	RecordDate     time.Time  `json:"recordDate" validate:"required"`
	DueDate        *time.Time `json:"dueDate"`
	VeterinarianID *uint      `json:"veterinarianId"`
	Notes          string     `json:"notes"`
}

const defaultUpcomingDays = 30

func upcomingDaysAhead(c *fiber.Ctx) int {
	daysAhead, err := strconv.Atoi(c.Query("daysAhead", strconv.Itoa(defaultUpcomingDays)))
	if err != nil || daysAhead <= 0 {
		return defaultUpcomingDays
	}
	return daysAhead
}

func (handler *Handler) ListPetVaccinations(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	records, err := handler.repositories.HealthRecords.ListVaccinations([]uint{petID})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newHealthRecordListResponse(records))
}

func (handler *Handler) GetVaccination(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid vaccination id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if !record.IsVaccination() {
		return serviceError(c, services.ErrNotFound)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newHealthRecordResponse(record))
}

func (handler *Handler) CreateVaccination(c *fiber.Ctx) error {
	var input vaccinationInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, input.PetID, services.OpWriteClinical); err != nil {
		return serviceError(c, err)
	}
	if input.VeterinarianID != nil {
		if _, err := handler.repositories.Veterinarians.FindByID(*input.VeterinarianID); err != nil {
			return serviceError(c, err)
		}
	}

	record := models.HealthRecord{
		PetID:          input.PetID,
		RecordType:     models.RecordTypeVaccination,
		Description:    input.Description,
		RecordDate:     input.RecordDate,
		DueDate:        input.DueDate,
		VeterinarianID: input.VeterinarianID,
		Notes:          input.Notes,
	}
	if err := handler.repositories.HealthRecords.Create(&record); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newHealthRecordResponse(record))
}

func (handler *Handler) UpdateVaccination(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid vaccination id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if !record.IsVaccination() {
		return serviceError(c, services.ErrNotFound)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpWriteClinical); err != nil {
		return serviceError(c, err)
	}

	var input vaccinationInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	record.Description = input.Description
	record.RecordDate = input.RecordDate
	record.DueDate = input.DueDate
	record.VeterinarianID = input.VeterinarianID
	record.Notes = input.Notes
	record.Veterinarian = nil
	if err := handler.repositories.HealthRecords.Save(&record); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newHealthRecordResponse(record))
}

func (handler *Handler) DeleteVaccination(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid vaccination id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if !record.IsVaccination() {
		return serviceError(c, services.ErrNotFound)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpWriteClinical); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.HealthRecords.Delete(recordID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListPetUpcomingVaccinations(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return handler.respondUpcomingVaccinations(c, []uint{petID})
}

// ListUpcomingVaccinations covers every pet for admins and vets, the
// caller's own pets otherwise.
func (handler *Handler) ListUpcomingVaccinations(c *fiber.Ctx) error {
	principal, err := handler.currentPrincipal(c)
	if err != nil {
		return serviceError(c, err)
	}

	var pets []models.Pet
	if principal.IsAdmin() || principal.IsVeterinarian() {
		pets, err = handler.repositories.Pets.ListAll()
	} else {
		profile, profileErr := handler.currentProfile(c)
		if profileErr != nil {
			return serviceError(c, profileErr)
		}
		pets, err = handler.repositories.Pets.ListByOwner(profile.ID)
	}
	if err != nil {
		return serviceError(c, err)
	}

	petIDs := make([]uint, 0, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
	}
	return handler.respondUpcomingVaccinations(c, petIDs)
}

func (handler *Handler) respondUpcomingVaccinations(c *fiber.Ctx, petIDs []uint) error {
	if len(petIDs) == 0 {
		return c.JSON(newHealthRecordListResponse(nil))
	}
	records, err := handler.repositories.HealthRecords.ListVaccinations(petIDs)
	if err != nil {
		return serviceError(c, err)
	}

	now := time.Now().UTC()
	window := services.CalendarWindow{Start: now, End: now.AddDate(0, 0, upcomingDaysAhead(c))}
	return c.JSON(newHealthRecordListResponse(services.FilterVaccinationsDue(records, window)))
}
