package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type medicationInput struct {
	PetID             uint       `json:"petId" validate:"required"`
	Name              string     `json:"name" validate:"required"`
	Dosage            string     `json:"dosage"`
	Frequency         string     `json:"frequency"`
	StartDate         time.Time  `json:"startDate" validate:"required"`
	EndDate           *time.Time `json:"endDate"`
	Instructions      string     `json:"instructions"`
	Prescriber        string     `json:"prescriber"`
	IsActive          *bool      `json:"isActive"`
	ReminderEnabled   bool       `json:"reminderEnabled"`
	ReminderFrequency string     `json:"reminderFrequency"`
	ReminderTime      *string    `json:"reminderTime"`
}

type reminderInput struct {
	ReminderEnabled   bool    `json:"reminderEnabled"`
	ReminderFrequency string  `json:"reminderFrequency"`
	ReminderTime      *string `json:"reminderTime"`
}

func (handler *Handler) ListPetMedications(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	medications, err := handler.repositories.Medications.ListForPets([]uint{petID})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newMedicationListResponse(medications))
}

func (handler *Handler) GetMedication(c *fiber.Ctx) error {
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	medication, err := handler.repositories.Medications.FindByID(medicationID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, medication.PetID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newMedicationResponse(medication))
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	var input medicationInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, input.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	medication := models.Medication{
		PetID:             input.PetID,
		Name:              input.Name,
		Dosage:            input.Dosage,
		Frequency:         input.Frequency,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Instructions:      input.Instructions,
		Prescriber:        input.Prescriber,
		IsActive:          true,
		ReminderEnabled:   input.ReminderEnabled,
		ReminderFrequency: input.ReminderFrequency,
		ReminderTime:      input.ReminderTime,
	}
	if input.IsActive != nil {
		medication.IsActive = *input.IsActive
	}
	if err := services.RecomputeReminderOnSave(&medication, time.Now()); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Medications.Create(&medication); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newMedicationResponse(medication))
}

func (handler *Handler) UpdateMedication(c *fiber.Ctx) error {
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	medication, err := handler.repositories.Medications.FindByID(medicationID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, medication.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	var input medicationInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	medication.Name = input.Name
	medication.Dosage = input.Dosage
	medication.Frequency = input.Frequency
	medication.StartDate = input.StartDate
	medication.EndDate = input.EndDate
	medication.Instructions = input.Instructions
	medication.Prescriber = input.Prescriber
	if input.IsActive != nil {
		medication.IsActive = *input.IsActive
	}
	medication.ReminderEnabled = input.ReminderEnabled
	medication.ReminderFrequency = input.ReminderFrequency
	medication.ReminderTime = input.ReminderTime
	if err := services.RecomputeReminderOnSave(&medication, time.Now()); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Medications.Save(&medication); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newMedicationResponse(medication))
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	medication, err := handler.repositories.Medications.FindByID(medicationID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, medication.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Medications.Delete(medicationID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateMedicationReminder changes only the reminder settings and recomputes
// the schedule.
func (handler *Handler) UpdateMedicationReminder(c *fiber.Ctx) error {
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	medication, err := handler.repositories.Medications.FindByID(medicationID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, medication.PetID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	var input reminderInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	medication.ReminderEnabled = input.ReminderEnabled
	medication.ReminderFrequency = input.ReminderFrequency
	medication.ReminderTime = input.ReminderTime
	if err := services.RecomputeReminderOnSave(&medication, time.Now()); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Medications.UpdateReminder(&medication); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newMedicationResponse(medication))
}

// MarkReminderSent acknowledges a delivered reminder and advances the next
// due instant. Admin only.
func (handler *Handler) MarkReminderSent(c *fiber.Ctx) error {
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}
	medication, err := handler.repositories.Medications.FindByID(medicationID)
	if err != nil {
		return serviceError(c, err)
	}
	if err := services.AcknowledgeReminderSent(&medication, time.Now()); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Medications.UpdateReminder(&medication); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newMedicationResponse(medication))
}

// ListUserMedicationReminders returns active reminder-enabled medications
// across the caller's pets.
func (handler *Handler) ListUserMedicationReminders(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	pets, err := handler.repositories.Pets.ListByOwner(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	petIDs := make([]uint, 0, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
	}
	if len(petIDs) == 0 {
		return c.JSON(newMedicationListResponse(nil))
	}

	medications, err := handler.repositories.Medications.ListForPets(petIDs)
	if err != nil {
		return serviceError(c, err)
	}
	reminders := make([]models.Medication, 0, len(medications))
	for _, medication := range medications {
		if medication.IsActive && medication.ReminderEnabled {
			reminders = append(reminders, medication)
		}
	}
	return c.JSON(newMedicationListResponse(reminders))
}
