package api

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type healthRecordInput struct {
	PetID          uint       `json:"petId" validate:"required"`
	RecordType     string     `json:"recordType" validate:"required"`
	Description    string     `json:"description"`
	RecordDate     time.Time  `json:"recordDate" validate:"required"`
	DueDate        *time.Time `json:"dueDate"`
	VeterinarianID *uint      `json:"veterinarianId"`
	Notes          string     `json:"notes"`
}

func (handler *Handler) ListPetHealthRecords(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	records, err := handler.repositories.HealthRecords.ListForPets([]uint{petID})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newHealthRecordListResponse(records))
}

func (handler *Handler) GetHealthRecord(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newHealthRecordResponse(record))
}

func (handler *Handler) CreateHealthRecord(c *fiber.Ctx) error {
	var input healthRecordInput
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
		RecordType:     input.RecordType,
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

func (handler *Handler) UpdateHealthRecord(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpWriteClinical); err != nil {
		return serviceError(c, err)
	}

	var input healthRecordInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	record.RecordType = input.RecordType
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

func (handler *Handler) DeleteHealthRecord(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpWriteClinical); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.HealthRecords.Delete(recordID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadHealthRecordDocuments accepts one or more files under the "files"
// field and appends their URLs to the record's attachments.
func (handler *Handler) UploadHealthRecordDocuments(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}
	record, err := handler.repositories.HealthRecords.FindByID(recordID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, record.PetID, services.OpWriteClinical); err != nil {
		return serviceError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		return apiError(c, fiber.StatusBadRequest, "missing file uploads")
	}

	attachments := decodeAttachments(record.Attachments)
	for _, fileHeader := range form.File["files"] {
		content, err := readUpload(fileHeader)
		if err != nil {
			return serviceError(c, err)
		}
		fileName, err := handler.uploads.Save("health-documents", fileHeader.Filename, content)
		if err != nil {
			return serviceError(c, err)
		}
		attachments = append(attachments, handler.uploads.URLFor("health-documents", fileName))
	}

	encoded, err := json.Marshal(attachments)
	if err != nil {
		return serviceError(c, err)
	}
	record.Attachments = datatypes.JSON(encoded)
	if err := handler.repositories.HealthRecords.UpdateAttachments(&record); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"attachments": attachments})
}
