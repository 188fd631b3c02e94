package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/services"
)

type exportInput struct {
	Format    string     `json:"format" validate:"required"`
	Sections  []string   `json:"sections"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// ExportPet assembles the requested sections and writes a CSV or PDF file
// under the exports container, returning its URL.
func (handler *Handler) ExportPet(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	pet, err := handler.authorizePet(c, petID, services.OpReadPetRecords)
	if err != nil {
		return serviceError(c, err)
	}

	var input exportInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	format, err := services.ParseExportFormat(input.Format)
	if err != nil {
		return serviceError(c, err)
	}

	sections, err := services.ParseExportSections(input.Sections)
	if err != nil {
		return serviceError(c, err)
	}

	bounds := services.ExportRange{From: input.StartDate, To: input.EndDate}
	assembled, err := handler.exporter.Assemble(pet, format, sections, bounds, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	result, err := handler.exportFiles.Write(assembled)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
