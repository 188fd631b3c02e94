package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
)

type veterinarianInput struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Specialty     string `json:"specialty"`
	ClinicName    string `json:"clinicName"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
}

func (handler *Handler) ListVeterinarians(c *fiber.Ctx) error {
	vets, err := handler.repositories.Veterinarians.List()
	if err != nil {
		return serviceError(c, err)
	}
	responses := make([]veterinarianResponse, 0, len(vets))
	for _, vet := range vets {
		responses = append(responses, newVeterinarianResponse(vet))
	}
	return c.JSON(responses)
}

func (handler *Handler) GetVeterinarian(c *fiber.Ctx) error {
	vetID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid veterinarian id")
	}
	vet, err := handler.repositories.Veterinarians.FindByID(vetID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newVeterinarianResponse(vet))
}

func (handler *Handler) CreateVeterinarian(c *fiber.Ctx) error {
	var input veterinarianInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	vet := models.Veterinarian{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Specialty:     input.Specialty,
		ClinicName:    input.ClinicName,
		Address:       input.Address,
		LicenseNumber: input.LicenseNumber,
	}
	if err := handler.repositories.Veterinarians.Create(&vet); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newVeterinarianResponse(vet))
}

func (handler *Handler) UpdateVeterinarian(c *fiber.Ctx) error {
	vetID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid veterinarian id")
	}
	vet, err := handler.repositories.Veterinarians.FindByID(vetID)
	if err != nil {
		return serviceError(c, err)
	}

	var input veterinarianInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	vet.FirstName = input.FirstName
	vet.LastName = input.LastName
	vet.Email = input.Email
	vet.Phone = input.Phone
	vet.Specialty = input.Specialty
	vet.ClinicName = input.ClinicName
	vet.Address = input.Address
	vet.LicenseNumber = input.LicenseNumber
	if err := handler.repositories.Veterinarians.Save(&vet); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newVeterinarianResponse(vet))
}

func (handler *Handler) DeleteVeterinarian(c *fiber.Ctx) error {
	vetID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid veterinarian id")
	}
	if _, err := handler.repositories.Veterinarians.FindByID(vetID); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Veterinarians.Delete(vetID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
