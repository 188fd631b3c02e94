package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type appointmentInput struct {
	PetID           uint      `json:"petId" validate:"required"`
	VeterinarianID  uint      `json:"veterinarianId" validate:"required"`
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`
	AppointmentTime string    `json:"appointmentTime" validate:"required"`
	AppointmentType string    `json:"appointmentType" validate:"required"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
}

func (handler *Handler) ListAllAppointments(c *fiber.Ctx) error {
	pets, err := handler.repositories.Pets.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	petIDs := make([]uint, 0, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
	}
	if len(petIDs) == 0 {
		return c.JSON(newAppointmentListResponse(nil))
	}
	appointments, err := handler.repositories.Appointments.ListForPets(petIDs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newAppointmentListResponse(appointments))
}

// ListUserAppointments returns appointments for the caller's pets; vets and
// admins see every pet's schedule.
func (handler *Handler) ListUserAppointments(c *fiber.Ctx) error {
	principal, err := handler.currentPrincipal(c)
	if err != nil {
		return serviceError(c, err)
	}
	if principal.IsAdmin() || principal.IsVeterinarian() {
		return handler.ListAllAppointments(c)
	}

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
		return c.JSON(newAppointmentListResponse(nil))
	}
	appointments, err := handler.repositories.Appointments.ListForPets(petIDs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newAppointmentListResponse(appointments))
}

type appointmentStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateAppointmentStatus changes only the status column, leaving the rest
// of the appointment untouched.
func (handler *Handler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}
	appointment, err := handler.repositories.Appointments.FindByID(appointmentID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, appointment.PetID, services.OpWriteAppointments); err != nil {
		return serviceError(c, err)
	}

	var input appointmentStatusInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Appointments.UpdateStatus(appointmentID, input.Status); err != nil {
		return serviceError(c, err)
	}
	appointment.Status = input.Status
	return c.JSON(newAppointmentResponse(appointment))
}

// ListVeterinarianAppointments returns one veterinarian's schedule. It spans
// every client's pets, so only staff roles may read it.
func (handler *Handler) ListVeterinarianAppointments(c *fiber.Ctx) error {
	veterinarianID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid veterinarian id")
	}
	principal, err := handler.currentPrincipal(c)
	if err != nil {
		return serviceError(c, err)
	}
	if !principal.IsAdmin() && !principal.IsVeterinarian() {
		return serviceError(c, services.ErrForbidden)
	}
	if _, err := handler.repositories.Veterinarians.FindByID(veterinarianID); err != nil {
		return serviceError(c, err)
	}
	appointments, err := handler.repositories.Appointments.ListByVeterinarian(veterinarianID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newAppointmentListResponse(appointments))
}

func (handler *Handler) ListPetAppointments(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	appointments, err := handler.repositories.Appointments.ListForPets([]uint{petID})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newAppointmentListResponse(appointments))
}

func (handler *Handler) GetAppointment(c *fiber.Ctx) error {
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}
	appointment, err := handler.repositories.Appointments.FindByID(appointmentID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, appointment.PetID, services.OpReadPetRecords); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newAppointmentResponse(appointment))
}

func (handler *Handler) CreateAppointment(c *fiber.Ctx) error {
	var input appointmentInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := services.ParseTimeOfDay(input.AppointmentTime); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, input.PetID, services.OpWriteAppointments); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.repositories.Veterinarians.FindByID(input.VeterinarianID); err != nil {
		return serviceError(c, err)
	}

	status := input.Status
	if status == "" {
		status = models.AppointmentStatusScheduled
	}

	appointment := models.Appointment{
		PetID:           input.PetID,
		VeterinarianID:  input.VeterinarianID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		AppointmentType: input.AppointmentType,
		Notes:           input.Notes,
		Status:          status,
	}
	if err := handler.repositories.Appointments.Create(&appointment); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newAppointmentResponse(appointment))
}

func (handler *Handler) UpdateAppointment(c *fiber.Ctx) error {
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}
	appointment, err := handler.repositories.Appointments.FindByID(appointmentID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, appointment.PetID, services.OpWriteAppointments); err != nil {
		return serviceError(c, err)
	}

	var input appointmentInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := services.ParseTimeOfDay(input.AppointmentTime); err != nil {
		return serviceError(c, err)
	}
	if input.VeterinarianID != appointment.VeterinarianID {
		if _, err := handler.repositories.Veterinarians.FindByID(input.VeterinarianID); err != nil {
			return serviceError(c, err)
		}
	}

	appointment.VeterinarianID = input.VeterinarianID
	appointment.AppointmentDate = input.AppointmentDate
	appointment.AppointmentTime = input.AppointmentTime
	appointment.AppointmentType = input.AppointmentType
	appointment.Notes = input.Notes
	if input.Status != "" {
		appointment.Status = input.Status
	}
	appointment.Veterinarian = nil
	if err := handler.repositories.Appointments.Save(&appointment); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newAppointmentResponse(appointment))
}

func (handler *Handler) DeleteAppointment(c *fiber.Ctx) error {
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}
	appointment, err := handler.repositories.Appointments.FindByID(appointmentID)
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.authorizePet(c, appointment.PetID, services.OpWriteAppointments); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Appointments.Delete(appointmentID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
