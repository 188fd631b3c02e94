package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type petInput struct {
	Name            string    `json:"name" validate:"required"`
	Species         string    `json:"species" validate:"required"`
	Breed           string    `json:"breed"`
	DateOfBirth     time.Time `json:"dateOfBirth"`
	Color           string    `json:"color"`
	MicrochipNumber string    `json:"microchipNumber"`
}

type addOwnerInput struct {
	UserProfileID  uint `json:"userProfileId" validate:"required"`
	IsPrimaryOwner bool `json:"isPrimaryOwner"`
}

// authorizePet loads the pet with its owner list and runs the access check
// once per request.
func (handler *Handler) authorizePet(c *fiber.Ctx, petID uint, operation services.Operation) (models.Pet, error) {
	pet, err := handler.repositories.Pets.FindByID(petID)
	if err != nil {
		return models.Pet{}, err
	}
	principal, err := handler.currentPrincipal(c)
	if err != nil {
		return models.Pet{}, err
	}
	if !services.Allowed(principal, operation, pet.Owners) {
		return models.Pet{}, services.ErrForbidden
	}
	return pet, nil
}

func (handler *Handler) ListAllPets(c *fiber.Ctx) error {
	pets, err := handler.repositories.Pets.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newPetListResponse(pets))
}

func (handler *Handler) ListUserPets(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	pets, err := handler.repositories.Pets.ListByOwner(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newPetListResponse(pets))
}

func (handler *Handler) GetPet(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	pet, err := handler.authorizePet(c, petID, services.OpReadPetRecords)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newPetResponse(pet))
}

func (handler *Handler) CreatePet(c *fiber.Ctx) error {
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	var input petInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	pet := models.Pet{
		Name:            input.Name,
		Species:         input.Species,
		Breed:           input.Breed,
		DateOfBirth:     input.DateOfBirth,
		Color:           input.Color,
		MicrochipNumber: input.MicrochipNumber,
	}
	if err := handler.repositories.Pets.CreateWithOwner(&pet, profile.ID); err != nil {
		return serviceError(c, err)
	}

	created, err := handler.repositories.Pets.FindByID(pet.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newPetResponse(created))
}

func (handler *Handler) UpdatePet(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	pet, err := handler.authorizePet(c, petID, services.OpWriteCareLogistics)
	if err != nil {
		return serviceError(c, err)
	}

	var input petInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	pet.Name = input.Name
	pet.Species = input.Species
	pet.Breed = input.Breed
	pet.DateOfBirth = input.DateOfBirth
	pet.Color = input.Color
	pet.MicrochipNumber = input.MicrochipNumber
	pet.Owners = nil
	if err := handler.repositories.Pets.Save(&pet); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newPetResponse(pet))
}

func (handler *Handler) DeletePet(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.Pets.Delete(petID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddPetOwner(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}

	var input addOwnerInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if _, err := handler.repositories.Profiles.FindByID(input.UserProfileID); err != nil {
		return serviceError(c, err)
	}

	owner, err := handler.ownership.AddOwner(petID, input.UserProfileID, input.IsPrimaryOwner)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newOwnerResponse(owner))
}

func (handler *Handler) RemovePetOwner(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	profileID, err := parseIDParam(c, "ownerId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid owner id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}
	if err := handler.ownership.RemoveOwner(petID, profileID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPrimaryPetOwner transfers the primary flag to an existing co-owner.
func (handler *Handler) SetPrimaryPetOwner(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "petId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	profileID, err := parseIDParam(c, "ownerId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid owner id")
	}
	if _, err := handler.authorizePet(c, petID, services.OpWriteCareLogistics); err != nil {
		return serviceError(c, err)
	}
	if err := handler.ownership.SetPrimaryOwner(petID, profileID); err != nil {
		return serviceError(c, err)
	}
	pet, err := handler.repositories.Pets.FindByID(petID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newPetResponse(pet))
}

func (handler *Handler) UploadPetPhoto(c *fiber.Ctx) error {
	petID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid pet id")
	}
	pet, err := handler.authorizePet(c, petID, services.OpWriteCareLogistics)
	if err != nil {
		return serviceError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "missing file upload")
	}
	content, err := readUpload(fileHeader)
	if err != nil {
		return serviceError(c, err)
	}

	fileName, err := handler.uploads.Save("pets", fileHeader.Filename, content)
	if err != nil {
		return serviceError(c, err)
	}

	if previous := pet.ImageURL; previous != "" {
		_ = handler.uploads.Delete("pets", fileNameFromURL(previous))
	}

	imageURL := handler.uploads.URLFor("pets", fileName)
	if err := handler.repositories.Pets.UpdateImageURL(petID, imageURL); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"imageUrl": imageURL})
}
