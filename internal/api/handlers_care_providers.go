package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type careProviderInput struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Website string `json:"website"`
	Notes   string `json:"notes"`
}

// authorizeCareProvider loads the provider and enforces the identity-based
// ownership rule.
func (handler *Handler) authorizeCareProvider(c *fiber.Ctx, providerID uint) (models.CareProvider, error) {
	provider, err := handler.repositories.CareProviders.FindByID(providerID)
	if err != nil {
		return models.CareProvider{}, err
	}
	principal, err := handler.currentPrincipal(c)
	if err != nil {
		return models.CareProvider{}, err
	}
	if !services.AllowedCareProvider(principal, provider) {
		return models.CareProvider{}, services.ErrForbidden
	}
	return provider, nil
}

func (handler *Handler) ListCareProviders(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return serviceError(c, services.ErrUnauthenticated)
	}
	providers, err := handler.repositories.CareProviders.ListByUser(account.ID)
	if err != nil {
		return serviceError(c, err)
	}
	responses := make([]careProviderResponse, 0, len(providers))
	for _, provider := range providers {
		responses = append(responses, newCareProviderResponse(provider))
	}
	return c.JSON(responses)
}

func (handler *Handler) GetCareProvider(c *fiber.Ctx) error {
	providerID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid provider id")
	}
	provider, err := handler.authorizeCareProvider(c, providerID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newCareProviderResponse(provider))
}

func (handler *Handler) CreateCareProvider(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return serviceError(c, services.ErrUnauthenticated)
	}
	var input careProviderInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	provider := models.CareProvider{
		Name:    input.Name,
		Type:    input.Type,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		Website: input.Website,
		Notes:   input.Notes,
		UserID:  account.ID,
	}
	if err := handler.repositories.CareProviders.Create(&provider); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newCareProviderResponse(provider))
}

func (handler *Handler) UpdateCareProvider(c *fiber.Ctx) error {
	providerID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid provider id")
	}
	provider, err := handler.authorizeCareProvider(c, providerID)
	if err != nil {
		return serviceError(c, err)
	}

	var input careProviderInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	provider.Name = input.Name
	provider.Type = input.Type
	provider.Address = input.Address
	provider.Phone = input.Phone
	provider.Email = input.Email
	provider.Website = input.Website
	provider.Notes = input.Notes
	if err := handler.repositories.CareProviders.Save(&provider); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newCareProviderResponse(provider))
}

func (handler *Handler) DeleteCareProvider(c *fiber.Ctx) error {
	providerID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid provider id")
	}
	if _, err := handler.authorizeCareProvider(c, providerID); err != nil {
		return serviceError(c, err)
	}
	if err := handler.repositories.CareProviders.Delete(providerID); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
