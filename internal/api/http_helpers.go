package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/identity"
	"github.com/petpalhq/petpal/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError translates the service error taxonomy into HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	case errors.Is(err, services.ErrProfileNotFound):
		return apiError(c, fiber.StatusNotFound, "user profile not found")
	case errors.Is(err, services.ErrForbidden):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrConflict), errors.Is(err, identity.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidState):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, identity.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, identity.ErrResetTokenInvalid):
		return apiError(c, fiber.StatusBadRequest, "reset token invalid or expired")
	}
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// parseBody binds and validates a JSON payload, wrapping failures in the
// invalid-input sentinel so callers can hand them to serviceError.
func (handler *Handler) parseBody(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return fmt.Errorf("%w: invalid request body", services.ErrInvalidInput)
	}
	if err := handler.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", services.ErrInvalidInput, err.Error())
	}
	return nil
}
