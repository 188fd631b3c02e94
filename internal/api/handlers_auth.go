package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/identity"
	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

type registerInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type profileResponse struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	ThemePreference string    `json:"themePreference"`
	Roles           []string  `json:"roles"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newProfileResponse(profile models.UserProfile, roles []string) profileResponse {
	return profileResponse{
		ID:              profile.ID,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Email:           profile.Email,
		Address:         profile.Address,
		Phone:           profile.Phone,
		ThemePreference: profile.ThemePreference,
		Roles:           roles,
		CreatedAt:       profile.CreatedAt,
	}
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	account, err := handler.accounts.Register(input.Email, input.Password, []string{services.RoleUser})
	if err != nil {
		return serviceError(c, err)
	}

	profile := models.UserProfile{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          identity.NormalizeEmail(input.Email),
		Address:        input.Address,
		Phone:          input.Phone,
		IdentityUserID: account.ID,
	}
	if err := handler.repositories.Profiles.Create(&profile); err != nil {
		return serviceError(c, err)
	}

	if err := handler.setAuthCookie(c, account); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newProfileResponse(profile, account.Roles))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	account, err := handler.accounts.Authenticate(input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	profile, err := handler.resolveProfile(account)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.setAuthCookie(c, account); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newProfileResponse(profile, account.Roles))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return serviceError(c, services.ErrUnauthenticated)
	}
	profile, err := handler.currentProfile(c)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(newProfileResponse(profile, account.Roles))
}

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}

	token, err := handler.accounts.BeginPasswordReset(input.Email, time.Now())
	if errors.Is(err, identity.ErrAccountNotFound) {
		// Do not reveal whether the email exists.
		return c.JSON(fiber.Map{"message": "if the account exists, a reset token has been issued"})
	}
	if err != nil {
		return serviceError(c, err)
	}

	// Without an outbound mailer the token is returned directly.
	return c.JSON(fiber.Map{
		"message": "reset token issued",
		"token":   token,
	})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if err := handler.accounts.CompletePasswordReset(input.Email, input.Token, input.NewPassword, time.Now()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return serviceError(c, services.ErrUnauthenticated)
	}
	var input changePasswordInput
	if err := handler.parseBody(c, &input); err != nil {
		return serviceError(c, err)
	}
	if err := handler.accounts.ChangePassword(account.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

// resolveProfile mirrors currentProfile for the login path, where the
// account comes from credentials rather than the session.
func (handler *Handler) resolveProfile(account identity.Account) (models.UserProfile, error) {
	profile, err := handler.repositories.Profiles.FindByIdentityUserID(account.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !account.HasRole(services.RoleAdmin) {
			return models.UserProfile{}, services.ErrProfileNotFound
		}
		profile = models.UserProfile{
			FirstName:      "Admin",
			LastName:       "User",
			Email:          account.Email,
			IdentityUserID: account.ID,
		}
		if err := handler.repositories.Profiles.Create(&profile); err != nil {
			return models.UserProfile{}, err
		}
		return profile, nil
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
