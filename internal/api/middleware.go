package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/identity"
	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
)

const (
	authCookieName    = "petpal_auth"
	contextAccountKey = "current_account"
	contextProfileKey = "current_profile"

	authTokenTTL = 7 * 24 * time.Hour
)

type authClaims struct {
	AccountID string   `json:"uid"`
	Roles     []string `json:"roles"`
	jwt.RegisteredClaims
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, account identity.Account) error {
	now := time.Now()
	claims := authClaims{
		AccountID: account.ID,
		Roles:     account.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(authTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (identity.Account, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return identity.Account{}, services.ErrUnauthenticated
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return identity.Account{}, services.ErrUnauthenticated
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return identity.Account{}, services.ErrUnauthenticated
	}

	account, err := handler.accounts.FindByID(claims.AccountID)
	if errors.Is(err, identity.ErrAccountNotFound) {
		return identity.Account{}, services.ErrUnauthenticated
	}
	if err != nil {
		return identity.Account{}, err
	}
	return account, nil
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	account, err := handler.authenticateRequest(c)
	if err != nil {
		return serviceError(c, err)
	}
	c.Locals(contextAccountKey, account)
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok || !account.HasRole(services.RoleAdmin) {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}
	return c.Next()
}

func currentAccount(c *fiber.Ctx) (identity.Account, bool) {
	account, ok := c.Locals(contextAccountKey).(identity.Account)
	return account, ok
}

// currentProfile resolves the profile behind the session, memoized per
// request. Admin accounts get a profile provisioned on first use.
func (handler *Handler) currentProfile(c *fiber.Ctx) (models.UserProfile, error) {
	if profile, ok := c.Locals(contextProfileKey).(models.UserProfile); ok {
		return profile, nil
	}
	account, ok := currentAccount(c)
	if !ok {
		return models.UserProfile{}, services.ErrUnauthenticated
	}

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
	} else if err != nil {
		return models.UserProfile{}, err
	}

	c.Locals(contextProfileKey, profile)
	return profile, nil
}

// currentPrincipal builds the authorization subject for the request. A
// missing profile is tolerated only for admins and veterinarians, whose
// checks are purely role based; everyone else needs one before any
// predicate runs.
func (handler *Handler) currentPrincipal(c *fiber.Ctx) (services.Principal, error) {
	account, ok := currentAccount(c)
	if !ok {
		return services.Principal{}, services.ErrUnauthenticated
	}
	principal := services.Principal{
		IdentityID: account.ID,
		Roles:      account.Roles,
	}
	profile, err := handler.currentProfile(c)
	if err == nil {
		principal.ProfileID = profile.ID
		return principal, nil
	}
	if errors.Is(err, services.ErrProfileNotFound) &&
		(account.HasRole(services.RoleAdmin) || account.HasRole(services.RoleVeterinarian)) {
		return principal, nil
	}
	return services.Principal{}, err
}
