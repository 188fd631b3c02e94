package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/security"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

const (
	resetTokenTTL      = time.Hour
	resetTokenLength   = 32
	resetTokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Provider owns account storage and credential checks.
type Provider struct {
	database *gorm.DB
}

func NewProvider(database *gorm.DB) *Provider {
	return &Provider{database: database}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (provider *Provider) Register(email, password string, roles []string) (Account, error) {
	normalized := NormalizeEmail(email)
	var matched int64
	if err := provider.database.Model(&Account{}).Where("email = ?", normalized).Count(&matched).Error; err != nil {
		return Account{}, err
	}
	if matched > 0 {
		return Account{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	account := Account{
		ID:           uuid.NewString(),
		Email:        normalized,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	if err := provider.database.Create(&account).Error; err != nil {
		return Account{}, err
	}
	return account, nil
}

func (provider *Provider) Authenticate(email, password string) (Account, error) {
	var account Account
	err := provider.database.Where("email = ?", NormalizeEmail(email)).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return account, nil
}

func (provider *Provider) FindByID(accountID string) (Account, error) {
	var account Account
	err := provider.database.Where("id = ?", accountID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

func (provider *Provider) ChangePassword(accountID, currentPassword, newPassword string) error {
	account, err := provider.FindByID(accountID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return provider.database.Model(&Account{}).Where("id = ?", accountID).
		Update("password_hash", string(hash)).Error
}

// BeginPasswordReset issues a one-time token for the account behind the
// email. The token itself is returned to the caller for delivery; only its
// hash is stored. Unknown emails return ErrAccountNotFound so the handler
// can decide how much to reveal.
func (provider *Provider) BeginPasswordReset(email string, now time.Time) (string, error) {
	var account Account
	err := provider.database.Where("email = ?", NormalizeEmail(email)).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrAccountNotFound
	}
	if err != nil {
		return "", err
	}

	token, err := security.RandomString(resetTokenLength, resetTokenAlphabet)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	expires := now.UTC().Add(resetTokenTTL)
	err = provider.database.Model(&Account{}).Where("id = ?", account.ID).Updates(map[string]any{
		"reset_token_hash":       string(hash),
		"reset_token_expires_at": expires,
	}).Error
	if err != nil {
		return "", err
	}
	return token, nil
}

// CompletePasswordReset consumes the token: on success the hash is cleared
// so the token cannot be replayed.
func (provider *Provider) CompletePasswordReset(email, token, newPassword string, now time.Time) error {
	var account Account
	err := provider.database.Where("email = ?", NormalizeEmail(email)).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResetTokenInvalid
	}
	if err != nil {
		return err
	}
	if account.ResetTokenHash == "" || account.ResetTokenExpiresAt == nil {
		return ErrResetTokenInvalid
	}
	if now.UTC().After(*account.ResetTokenExpiresAt) {
		return ErrResetTokenInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(account.ResetTokenHash), []byte(token)) != nil {
		return ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return provider.database.Model(&Account{}).Where("id = ?", account.ID).Updates(map[string]any{
		"password_hash":          string(hash),
		"reset_token_hash":       "",
		"reset_token_expires_at": nil,
	}).Error
}
