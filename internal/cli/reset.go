package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/petpalhq/petpal/internal/db"
	"github.com/petpalhq/petpal/internal/identity"
	"github.com/petpalhq/petpal/internal/security"
)

// RunResetPasswordCommand resets an account's password from the terminal.
// With a TTY the operator is prompted twice without echo; otherwise a
// temporary password is generated and printed.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := identity.NormalizeEmail(email)
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var account identity.Account
	if err := database.Where("email = ?", normalizedEmail).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("account %s not found", normalizedEmail)
		}
		return fmt.Errorf("load account: %w", err)
	}

	password, generated, err := obtainNewPassword()
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = database.Model(&identity.Account{}).Where("id = ?", account.ID).Updates(map[string]any{
		"password_hash":          string(passwordHash),
		"reset_token_hash":       "",
		"reset_token_expires_at": nil,
	}).Error
	if err != nil {
		return fmt.Errorf("update account password: %w", err)
	}

	fmt.Println("Password reset successful")
	if generated {
		fmt.Printf("Temporary password: %s\n", password)
	}
	return nil
}

func obtainNewPassword() (string, bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice == 0 {
		password, err := generateTemporaryPassword(12)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return password, true, nil
	}

	fmt.Print("New password: ")
	first, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	fmt.Print("Repeat password: ")
	second, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimSpace(string(first))
	if password != strings.TrimSpace(string(second)) {
		return "", false, errors.New("passwords do not match")
	}
	if len(password) < 8 {
		return "", false, errors.New("password must be at least 8 characters")
	}
	return password, false, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
