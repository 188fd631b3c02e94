package cli

import (
	"strings"
	"testing"
)

func TestGenerateTemporaryPassword(t *testing.T) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

	password, err := generateTemporaryPassword(16)
	if err != nil {
		t.Fatalf("generateTemporaryPassword: %v", err)
	}
	if len(password) != 16 {
		t.Fatalf("expected 16 characters, got %d", len(password))
	}
	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains %q outside the alphabet", password, char)
		}
	}

	// Short requests are padded up to the safety floor.
	password, err = generateTemporaryPassword(3)
	if err != nil {
		t.Fatalf("generateTemporaryPassword: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("expected the minimum of 8 characters, got %d", len(password))
	}
}
