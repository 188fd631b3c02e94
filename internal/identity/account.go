package identity

import "time"

// Account is the credential record behind a UserProfile. Profiles carry the
// person-facing data; accounts carry email, password hash and role grants.
type Account struct {
	ID                  string   `gorm:"primaryKey;size:36"`
	Email               string   `gorm:"uniqueIndex;not null"`
	PasswordHash        string   `gorm:"not null"`
	Roles               []string `gorm:"serializer:json"`
	ResetTokenHash      string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (account Account) HasRole(role string) bool {
	for _, granted := range account.Roles {
		if granted == role {
			return true
		}
	}
	return false
}
