package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type UserProfile struct {
	ID              uint   `gorm:"primaryKey"`
	FirstName       string `gorm:"not null"`
	LastName        string `gorm:"not null"`
	Email           string `gorm:"not null"`
	Address         string
	Phone           string
	ThemePreference string     `gorm:"not null;default:light"`
	IdentityUserID  string     `gorm:"uniqueIndex;not null"`
	OwnedPets       []PetOwner `gorm:"foreignKey:UserProfileID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (profile UserProfile) DisplayName() string {
	return profile.FirstName + " " + profile.LastName
}
