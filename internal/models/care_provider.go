package models

import "time"

// CareProvider is a personal directory entry scoped to the identity user who
// created it, not to any pet.
type CareProvider struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Type      string
	Address   string
	Phone     string
	Email     string
	Website   string
	Notes     string
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
