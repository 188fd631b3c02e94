package models

import "time"

type Veterinarian struct {
	ID            uint   `gorm:"primaryKey"`
	FirstName     string `gorm:"not null"`
	LastName      string `gorm:"not null"`
	Email         string
	Phone         string
	Specialty     string
	ClinicName    string
	Address       string
	LicenseNumber string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (vet Veterinarian) DisplayName() string {
	return vet.FirstName + " " + vet.LastName
}
