package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecordTypeVaccination marks the health records exposed through the
// vaccination endpoints; there is no separate vaccination table.
const RecordTypeVaccination = "Vaccination"

type HealthRecord struct {
	ID             uint `gorm:"primaryKey"`
	PetID          uint `gorm:"index;not null"`
	Pet            *Pet
	RecordType     string `gorm:"index;not null"`
	Description    string
	RecordDate     time.Time  `gorm:"not null"`
	DueDate        *time.Time `gorm:"index"`
	VeterinarianID *uint
	Veterinarian   *Veterinarian
	Notes          string
	Attachments    datatypes.JSON
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (record HealthRecord) IsVaccination() bool {
	return record.RecordType == RecordTypeVaccination
}
