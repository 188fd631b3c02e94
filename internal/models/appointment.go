package models

import "time"

const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

type Appointment struct {
	ID              uint `gorm:"primaryKey"`
	PetID           uint `gorm:"index;not null"`
	Pet             *Pet
	VeterinarianID  uint `gorm:"index;not null"`
	Veterinarian    *Veterinarian
	AppointmentDate time.Time `gorm:"index;not null"`
	AppointmentTime string    `gorm:"not null"`
	AppointmentType string
	Notes           string
	Status          string `gorm:"not null;default:Scheduled"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
