package models

import "time"

type Medication struct {
	ID           uint `gorm:"primaryKey"`
	PetID        uint `gorm:"index;not null"`
	Pet          *Pet
	Name         string `gorm:"not null"`
	Dosage       string
	Frequency    string
	StartDate    time.Time `gorm:"not null"`
	EndDate      *time.Time
	Instructions string
	Prescriber   string
	IsActive     bool `gorm:"not null;default:true"`

	ReminderEnabled   bool `gorm:"not null;default:false"`
	ReminderFrequency string
	ReminderTime      *string
	LastReminderSent  *time.Time
	NextReminderDue   *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
