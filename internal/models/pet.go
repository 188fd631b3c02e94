package models

import "time"

type Pet struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Species          string `gorm:"not null"`
	Breed            string
	DateOfBirth      time.Time `gorm:"type:date"`
	Weight           float64   `gorm:"type:decimal(10,2)"`
	Color            string
	ImageURL         string
	MicrochipNumber  string
	Owners           []PetOwner        `gorm:"foreignKey:PetID"`
	HealthRecords    []HealthRecord    `gorm:"foreignKey:PetID"`
	Appointments     []Appointment     `gorm:"foreignKey:PetID"`
	Medications      []Medication      `gorm:"foreignKey:PetID"`
	Weights          []Weight          `gorm:"foreignKey:PetID"`
	FeedingSchedules []FeedingSchedule `gorm:"foreignKey:PetID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
