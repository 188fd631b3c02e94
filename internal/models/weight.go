package models

import "time"

type Weight struct {
	ID          uint `gorm:"primaryKey"`
	PetID       uint `gorm:"index;not null"`
	Pet         *Pet
	WeightValue float64   `gorm:"type:decimal(10,2);not null"`
	WeightUnit  string    `gorm:"not null;default:kg"`
	Date        time.Time `gorm:"index;not null"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
