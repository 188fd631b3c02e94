package models

import "time"

type FeedingSchedule struct {
	ID          uint `gorm:"primaryKey"`
	PetID       uint `gorm:"index;not null"`
	Pet         *Pet
	FeedingTime string `gorm:"not null"`
	FoodType    string
	Portion     string
	Notes       string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
