package models

import "time"

type PetOwner struct {
	ID             uint `gorm:"primaryKey"`
	PetID          uint `gorm:"not null;uniqueIndex:uidx_pet_owner"`
	UserProfileID  uint `gorm:"not null;uniqueIndex:uidx_pet_owner"`
	UserProfile    *UserProfile
	IsPrimaryOwner bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
}
