package models

import "time"

type NotificationSettings struct {
	ID                        uint         `gorm:"primaryKey"`
	UserID                    uint         `gorm:"uniqueIndex;not null"`
	UserProfile               *UserProfile `gorm:"foreignKey:UserID"`
	EmailNotificationsEnabled bool         `gorm:"not null;default:true"`
	PushNotificationsEnabled  bool         `gorm:"not null;default:true"`
	AppointmentReminders      bool         `gorm:"not null;default:true"`
	MedicationReminders       bool         `gorm:"not null;default:true"`
	VaccinationReminders      bool         `gorm:"not null;default:true"`
	WeightReminders           bool         `gorm:"not null;default:false"`
	FeedingReminders          bool         `gorm:"not null;default:false"`
	ReminderLeadTime          int          `gorm:"not null;default:24"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func DefaultNotificationSettings(userProfileID uint) NotificationSettings {
	return NotificationSettings{
		UserID:                    userProfileID,
		EmailNotificationsEnabled: true,
		PushNotificationsEnabled:  true,
		AppointmentReminders:      true,
		MedicationReminders:       true,
		VaccinationReminders:      true,
		WeightReminders:           false,
		FeedingReminders:          false,
		ReminderLeadTime:          24,
	}
}
