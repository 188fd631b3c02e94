package db

import (
	"errors"

	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type NotificationSettingsRepository struct {
	database *gorm.DB
}

func NewNotificationSettingsRepository(database *gorm.DB) *NotificationSettingsRepository {
	return &NotificationSettingsRepository{database: database}
}

// FindOrCreate returns the profile's settings, inserting the defaults on
// first access.
func (repo *NotificationSettingsRepository) FindOrCreate(userProfileID uint) (models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := repo.database.Where("user_id = ?", userProfileID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultNotificationSettings(userProfileID)
		if err := repo.database.Create(&settings).Error; err != nil {
			return models.NotificationSettings{}, err
		}
		return settings, nil
	}
	if err != nil {
		return models.NotificationSettings{}, err
	}
	return settings, nil
}

func (repo *NotificationSettingsRepository) Save(settings *models.NotificationSettings) error {
	return repo.database.Save(settings).Error
}
