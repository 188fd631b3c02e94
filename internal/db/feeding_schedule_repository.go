package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type FeedingScheduleRepository struct {
	database *gorm.DB
}

func NewFeedingScheduleRepository(database *gorm.DB) *FeedingScheduleRepository {
	return &FeedingScheduleRepository{database: database}
}

func (repo *FeedingScheduleRepository) FindByID(scheduleID uint) (models.FeedingSchedule, error) {
	var schedule models.FeedingSchedule
	if err := repo.database.First(&schedule, scheduleID).Error; err != nil {
		return models.FeedingSchedule{}, err
	}
	return schedule, nil
}

func (repo *FeedingScheduleRepository) ListForPet(petID uint) ([]models.FeedingSchedule, error) {
	schedules := make([]models.FeedingSchedule, 0)
	if err := repo.database.
		Where("pet_id = ?", petID).
		Order("feeding_time ASC, id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *FeedingScheduleRepository) Create(schedule *models.FeedingSchedule) error {
	return repo.database.Create(schedule).Error
}

func (repo *FeedingScheduleRepository) Save(schedule *models.FeedingSchedule) error {
	return repo.database.Save(schedule).Error
}

func (repo *FeedingScheduleRepository) Delete(scheduleID uint) error {
	return repo.database.Delete(&models.FeedingSchedule{}, scheduleID).Error
}
