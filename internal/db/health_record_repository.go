package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	database *gorm.DB
}

func NewHealthRecordRepository(database *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{database: database}
}

func (repo *HealthRecordRepository) FindByID(recordID uint) (models.HealthRecord, error) {
	var record models.HealthRecord
	if err := repo.database.Preload("Veterinarian").First(&record, recordID).Error; err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

func (repo *HealthRecordRepository) ListForPets(petIDs []uint) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Preload("Veterinarian").
		Where("pet_id IN ?", petIDs).
		Order("record_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRecordRepository) ListVaccinations(petIDs []uint) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Preload("Veterinarian").
		Where("pet_id IN ? AND record_type = ?", petIDs, models.RecordTypeVaccination).
		Order("record_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRecordRepository) Create(record *models.HealthRecord) error {
	return repo.database.Create(record).Error
}

func (repo *HealthRecordRepository) Save(record *models.HealthRecord) error {
	return repo.database.Save(record).Error
}

func (repo *HealthRecordRepository) UpdateAttachments(record *models.HealthRecord) error {
	return repo.database.Model(record).Select("attachments").Updates(record).Error
}

func (repo *HealthRecordRepository) Delete(recordID uint) error {
	return repo.database.Delete(&models.HealthRecord{}, recordID).Error
}
