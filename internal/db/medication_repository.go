package db

import (
	"time"

	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) FindByID(medicationID uint) (models.Medication, error) {
	var medication models.Medication
	if err := repo.database.First(&medication, medicationID).Error; err != nil {
		return models.Medication{}, err
	}
	return medication, nil
}

func (repo *MedicationRepository) ListForPets(petIDs []uint) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("pet_id IN ?", petIDs).
		Order("start_date DESC, id DESC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

// ListDueReminders returns enabled reminders whose next due instant has
// passed.
func (repo *MedicationRepository) ListDueReminders(now time.Time) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("reminder_enabled = ? AND is_active = ? AND next_reminder_due IS NOT NULL AND next_reminder_due <= ?",
			true, true, now.UTC()).
		Order("next_reminder_due ASC, id ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}

func (repo *MedicationRepository) UpdateReminder(medication *models.Medication) error {
	return repo.database.Model(medication).Select(
		"reminder_enabled", "reminder_frequency", "reminder_time",
		"last_reminder_sent", "next_reminder_due",
	).Updates(medication).Error
}

func (repo *MedicationRepository) Delete(medicationID uint) error {
	return repo.database.Delete(&models.Medication{}, medicationID).Error
}
