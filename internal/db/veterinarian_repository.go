package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type VeterinarianRepository struct {
	database *gorm.DB
}

func NewVeterinarianRepository(database *gorm.DB) *VeterinarianRepository {
	return &VeterinarianRepository{database: database}
}

func (repo *VeterinarianRepository) FindByID(veterinarianID uint) (models.Veterinarian, error) {
	var vet models.Veterinarian
	if err := repo.database.First(&vet, veterinarianID).Error; err != nil {
		return models.Veterinarian{}, err
	}
	return vet, nil
}

func (repo *VeterinarianRepository) List() ([]models.Veterinarian, error) {
	vets := make([]models.Veterinarian, 0)
	if err := repo.database.Order("last_name ASC, first_name ASC").Find(&vets).Error; err != nil {
		return nil, err
	}
	return vets, nil
}

func (repo *VeterinarianRepository) Create(vet *models.Veterinarian) error {
	return repo.database.Create(vet).Error
}

func (repo *VeterinarianRepository) Save(vet *models.Veterinarian) error {
	return repo.database.Save(vet).Error
}

// Delete detaches the vet from health records and removes their
// appointments before deleting the row itself.
func (repo *VeterinarianRepository) Delete(veterinarianID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.HealthRecord{}).
			Where("veterinarian_id = ?", veterinarianID).
			Update("veterinarian_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("veterinarian_id = ?", veterinarianID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Veterinarian{}, veterinarianID).Error
	})
}
