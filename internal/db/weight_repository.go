package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
	"gorm.io/gorm"
)

// WeightRepository implements services.WeightStore.
type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) GetWeight(weightID uint) (models.Weight, error) {
	var weight models.Weight
	if err := repo.database.First(&weight, weightID).Error; err != nil {
		return models.Weight{}, err
	}
	return weight, nil
}

func (repo *WeightRepository) ListForPet(petID uint) ([]models.Weight, error) {
	weights := make([]models.Weight, 0)
	if err := repo.database.
		Where("pet_id = ?", petID).
		Order("date DESC, id DESC").
		Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

func (repo *WeightRepository) InsertWeight(weight *models.Weight) error {
	return repo.database.Create(weight).Error
}

func (repo *WeightRepository) UpdateWeight(weight *models.Weight) error {
	return repo.database.Save(weight).Error
}

func (repo *WeightRepository) DeleteWeight(weightID uint) error {
	return repo.database.Delete(&models.Weight{}, weightID).Error
}

func (repo *WeightRepository) UpdatePetWeight(petID uint, value float64) error {
	return repo.database.Model(&models.Pet{}).Where("id = ?", petID).
		Update("weight", value).Error
}

func (repo *WeightRepository) Transact(fn func(store services.WeightStore) error) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return fn(&WeightRepository{database: tx})
	})
}
