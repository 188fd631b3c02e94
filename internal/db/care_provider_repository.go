package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type CareProviderRepository struct {
	database *gorm.DB
}

func NewCareProviderRepository(database *gorm.DB) *CareProviderRepository {
	return &CareProviderRepository{database: database}
}

func (repo *CareProviderRepository) FindByID(providerID uint) (models.CareProvider, error) {
	var provider models.CareProvider
	if err := repo.database.First(&provider, providerID).Error; err != nil {
		return models.CareProvider{}, err
	}
	return provider, nil
}

func (repo *CareProviderRepository) ListByUser(identityUserID string) ([]models.CareProvider, error) {
	providers := make([]models.CareProvider, 0)
	if err := repo.database.
		Where("user_id = ?", identityUserID).
		Order("name ASC, id ASC").
		Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (repo *CareProviderRepository) Create(provider *models.CareProvider) error {
	return repo.database.Create(provider).Error
}

func (repo *CareProviderRepository) Save(provider *models.CareProvider) error {
	return repo.database.Save(provider).Error
}

func (repo *CareProviderRepository) Delete(providerID uint) error {
	return repo.database.Delete(&models.CareProvider{}, providerID).Error
}
