package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"github.com/petpalhq/petpal/internal/services"
	"gorm.io/gorm"
)

// PetOwnerRepository implements services.OwnershipStore.
type PetOwnerRepository struct {
	database *gorm.DB
}

func NewPetOwnerRepository(database *gorm.DB) *PetOwnerRepository {
	return &PetOwnerRepository{database: database}
}

func (repo *PetOwnerRepository) ListOwners(petID uint) ([]models.PetOwner, error) {
	owners := make([]models.PetOwner, 0)
	if err := repo.database.
		Preload("UserProfile").
		Where("pet_id = ?", petID).
		Order("is_primary_owner DESC, id ASC").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (repo *PetOwnerRepository) InsertOwner(owner *models.PetOwner) error {
	return repo.database.Create(owner).Error
}

func (repo *PetOwnerRepository) UpdateOwner(owner *models.PetOwner) error {
	return repo.database.Model(&models.PetOwner{}).Where("id = ?", owner.ID).
		Update("is_primary_owner", owner.IsPrimaryOwner).Error
}

func (repo *PetOwnerRepository) DeleteOwner(ownerID uint) error {
	return repo.database.Delete(&models.PetOwner{}, ownerID).Error
}

func (repo *PetOwnerRepository) Transact(fn func(store services.OwnershipStore) error) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return fn(&PetOwnerRepository{database: tx})
	})
}
