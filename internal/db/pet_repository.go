package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type PetRepository struct {
	database *gorm.DB
}

func NewPetRepository(database *gorm.DB) *PetRepository {
	return &PetRepository{database: database}
}

func (repo *PetRepository) FindByID(petID uint) (models.Pet, error) {
	var pet models.Pet
	if err := repo.database.
		Preload("Owners.UserProfile").
		First(&pet, petID).Error; err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

func (repo *PetRepository) ListByOwner(userProfileID uint) ([]models.Pet, error) {
	pets := make([]models.Pet, 0)
	if err := repo.database.
		Joins("JOIN pet_owners ON pet_owners.pet_id = pets.id").
		Where("pet_owners.user_profile_id = ?", userProfileID).
		Order("pets.name ASC, pets.id ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (repo *PetRepository) ListAll() ([]models.Pet, error) {
	pets := make([]models.Pet, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// CreateWithOwner inserts the pet and links its creator as primary owner in
// one transaction.
func (repo *PetRepository) CreateWithOwner(pet *models.Pet, ownerProfileID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pet).Error; err != nil {
			return err
		}
		owner := models.PetOwner{
			PetID:          pet.ID,
			UserProfileID:  ownerProfileID,
			IsPrimaryOwner: true,
		}
		return tx.Create(&owner).Error
	})
}

func (repo *PetRepository) Save(pet *models.Pet) error {
	return repo.database.Save(pet).Error
}

func (repo *PetRepository) UpdateImageURL(petID uint, imageURL string) error {
	return repo.database.Model(&models.Pet{}).Where("id = ?", petID).
		Update("image_url", imageURL).Error
}

// Delete removes the pet together with every dependent record.
func (repo *PetRepository) Delete(petID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		dependents := []any{
			&models.HealthRecord{},
			&models.Appointment{},
			&models.Medication{},
			&models.Weight{},
			&models.FeedingSchedule{},
			&models.PetOwner{},
		}
		for _, dependent := range dependents {
			if err := tx.Where("pet_id = ?", petID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Pet{}, petID).Error
	})
}
