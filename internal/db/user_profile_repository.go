package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type UserProfileRepository struct {
	database *gorm.DB
}

func NewUserProfileRepository(database *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{database: database}
}

func (repo *UserProfileRepository) FindByID(profileID uint) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := repo.database.First(&profile, profileID).Error; err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (repo *UserProfileRepository) FindByIdentityUserID(identityUserID string) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := repo.database.Where("identity_user_id = ?", identityUserID).First(&profile).Error; err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (repo *UserProfileRepository) FindByNormalizedEmail(email string) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&profile).Error; err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (repo *UserProfileRepository) List() ([]models.UserProfile, error) {
	profiles := make([]models.UserProfile, 0)
	if err := repo.database.Order("last_name ASC, first_name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *UserProfileRepository) Create(profile *models.UserProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *UserProfileRepository) Save(profile *models.UserProfile) error {
	return repo.database.Save(profile).Error
}

func (repo *UserProfileRepository) UpdateTheme(profileID uint, theme string) error {
	return repo.database.Model(&models.UserProfile{}).Where("id = ?", profileID).
		Update("theme_preference", theme).Error
}
