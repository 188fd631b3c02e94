package db

import (
	"github.com/petpalhq/petpal/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) FindByID(appointmentID uint) (models.Appointment, error) {
	var appointment models.Appointment
	if err := repo.database.Preload("Veterinarian").First(&appointment, appointmentID).Error; err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (repo *AppointmentRepository) ListForPets(petIDs []uint) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Preload("Veterinarian").
		Where("pet_id IN ?", petIDs).
		Order("appointment_date ASC, appointment_time ASC, id ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) ListByVeterinarian(veterinarianID uint) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Where("veterinarian_id = ?", veterinarianID).
		Order("appointment_date ASC, appointment_time ASC, id ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

func (repo *AppointmentRepository) Save(appointment *models.Appointment) error {
	return repo.database.Save(appointment).Error
}

func (repo *AppointmentRepository) UpdateStatus(appointmentID uint, status string) error {
	return repo.database.Model(&models.Appointment{}).Where("id = ?", appointmentID).
		Update("status", status).Error
}

func (repo *AppointmentRepository) Delete(appointmentID uint) error {
	return repo.database.Delete(&models.Appointment{}, appointmentID).Error
}
