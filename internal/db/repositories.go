package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles      *UserProfileRepository
	Pets          *PetRepository
	PetOwners     *PetOwnerRepository
	HealthRecords *HealthRecordRepository
	Appointments  *AppointmentRepository
	Medications   *MedicationRepository
	Weights       *WeightRepository
	Feedings      *FeedingScheduleRepository
	Veterinarians *VeterinarianRepository
	CareProviders *CareProviderRepository
	Notifications *NotificationSettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:      NewUserProfileRepository(database),
		Pets:          NewPetRepository(database),
		PetOwners:     NewPetOwnerRepository(database),
		HealthRecords: NewHealthRecordRepository(database),
		Appointments:  NewAppointmentRepository(database),
		Medications:   NewMedicationRepository(database),
		Weights:       NewWeightRepository(database),
		Feedings:      NewFeedingScheduleRepository(database),
		Veterinarians: NewVeterinarianRepository(database),
		CareProviders: NewCareProviderRepository(database),
		Notifications: NewNotificationSettingsRepository(database),
	}
}
