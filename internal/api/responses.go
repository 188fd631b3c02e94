package api

import (
	"encoding/json"
	"time"

	"github.com/petpalhq/petpal/internal/models"
)

type petResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Species         string          `json:"species"`
	Breed           string          `json:"breed"`
	DateOfBirth     time.Time       `json:"dateOfBirth"`
	Weight          float64         `json:"weight"`
	Color           string          `json:"color"`
	ImageURL        string          `json:"imageUrl"`
	MicrochipNumber string          `json:"microchipNumber"`
	Owners          []ownerResponse `json:"owners,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type ownerResponse struct {
	ID             uint   `json:"id"`
	UserProfileID  uint   `json:"userProfileId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsPrimaryOwner bool   `json:"isPrimaryOwner"`
}

func newOwnerResponse(owner models.PetOwner) ownerResponse {
	response := ownerResponse{
		ID:             owner.ID,
		UserProfileID:  owner.UserProfileID,
		IsPrimaryOwner: owner.IsPrimaryOwner,
	}
	if owner.UserProfile != nil {
		response.Name = owner.UserProfile.DisplayName()
		response.Email = owner.UserProfile.Email
	}
	return response
}

func newPetResponse(pet models.Pet) petResponse {
	response := petResponse{
		ID:              pet.ID,
		Name:            pet.Name,
		Species:         pet.Species,
		Breed:           pet.Breed,
		DateOfBirth:     pet.DateOfBirth,
		Weight:          pet.Weight,
		Color:           pet.Color,
		ImageURL:        pet.ImageURL,
		MicrochipNumber: pet.MicrochipNumber,
		CreatedAt:       pet.CreatedAt,
	}
	for _, owner := range pet.Owners {
		response.Owners = append(response.Owners, newOwnerResponse(owner))
	}
	return response
}

func newPetListResponse(pets []models.Pet) []petResponse {
	responses := make([]petResponse, 0, len(pets))
	for _, pet := range pets {
		responses = append(responses, newPetResponse(pet))
	}
	return responses
}

type healthRecordResponse struct {
	ID               uint       `json:"id"`
	PetID            uint       `json:"petId"`
	RecordType       string     `json:"recordType"`
	Description      string     `json:"description"`
	RecordDate       time.Time  `json:"recordDate"`
	DueDate          *time.Time `json:"dueDate"`
	VeterinarianID   *uint      `json:"veterinarianId"`
	VeterinarianName string     `json:"veterinarianName,omitempty"`
	Notes            string     `json:"notes"`
	Attachments      []string   `json:"attachments"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func newHealthRecordResponse(record models.HealthRecord) healthRecordResponse {
	response := healthRecordResponse{
		ID:             record.ID,
		PetID:          record.PetID,
		RecordType:     record.RecordType,
		Description:    record.Description,
		RecordDate:     record.RecordDate,
		DueDate:        record.DueDate,
		VeterinarianID: record.VeterinarianID,
		Notes:          record.Notes,
		Attachments:    decodeAttachments(record.Attachments),
		CreatedAt:      record.CreatedAt,
	}
	if record.Veterinarian != nil {
		response.VeterinarianName = record.Veterinarian.DisplayName()
	}
	return response
}

func newHealthRecordListResponse(records []models.HealthRecord) []healthRecordResponse {
	responses := make([]healthRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, newHealthRecordResponse(record))
	}
	return responses
}

func decodeAttachments(raw []byte) []string {
	attachments := make([]string, 0)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &attachments)
	}
	return attachments
}

type appointmentResponse struct {
	ID               uint      `json:"id"`
	PetID            uint      `json:"petId"`
	VeterinarianID   uint      `json:"veterinarianId"`
	VeterinarianName string    `json:"veterinarianName,omitempty"`
	AppointmentDate  time.Time `json:"appointmentDate"`
	AppointmentTime  string    `json:"appointmentTime"`
	AppointmentType  string    `json:"appointmentType"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

func newAppointmentResponse(appointment models.Appointment) appointmentResponse {
	response := appointmentResponse{
		ID:              appointment.ID,
		PetID:           appointment.PetID,
		VeterinarianID:  appointment.VeterinarianID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		AppointmentType: appointment.AppointmentType,
		Notes:           appointment.Notes,
		Status:          appointment.Status,
		CreatedAt:       appointment.CreatedAt,
	}
	if appointment.Veterinarian != nil {
		response.VeterinarianName = appointment.Veterinarian.DisplayName()
	}
	return response
}

func newAppointmentListResponse(appointments []models.Appointment) []appointmentResponse {
	responses := make([]appointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		responses = append(responses, newAppointmentResponse(appointment))
	}
	return responses
}

type medicationResponse struct {
	ID                uint       `json:"id"`
	PetID             uint       `json:"petId"`
	Name              string     `json:"name"`
	Dosage            string     `json:"dosage"`
	Frequency         string     `json:"frequency"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	Instructions      string     `json:"instructions"`
	Prescriber        string     `json:"prescriber"`
	IsActive          bool       `json:"isActive"`
	ReminderEnabled   bool       `json:"reminderEnabled"`
	ReminderFrequency string     `json:"reminderFrequency"`
	ReminderTime      *string    `json:"reminderTime"`
	LastReminderSent  *time.Time `json:"lastReminderSent"`
	NextReminderDue   *time.Time `json:"nextReminderDue"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func newMedicationResponse(medication models.Medication) medicationResponse {
	return medicationResponse{
		ID:                medication.ID,
		PetID:             medication.PetID,
		Name:              medication.Name,
		Dosage:            medication.Dosage,
		Frequency:         medication.Frequency,
		StartDate:         medication.StartDate,
		EndDate:           medication.EndDate,
		Instructions:      medication.Instructions,
		Prescriber:        medication.Prescriber,
		IsActive:          medication.IsActive,
		ReminderEnabled:   medication.ReminderEnabled,
		ReminderFrequency: medication.ReminderFrequency,
		ReminderTime:      medication.ReminderTime,
		LastReminderSent:  medication.LastReminderSent,
		NextReminderDue:   medication.NextReminderDue,
		CreatedAt:         medication.CreatedAt,
	}
}

func newMedicationListResponse(medications []models.Medication) []medicationResponse {
	responses := make([]medicationResponse, 0, len(medications))
	for _, medication := range medications {
		responses = append(responses, newMedicationResponse(medication))
	}
	return responses
}

type weightResponse struct {
	ID          uint      `json:"id"`
	PetID       uint      `json:"petId"`
	WeightValue float64   `json:"weightValue"`
	WeightUnit  string    `json:"weightUnit"`
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newWeightResponse(weight models.Weight) weightResponse {
	return weightResponse{
		ID:          weight.ID,
		PetID:       weight.PetID,
		WeightValue: weight.WeightValue,
		WeightUnit:  weight.WeightUnit,
		Date:        weight.Date,
		Notes:       weight.Notes,
		CreatedAt:   weight.CreatedAt,
	}
}

func newWeightListResponse(weights []models.Weight) []weightResponse {
	responses := make([]weightResponse, 0, len(weights))
	for _, weight := range weights {
		responses = append(responses, newWeightResponse(weight))
	}
	return responses
}

type feedingScheduleResponse struct {
	ID          uint      `json:"id"`
	PetID       uint      `json:"petId"`
	FeedingTime string    `json:"feedingTime"`
	FoodType    string    `json:"foodType"`
	Portion     string    `json:"portion"`
	Notes       string    `json:"notes"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newFeedingScheduleResponse(schedule models.FeedingSchedule) feedingScheduleResponse {
	return feedingScheduleResponse{
		ID:          schedule.ID,
		PetID:       schedule.PetID,
		FeedingTime: schedule.FeedingTime,
		FoodType:    schedule.FoodType,
		Portion:     schedule.Portion,
		Notes:       schedule.Notes,
		IsActive:    schedule.IsActive,
		CreatedAt:   schedule.CreatedAt,
	}
}

func newFeedingScheduleListResponse(schedules []models.FeedingSchedule) []feedingScheduleResponse {
	responses := make([]feedingScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, newFeedingScheduleResponse(schedule))
	}
	return responses
}

type careProviderResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Website   string    `json:"website"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCareProviderResponse(provider models.CareProvider) careProviderResponse {
	return careProviderResponse{
		ID:        provider.ID,
		Name:      provider.Name,
		Type:      provider.Type,
		Address:   provider.Address,
		Phone:     provider.Phone,
		Email:     provider.Email,
		Website:   provider.Website,
		Notes:     provider.Notes,
		CreatedAt: provider.CreatedAt,
	}
}

type veterinarianResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ClinicName    string `json:"clinicName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
}

func newVeterinarianResponse(vet models.Veterinarian) veterinarianResponse {
	return veterinarianResponse{
		ID:            vet.ID,
		Name:          vet.DisplayName(),
		ClinicName:    vet.ClinicName,
		Phone:         vet.Phone,
		Email:         vet.Email,
		LicenseNumber: vet.LicenseNumber,
	}
}

type notificationSettingsResponse struct {
	EmailNotificationsEnabled bool `json:"emailNotificationsEnabled"`
	PushNotificationsEnabled  bool `json:"pushNotificationsEnabled"`
	AppointmentReminders      bool `json:"appointmentReminders"`
	MedicationReminders       bool `json:"medicationReminders"`
	VaccinationReminders      bool `json:"vaccinationReminders"`
	WeightReminders           bool `json:"weightReminders"`
	FeedingReminders          bool `json:"feedingReminders"`
	ReminderLeadTime          int  `json:"reminderLeadTime"`
}

func newNotificationSettingsResponse(settings models.NotificationSettings) notificationSettingsResponse {
	return notificationSettingsResponse{
		EmailNotificationsEnabled: settings.EmailNotificationsEnabled,
		PushNotificationsEnabled:  settings.PushNotificationsEnabled,
		AppointmentReminders:      settings.AppointmentReminders,
		MedicationReminders:       settings.MedicationReminders,
		VaccinationReminders:      settings.VaccinationReminders,
		WeightReminders:           settings.WeightReminders,
		FeedingReminders:          settings.FeedingReminders,
		ReminderLeadTime:          settings.ReminderLeadTime,
	}
}
