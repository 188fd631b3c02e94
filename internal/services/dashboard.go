package services

import (
	"sort"
	"time"

	"github.com/petpalhq/petpal/internal/models"
)

const (
	userDashboardLimit = 10
	petDashboardLimit  = 5
)

type PetReader interface {
	ListByOwner(userProfileID uint) ([]models.Pet, error)
}

type AppointmentReader interface {
	ListForPets(petIDs []uint) ([]models.Appointment, error)
}

type MedicationReader interface {
	ListForPets(petIDs []uint) ([]models.Medication, error)
}

type HealthRecordReader interface {
	ListForPets(petIDs []uint) ([]models.HealthRecord, error)
}

type WeightReader interface {
	ListForPet(petID uint) ([]models.Weight, error)
}

type CalendarService struct {
	pets          PetReader
	appointments  AppointmentReader
	medications   MedicationReader
	healthRecords HealthRecordReader
	weights       WeightReader
}

func NewCalendarService(
	pets PetReader,
	appointments AppointmentReader,
	medications MedicationReader,
	healthRecords HealthRecordReader,
	weights WeightReader,
) *CalendarService {
	return &CalendarService{
		pets:          pets,
		appointments:  appointments,
		medications:   medications,
		healthRecords: healthRecords,
		weights:       weights,
	}
}

type PetDashboardSummary struct {
	PetID                     uint   `json:"petId"`
	PetName                   string `json:"petName"`
	Species                   string `json:"species"`
	Breed                     string `json:"breed"`
	ImageURL                  string `json:"imageUrl"`
	UpcomingAppointmentsCount int    `json:"upcomingAppointmentsCount"`
	ActiveMedicationsCount    int    `json:"activeMedicationsCount"`
	UpcomingVaccinationsCount int    `json:"upcomingVaccinationsCount"`
}

type UserDashboard struct {
	UserProfileID             uint                  `json:"userProfileId"`
	UserName                  string                `json:"userName"`
	Pets                      []PetDashboardSummary `json:"pets"`
	UpcomingEvents            []CalendarEvent       `json:"upcomingEvents"`
	TotalPets                 int                   `json:"totalPets"`
	TotalUpcomingAppointments int                   `json:"totalUpcomingAppointments"`
	TotalActiveMedications    int                   `json:"totalActiveMedications"`
	TotalUpcomingVaccinations int                   `json:"totalUpcomingVaccinations"`
}

type HealthRecordSummary struct {
	ID               uint       `json:"id"`
	RecordType       string     `json:"recordType"`
	Description      string     `json:"description"`
	RecordDate       time.Time  `json:"recordDate"`
	DueDate          *time.Time `json:"dueDate"`
	VeterinarianName string     `json:"veterinarianName,omitempty"`
}

type MedicationSummary struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Dosage          string     `json:"dosage"`
	Frequency       string     `json:"frequency"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	ReminderEnabled bool       `json:"reminderEnabled"`
	NextReminderDue *time.Time `json:"nextReminderDue"`
}

type AppointmentSummary struct {
	ID               uint      `json:"id"`
	AppointmentDate  time.Time `json:"appointmentDate"`
	AppointmentTime  string    `json:"appointmentTime"`
	AppointmentType  string    `json:"appointmentType"`
	VeterinarianName string    `json:"veterinarianName,omitempty"`
	Status           string    `json:"status"`
}

type WeightSummary struct {
	ID          uint      `json:"id"`
	WeightValue float64   `json:"weightValue"`
	RecordDate  time.Time `json:"recordDate"`
}

type PetDashboard struct {
	PetID                     uint                  `json:"petId"`
	PetName                   string                `json:"petName"`
	Species                   string                `json:"species"`
	Breed                     string                `json:"breed"`
	DateOfBirth               time.Time             `json:"dateOfBirth"`
	CurrentWeight             float64               `json:"currentWeight"`
	ImageURL                  string                `json:"imageUrl"`
	UpcomingAppointmentsCount int                   `json:"upcomingAppointmentsCount"`
	ActiveMedicationsCount    int                   `json:"activeMedicationsCount"`
	UpcomingVaccinationsCount int                   `json:"upcomingVaccinationsCount"`
	RecentHealthRecords       []HealthRecordSummary `json:"recentHealthRecords"`
	ActiveMedications         []MedicationSummary   `json:"activeMedications"`
	UpcomingAppointments      []AppointmentSummary  `json:"upcomingAppointments"`
	RecentWeightRecords       []WeightSummary       `json:"recentWeightRecords"`
}

// FilterUpcomingAppointments keeps non-cancelled appointments from now on,
// ordered by date then time of day.
func FilterUpcomingAppointments(appointments []models.Appointment, now time.Time) []models.Appointment {
	matched := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == models.AppointmentStatusCancelled {
			continue
		}
		if appointment.AppointmentDate.Before(now) {
			continue
		}
		matched = append(matched, appointment)
	}
	sort.SliceStable(matched, func(left, right int) bool {
		if !matched[left].AppointmentDate.Equal(matched[right].AppointmentDate) {
			return matched[left].AppointmentDate.Before(matched[right].AppointmentDate)
		}
		return matched[left].AppointmentTime < matched[right].AppointmentTime
	})
	return matched
}

// FilterActiveMedications keeps active medications that have not ended,
// ordered by next reminder due with unscheduled ones last.
func FilterActiveMedications(medications []models.Medication, now time.Time) []models.Medication {
	matched := make([]models.Medication, 0, len(medications))
	for _, medication := range medications {
		if !medication.IsActive {
			continue
		}
		if medication.EndDate != nil && medication.EndDate.Before(now) {
			continue
		}
		matched = append(matched, medication)
	}
	sort.SliceStable(matched, func(left, right int) bool {
		leftDue, rightDue := matched[left].NextReminderDue, matched[right].NextReminderDue
		if leftDue == nil {
			return false
		}
		if rightDue == nil {
			return true
		}
		return leftDue.Before(*rightDue)
	})
	return matched
}

func sortVaccinationsByDue(records []models.HealthRecord) {
	sort.SliceStable(records, func(left, right int) bool {
		return records[left].DueDate.Before(*records[right].DueDate)
	})
}

func capAppointments(appointments []models.Appointment, limit int) []models.Appointment {
	if len(appointments) > limit {
		return appointments[:limit]
	}
	return appointments
}

func capMedications(medications []models.Medication, limit int) []models.Medication {
	if len(medications) > limit {
		return medications[:limit]
	}
	return medications
}

func capHealthRecords(records []models.HealthRecord, limit int) []models.HealthRecord {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}

func withReminderDue(medications []models.Medication) []models.Medication {
	matched := make([]models.Medication, 0, len(medications))
	for _, medication := range medications {
		if medication.ReminderEnabled && medication.NextReminderDue != nil {
			matched = append(matched, medication)
		}
	}
	return matched
}

// BuildUserDashboard aggregates every pet the profile owns into summaries and
// one merged upcoming-event feed. Counts are derived from the same slices
// that feed the event list.
func (service *CalendarService) BuildUserDashboard(profile models.UserProfile, now time.Time) (UserDashboard, error) {
	pets, err := service.pets.ListByOwner(profile.ID)
	if err != nil {
		return UserDashboard{}, err
	}

	petIDs := make([]uint, 0, len(pets))
	petNames := make(map[uint]string, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
		petNames[pet.ID] = pet.Name
	}

	appointments, medications, healthRecords, err := service.loadSources(petIDs)
	if err != nil {
		return UserDashboard{}, err
	}

	window := DashboardWindow(now)
	upcomingAppointments := capAppointments(FilterUpcomingAppointments(appointments, now), userDashboardLimit)
	activeMedications := capMedications(FilterActiveMedications(medications, now), userDashboardLimit)
	upcomingVaccinations := FilterVaccinationsDue(healthRecords, window)
	sortVaccinationsByDue(upcomingVaccinations)
	upcomingVaccinations = capHealthRecords(upcomingVaccinations, userDashboardLimit)

	events := BuildCalendarEvents(upcomingAppointments, withReminderDue(activeMedications), upcomingVaccinations, petNames)

	summaries := make([]PetDashboardSummary, 0, len(pets))
	for _, pet := range pets {
		summaries = append(summaries, PetDashboardSummary{
			PetID:                     pet.ID,
			PetName:                   pet.Name,
			Species:                   pet.Species,
			Breed:                     pet.Breed,
			ImageURL:                  pet.ImageURL,
			UpcomingAppointmentsCount: countAppointmentsForPet(upcomingAppointments, pet.ID),
			ActiveMedicationsCount:    countMedicationsForPet(activeMedications, pet.ID),
			UpcomingVaccinationsCount: countHealthRecordsForPet(upcomingVaccinations, pet.ID),
		})
	}

	return UserDashboard{
		UserProfileID:             profile.ID,
		UserName:                  profile.DisplayName(),
		Pets:                      summaries,
		UpcomingEvents:            events,
		TotalPets:                 len(pets),
		TotalUpcomingAppointments: len(upcomingAppointments),
		TotalActiveMedications:    len(activeMedications),
		TotalUpcomingVaccinations: len(upcomingVaccinations),
	}, nil
}

// BuildPetDashboard aggregates one pet's recent records and upcoming items.
func (service *CalendarService) BuildPetDashboard(pet models.Pet, now time.Time) (PetDashboard, error) {
	appointments, medications, healthRecords, err := service.loadSources([]uint{pet.ID})
	if err != nil {
		return PetDashboard{}, err
	}
	weights, err := service.weights.ListForPet(pet.ID)
	if err != nil {
		return PetDashboard{}, err
	}

	window := DashboardWindow(now)
	upcomingAppointments := capAppointments(FilterUpcomingAppointments(appointments, now), petDashboardLimit)
	activeMedications := capMedications(FilterActiveMedications(medications, now), petDashboardLimit)
	upcomingVaccinations := FilterVaccinationsDue(healthRecords, window)
	sortVaccinationsByDue(upcomingVaccinations)
	upcomingVaccinations = capHealthRecords(upcomingVaccinations, petDashboardLimit)

	recentRecords := append([]models.HealthRecord(nil), healthRecords...)
	sort.SliceStable(recentRecords, func(left, right int) bool {
		return recentRecords[left].RecordDate.After(recentRecords[right].RecordDate)
	})
	recentRecords = capHealthRecords(recentRecords, petDashboardLimit)

	sort.SliceStable(weights, func(left, right int) bool {
		return weights[left].Date.After(weights[right].Date)
	})
	if len(weights) > petDashboardLimit {
		weights = weights[:petDashboardLimit]
	}

	dashboard := PetDashboard{
		PetID:                     pet.ID,
		PetName:                   pet.Name,
		Species:                   pet.Species,
		Breed:                     pet.Breed,
		DateOfBirth:               pet.DateOfBirth,
		CurrentWeight:             pet.Weight,
		ImageURL:                  pet.ImageURL,
		UpcomingAppointmentsCount: len(upcomingAppointments),
		ActiveMedicationsCount:    len(activeMedications),
		UpcomingVaccinationsCount: len(upcomingVaccinations),
	}

	dashboard.RecentHealthRecords = make([]HealthRecordSummary, 0, len(recentRecords))
	for _, record := range recentRecords {
		dashboard.RecentHealthRecords = append(dashboard.RecentHealthRecords, HealthRecordSummary{
			ID:               record.ID,
			RecordType:       record.RecordType,
			Description:      record.Description,
			RecordDate:       record.RecordDate,
			DueDate:          record.DueDate,
			VeterinarianName: veterinarianName(record.Veterinarian),
		})
	}

	dashboard.ActiveMedications = make([]MedicationSummary, 0, len(activeMedications))
	for _, medication := range activeMedications {
		dashboard.ActiveMedications = append(dashboard.ActiveMedications, MedicationSummary{
			ID:              medication.ID,
			Name:            medication.Name,
			Dosage:          medication.Dosage,
			Frequency:       medication.Frequency,
			StartDate:       medication.StartDate,
			EndDate:         medication.EndDate,
			ReminderEnabled: medication.ReminderEnabled,
			NextReminderDue: medication.NextReminderDue,
		})
	}

	dashboard.UpcomingAppointments = make([]AppointmentSummary, 0, len(upcomingAppointments))
	for _, appointment := range upcomingAppointments {
		dashboard.UpcomingAppointments = append(dashboard.UpcomingAppointments, AppointmentSummary{
			ID:               appointment.ID,
			AppointmentDate:  appointment.AppointmentDate,
			AppointmentTime:  appointment.AppointmentTime,
			AppointmentType:  appointment.AppointmentType,
			VeterinarianName: veterinarianName(appointment.Veterinarian),
			Status:           appointment.Status,
		})
	}

	dashboard.RecentWeightRecords = make([]WeightSummary, 0, len(weights))
	for _, weight := range weights {
		dashboard.RecentWeightRecords = append(dashboard.RecentWeightRecords, WeightSummary{
			ID:          weight.ID,
			WeightValue: weight.WeightValue,
			RecordDate:  weight.Date,
		})
	}

	return dashboard, nil
}

// BuildCalendar merges the three sources for the given pets into one ordered
// feed bounded by the window.
func (service *CalendarService) BuildCalendar(pets []models.Pet, window CalendarWindow) ([]CalendarEvent, error) {
	petIDs := make([]uint, 0, len(pets))
	petNames := make(map[uint]string, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
		petNames[pet.ID] = pet.Name
	}

	appointments, medications, healthRecords, err := service.loadSources(petIDs)
	if err != nil {
		return nil, err
	}

	return BuildCalendarEvents(
		FilterAppointments(appointments, window),
		FilterMedicationReminders(medications, window),
		FilterVaccinationsDue(healthRecords, window),
		petNames,
	), nil
}

func (service *CalendarService) loadSources(petIDs []uint) ([]models.Appointment, []models.Medication, []models.HealthRecord, error) {
	if len(petIDs) == 0 {
		return nil, nil, nil, nil
	}
	appointments, err := service.appointments.ListForPets(petIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	medications, err := service.medications.ListForPets(petIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	healthRecords, err := service.healthRecords.ListForPets(petIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	return appointments, medications, healthRecords, nil
}

func countAppointmentsForPet(appointments []models.Appointment, petID uint) int {
	count := 0
	for _, appointment := range appointments {
		if appointment.PetID == petID {
			count++
		}
	}
	return count
}

func countMedicationsForPet(medications []models.Medication, petID uint) int {
	count := 0
	for _, medication := range medications {
		if medication.PetID == petID {
			count++
		}
	}
	return count
}

func countHealthRecordsForPet(records []models.HealthRecord, petID uint) int {
	count := 0
	for _, record := range records {
		if record.PetID == petID {
			count++
		}
	}
	return count
}

func veterinarianName(vet *models.Veterinarian) string {
	if vet == nil {
		return ""
	}
	return vet.DisplayName()
}
