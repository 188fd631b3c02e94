package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/petpalhq/petpal/internal/models"
)

type ExportSection string

const (
	ExportSectionBasicInfo        ExportSection = "BasicInfo"
	ExportSectionHealthRecords    ExportSection = "HealthRecords"
	ExportSectionMedications      ExportSection = "Medications"
	ExportSectionAppointments     ExportSection = "Appointments"
	ExportSectionWeightRecords    ExportSection = "WeightRecords"
	ExportSectionFeedingSchedules ExportSection = "FeedingSchedules"
	ExportSectionAll              ExportSection = "All"
)

var exportSections = map[string]ExportSection{
	"basicinfo":        ExportSectionBasicInfo,
	"healthrecords":    ExportSectionHealthRecords,
	"medications":      ExportSectionMedications,
	"appointments":     ExportSectionAppointments,
	"weightrecords":    ExportSectionWeightRecords,
	"feedingschedules": ExportSectionFeedingSchedules,
	"all":              ExportSectionAll,
}

func ParseExportSection(value string) (ExportSection, error) {
	if value == "" {
		return ExportSectionAll, nil
	}
	section, ok := exportSections[strings.ToLower(value)]
	if !ok {
		return "", fmt.Errorf("%w: unknown export section %q", ErrInvalidInput, value)
	}
	return section, nil
}

// ExportSectionSet is the set of requested sections. An empty set is the
// same as requesting All.
type ExportSectionSet map[ExportSection]bool

// ParseExportSections parses every requested name, rejecting the whole
// request on the first unknown section.
func ParseExportSections(values []string) (ExportSectionSet, error) {
	set := make(ExportSectionSet, len(values))
	for _, value := range values {
		section, err := ParseExportSection(value)
		if err != nil {
			return nil, err
		}
		set[section] = true
	}
	return set, nil
}

func (set ExportSectionSet) includes(target ExportSection) bool {
	return len(set) == 0 || set[ExportSectionAll] || set[target]
}

type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "CSV"
	ExportFormatPDF ExportFormat = "PDF"
)

func ParseExportFormat(value string) (ExportFormat, error) {
	switch strings.ToUpper(value) {
	case "CSV":
		return ExportFormatCSV, nil
	case "PDF":
		return ExportFormatPDF, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, value)
}

// ExportRange bounds a section's natural date. Nil ends are open.
type ExportRange struct {
	From *time.Time
	To   *time.Time
}

func (bounds ExportRange) contains(instant time.Time) bool {
	if bounds.From != nil && instant.Before(*bounds.From) {
		return false
	}
	if bounds.To != nil && instant.After(*bounds.To) {
		return false
	}
	return true
}

type FeedingScheduleReader interface {
	ListForPet(petID uint) ([]models.FeedingSchedule, error)
}

type OwnerReader interface {
	ListOwners(petID uint) ([]models.PetOwner, error)
}

// PetExport carries everything a rendered export needs, already ordered.
// Slices for sections outside the requested scope stay nil.
type PetExport struct {
	GeneratedAt      time.Time
	Format           ExportFormat
	Sections         ExportSectionSet
	Pet              models.Pet
	Owners           []models.PetOwner
	HealthRecords    []models.HealthRecord
	Medications      []models.Medication
	Appointments     []models.Appointment
	Weights          []models.Weight
	FeedingSchedules []models.FeedingSchedule
}

type ExportService struct {
	owners        OwnerReader
	healthRecords HealthRecordReader
	medications   MedicationReader
	appointments  AppointmentReader
	weights       WeightReader
	feedings      FeedingScheduleReader
}

func NewExportService(
	owners OwnerReader,
	healthRecords HealthRecordReader,
	medications MedicationReader,
	appointments AppointmentReader,
	weights WeightReader,
	feedings FeedingScheduleReader,
) *ExportService {
	return &ExportService{
		owners:        owners,
		healthRecords: healthRecords,
		medications:   medications,
		appointments:  appointments,
		weights:       weights,
		feedings:      feedings,
	}
}

// Assemble fetches the requested sections for one pet, bounded by the date
// range. Each section is ordered newest first on its natural date, feeding
// schedules by time of day.
func (service *ExportService) Assemble(pet models.Pet, format ExportFormat, sections ExportSectionSet, bounds ExportRange, now time.Time) (PetExport, error) {
	export := PetExport{
		GeneratedAt: now.UTC(),
		Format:      format,
		Sections:    sections,
		Pet:         pet,
	}

	owners, err := service.owners.ListOwners(pet.ID)
	if err != nil {
		return PetExport{}, err
	}
	export.Owners = owners

	petIDs := []uint{pet.ID}

	if sections.includes(ExportSectionHealthRecords) {
		records, err := service.healthRecords.ListForPets(petIDs)
		if err != nil {
			return PetExport{}, err
		}
		matched := records[:0]
		for _, record := range records {
			if bounds.contains(record.RecordDate) {
				matched = append(matched, record)
			}
		}
		sort.SliceStable(matched, func(left, right int) bool {
			return matched[left].RecordDate.After(matched[right].RecordDate)
		})
		export.HealthRecords = matched
	}

	if sections.includes(ExportSectionMedications) {
		medications, err := service.medications.ListForPets(petIDs)
		if err != nil {
			return PetExport{}, err
		}
		matched := medications[:0]
		for _, medication := range medications {
			if bounds.From != nil && medication.StartDate.Before(*bounds.From) {
				continue
			}
			if bounds.To != nil && medication.EndDate != nil && medication.EndDate.After(*bounds.To) {
				continue
			}
			matched = append(matched, medication)
		}
		sort.SliceStable(matched, func(left, right int) bool {
			return matched[left].StartDate.After(matched[right].StartDate)
		})
		export.Medications = matched
	}

	if sections.includes(ExportSectionAppointments) {
		appointments, err := service.appointments.ListForPets(petIDs)
		if err != nil {
			return PetExport{}, err
		}
		matched := appointments[:0]
		for _, appointment := range appointments {
			if bounds.contains(appointment.AppointmentDate) {
				matched = append(matched, appointment)
			}
		}
		sort.SliceStable(matched, func(left, right int) bool {
			return matched[left].AppointmentDate.After(matched[right].AppointmentDate)
		})
		export.Appointments = matched
	}

	if sections.includes(ExportSectionWeightRecords) {
		weights, err := service.weights.ListForPet(pet.ID)
		if err != nil {
			return PetExport{}, err
		}
		matched := weights[:0]
		for _, weight := range weights {
			if bounds.contains(weight.Date) {
				matched = append(matched, weight)
			}
		}
		sort.SliceStable(matched, func(left, right int) bool {
			return matched[left].Date.After(matched[right].Date)
		})
		export.Weights = matched
	}

	if sections.includes(ExportSectionFeedingSchedules) {
		feedings, err := service.feedings.ListForPet(pet.ID)
		if err != nil {
			return PetExport{}, err
		}
		sort.SliceStable(feedings, func(left, right int) bool {
			return feedings[left].FeedingTime < feedings[right].FeedingTime
		})
		export.FeedingSchedules = feedings
	}

	return export, nil
}

// PrimaryOwnerName resolves the display name of the primary owner, falling
// back to the first listed owner when no primary is flagged.
func (export PetExport) PrimaryOwnerName() string {
	var fallback string
	for _, owner := range export.Owners {
		if owner.UserProfile == nil {
			continue
		}
		if owner.IsPrimaryOwner {
			return owner.UserProfile.DisplayName()
		}
		if fallback == "" {
			fallback = owner.UserProfile.DisplayName()
		}
	}
	return fallback
}
