package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/petpalhq/petpal/internal/services"
)

const dateLayout = "2006-01-02"

// RenderCSV lays the export out as titled sections, one blank line between
// them. Empty sections are omitted entirely.
func RenderCSV(data services.PetExport) []byte {
	var out strings.Builder

	out.WriteString("PET INFORMATION\n")
	out.WriteString("Name,Species,Breed,Date of Birth,Weight,Color,Microchip Number\n")
	out.WriteString(strings.Join([]string{
		escapeField(data.Pet.Name),
		escapeField(data.Pet.Species),
		escapeField(data.Pet.Breed),
		data.Pet.DateOfBirth.Format(dateLayout),
		formatWeight(data.Pet.Weight),
		escapeField(data.Pet.Color),
		escapeField(data.Pet.MicrochipNumber),
	}, ",") + "\n\n")

	if len(data.Owners) > 0 {
		out.WriteString("OWNERS\n")
		out.WriteString("Name,Email,Phone\n")
		for _, owner := range data.Owners {
			if owner.UserProfile == nil {
				continue
			}
			out.WriteString(strings.Join([]string{
				escapeField(owner.UserProfile.DisplayName()),
				escapeField(owner.UserProfile.Email),
				escapeField(owner.UserProfile.Phone),
			}, ",") + "\n")
		}
		out.WriteString("\n")
	}

	if len(data.HealthRecords) > 0 {
		out.WriteString("HEALTH RECORDS\n")
		out.WriteString("Record Type,Description,Record Date,Due Date,Veterinarian,Notes\n")
		for _, record := range data.HealthRecords {
			vetName := ""
			if record.Veterinarian != nil {
				vetName = record.Veterinarian.DisplayName()
			}
			out.WriteString(strings.Join([]string{
				escapeField(record.RecordType),
				escapeField(record.Description),
				record.RecordDate.Format(dateLayout),
				formatOptionalDate(record.DueDate),
				escapeField(vetName),
				escapeField(record.Notes),
			}, ",") + "\n")
		}
		out.WriteString("\n")
	}

	if len(data.Medications) > 0 {
		out.WriteString("MEDICATIONS\n")
		out.WriteString("Name,Dosage,Frequency,Start Date,End Date,Instructions,Prescriber,Active\n")
		for _, medication := range data.Medications {
			out.WriteString(strings.Join([]string{
				escapeField(medication.Name),
				escapeField(medication.Dosage),
				escapeField(medication.Frequency),
				medication.StartDate.Format(dateLayout),
				formatOptionalDate(medication.EndDate),
				escapeField(medication.Instructions),
				escapeField(medication.Prescriber),
				fmt.Sprintf("%t", medication.IsActive),
			}, ",") + "\n")
		}
		out.WriteString("\n")
	}

	if len(data.Appointments) > 0 {
		out.WriteString("APPOINTMENTS\n")
		out.WriteString("Date,Time,Type,Veterinarian,Notes,Status\n")
		for _, appointment := range data.Appointments {
			vetName := ""
			if appointment.Veterinarian != nil {
				vetName = appointment.Veterinarian.DisplayName()
			}
			out.WriteString(strings.Join([]string{
				appointment.AppointmentDate.Format(dateLayout),
				appointment.AppointmentTime,
				escapeField(appointment.AppointmentType),
				escapeField(vetName),
				escapeField(appointment.Notes),
				appointment.Status,
			}, ",") + "\n")
		}
		out.WriteString("\n")
	}

	if len(data.Weights) > 0 {
		out.WriteString("WEIGHT RECORDS\n")
		out.WriteString("Weight,Date,Notes\n")
		for _, weight := range data.Weights {
			out.WriteString(strings.Join([]string{
				formatWeight(weight.WeightValue),
				weight.Date.Format(dateLayout),
				escapeField(weight.Notes),
			}, ",") + "\n")
		}
		out.WriteString("\n")
	}

	if len(data.FeedingSchedules) > 0 {
		out.WriteString("FEEDING SCHEDULES\n")
		out.WriteString("Food Type,Amount,Frequency,Special Instructions\n")
		for _, schedule := range data.FeedingSchedules {
			out.WriteString(strings.Join([]string{
				escapeField(schedule.FoodType),
				escapeField(schedule.Portion),
				schedule.FeedingTime,
				escapeField(schedule.Notes),
			}, ",") + "\n")
		}
	}

	return []byte(out.String())
}

func formatOptionalDate(instant *time.Time) string {
	if instant == nil {
		return ""
	}
	return instant.Format(dateLayout)
}

func formatWeight(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

// escapeField quotes a value containing commas, quotes or line breaks,
// doubling embedded quotes.
func escapeField(field string) string {
	if field == "" {
		return ""
	}
	if strings.ContainsAny(field, ",\"\n\r") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}
