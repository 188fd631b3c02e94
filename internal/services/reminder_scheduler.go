package services

import (
	"fmt"
	"time"

	"github.com/petpalhq/petpal/internal/models"
)

// RecomputeReminderOnSave refreshes NextReminderDue after any change to a
// medication's reminder configuration. Disabled or timeless reminders clear
// both reminder timestamps.
func RecomputeReminderOnSave(medication *models.Medication, now time.Time) error {
	if !medication.ReminderEnabled || medication.ReminderTime == nil {
		medication.NextReminderDue = nil
		medication.LastReminderSent = nil
		return nil
	}

	timeOfDay, err := ParseTimeOfDay(*medication.ReminderTime)
	if err != nil {
		return err
	}

	candidate := CombineDateAndTime(now, timeOfDay)
	if !candidate.After(now.UTC()) {
		// Today's slot has already passed; roll to tomorrow.
		candidate = candidate.AddDate(0, 0, 1)
	}
	medication.NextReminderDue = &candidate
	return nil
}

// AcknowledgeReminderSent records that a reminder fired and schedules the
// next one exactly one day after the previous due slot, keeping the
// fires-once-per-day cadence independent of when the acknowledgement arrives.
// Note this deliberately differs from RecomputeReminderOnSave: editing and
// acknowledging the same medication out of order can produce different due
// values on the two paths.
func AcknowledgeReminderSent(medication *models.Medication, now time.Time) error {
	if !medication.ReminderEnabled {
		return fmt.Errorf("%w: reminders are not enabled for this medication", ErrInvalidState)
	}

	sentAt := now.UTC()
	medication.LastReminderSent = &sentAt

	if medication.NextReminderDue != nil {
		next := medication.NextReminderDue.AddDate(0, 0, 1)
		medication.NextReminderDue = &next
		return nil
	}
	if medication.ReminderTime != nil {
		timeOfDay, err := ParseTimeOfDay(*medication.ReminderTime)
		if err != nil {
			return err
		}
		next := CombineDateAndTime(now, timeOfDay).AddDate(0, 0, 1)
		medication.NextReminderDue = &next
	}
	return nil
}
