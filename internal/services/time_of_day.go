package services

import (
	"fmt"
	"strings"
	"time"
)

const timeOfDayLayout = "15:04"

// ParseTimeOfDay validates an "HH:MM" clock value and returns the offset from
// midnight.
func ParseTimeOfDay(value string) (time.Duration, error) {
	parsed, err := time.Parse(timeOfDayLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: time of day must be HH:MM", ErrInvalidInput)
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}

// CombineDateAndTime anchors a time-of-day onto the UTC date of the given
// instant.
func CombineDateAndTime(instant time.Time, timeOfDay time.Duration) time.Time {
	day := instant.UTC().Truncate(24 * time.Hour)
	return day.Add(timeOfDay)
}

func FormatTimeOfDay(offset time.Duration) string {
	return time.Time{}.Add(offset).Format(timeOfDayLayout)
}
