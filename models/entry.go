package models

import "time"

// TimeLayout is the canonical timestamp form for persisted entries:
// RFC3339 in UTC, so the first ten characters are the calendar date and
// same-day entries share a string prefix.
const TimeLayout = time.RFC3339

// Nutrition is the per-serving nutrition snapshot attached to an entry.
// All fields are non-negative.
type Nutrition struct {
	Calories float64 `json:"calories_kcal"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

// MealLogEntry is one user-confirmed meal record. Entries are immutable
// once appended; the whole log is only ever appended to or cleared.
type MealLogEntry struct {
	Label     string     `json:"label"`
	Time      string     `json:"time"` // RFC3339 UTC, assigned at creation
	ServingG  float64    `json:"serving_g"`
	Nutrition *Nutrition `json:"nutrition"` // nil when the service had no data
}

// DatePrefix returns the calendar-date portion ("2006-01-02") of the
// entry timestamp, used to bucket entries into days.
func (e MealLogEntry) DatePrefix() string {
	if len(e.Time) < 10 {
		return e.Time
	}
	return e.Time[:10]
}

// ParsedTime parses the canonical timestamp. Entries written by this
// service always parse; a zero time is returned for anything that does not.
func (e MealLogEntry) ParsedTime() time.Time {
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}
