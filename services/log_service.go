package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vatsala281203/food-logger/models"
	"github.com/vatsala281203/food-logger/storage"
)

// DefaultServingG is used when a request carries no usable serving size.
const DefaultServingG = 100

// ErrInvalidEntry marks a rejected entry, as opposed to a store failure.
var ErrInvalidEntry = errors.New("invalid log entry")

// LogService creates and reads meal log entries. The clock is injected
// so entry stamping and day bucketing stay deterministic under test.
type LogService struct {
	store storage.LogStore
	now   func() time.Time
}

func NewLogService(store storage.LogStore, now func() time.Time) *LogService {
	if now == nil {
		now = time.Now
	}
	return &LogService{store: store, now: now}
}

// Log appends one entry. The timestamp is assigned here, once, in UTC;
// a non-positive serving falls back to DefaultServingG. Nutrition may be
// nil; negative nutrition values are rejected.
func (s *LogService) Log(label string, servingG float64, nutrition *models.Nutrition) (*models.MealLogEntry, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", ErrInvalidEntry)
	}
	if servingG <= 0 {
		servingG = DefaultServingG
	}
	if nutrition != nil {
		if nutrition.Calories < 0 || nutrition.Protein < 0 || nutrition.Carbs < 0 || nutrition.Fat < 0 {
			return nil, fmt.Errorf("%w: nutrition values must be non-negative", ErrInvalidEntry)
		}
	}

	entry := models.MealLogEntry{
		Label:     label,
		Time:      s.now().UTC().Format(models.TimeLayout),
		ServingG:  servingG,
		Nutrition: nutrition,
	}
	if err := s.store.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to append log entry: %w", err)
	}
	return &entry, nil
}

// All returns the full history, oldest first.
func (s *LogService) All() ([]models.MealLogEntry, error) {
	return s.store.ReadAll()
}

// Clear wipes the whole log. Callers are responsible for confirming the
// user really meant it.
func (s *LogService) Clear() error {
	return s.store.Clear()
}
