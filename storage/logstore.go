package storage

import "github.com/vatsala281203/food-logger/models"

// LogStore is the append-only meal log. Entries are never edited or
// individually deleted; the only destructive operation is a full clear.
// Implementations must make each operation atomic from the caller's
// viewpoint (no partial-write visibility).
type LogStore interface {
	// Append adds one entry at the end of the sequence.
	Append(entry models.MealLogEntry) error
	// ReadAll returns the full history oldest-first. A store with no
	// prior state returns an empty slice, not an error.
	ReadAll() ([]models.MealLogEntry, error)
	// Clear deletes all entries unconditionally. Confirmation is the
	// caller's responsibility.
	Clear() error
}
