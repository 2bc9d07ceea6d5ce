package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vatsala281203/food-logger/models"
)

// FileStore persists the meal log as a single slot file holding one
// JSON-serialized array of entries.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(entry models.MealLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readSlot()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return s.writeSlot(entries)
}

func (s *FileStore) ReadAll() ([]models.MealLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readSlot()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// readSlot loads the slot file. A missing file is an empty log. An
// unparseable file is quarantined next to the slot and treated as empty
// so a corrupt slot can never take the service down.
func (s *FileStore) readSlot() ([]models.MealLogEntry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.MealLogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read log slot: %w", err)
	}

	var entries []models.MealLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		quarantine := fmt.Sprintf("%s.corrupt-%d", s.path, time.Now().UnixNano())
		if renameErr := os.Rename(s.path, quarantine); renameErr != nil {
			log.Printf("WARN: log slot %s is corrupt and could not be quarantined: %v", s.path, renameErr)
		} else {
			log.Printf("WARN: log slot %s is corrupt, moved to %s and starting empty: %v", s.path, quarantine, err)
		}
		return []models.MealLogEntry{}, nil
	}
	if entries == nil {
		entries = []models.MealLogEntry{}
	}
	return entries, nil
}

// writeSlot replaces the slot contents via a temp file and rename, so a
// failed write never leaves a half-written slot behind.
func (s *FileStore) writeSlot(entries []models.MealLogEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize log entries: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write log slot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace log slot: %w", err)
	}
	return nil
}
