// Package storage loads and saves the task store as a single JSON file.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jacksmith/desk/internal/model"
)

// DefaultDataFile is the backing file used when nothing else is configured.
const DefaultDataFile = "tasks.json"

// Storage provides access to the backing file of a task store.
type Storage struct {
	path string
}

// New returns a Storage for the given file. An empty path selects
// DefaultDataFile in the working directory.
func New(path string) *Storage {
	if path == "" {
		path = DefaultDataFile
	}
	return &Storage{path: path}
}

// Path returns the path of the backing file.
func (s *Storage) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the whole store from the backing file.
// A missing file yields an empty store.
func (s *Storage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	store, err := model.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return store, nil
}

// Save writes the whole store to the backing file, replacing its contents.
// The file is overwritten in place.
func (s *Storage) Save(store *model.Store) error {
	data, err := model.Encode(store)
	if err != nil {
		return fmt.Errorf("failed to encode task store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
