package ops

import "github.com/jacksmith/desk/internal/model"

// Store defines the persistence interface used by the task manager.
// The concrete implementation is storage.Storage; tests use an in-memory one.
type Store interface {
	Load() (*model.Store, error)
	Save(s *model.Store) error
	Path() string
}
