// Package store holds the authoritative set of savings goals.
package store

import "github.com/envelope-zero/savings-goals/internal/models"

// Store is the set of operations the API needs on savings goals.
type Store interface {
	List() []models.Goal
	Get(id uint64) (models.Goal, bool)
	Create(editable models.GoalEditable) (models.Goal, error)
	Update(id uint64, patch models.GoalPatch) (models.Goal, error)
	Delete(id uint64) error
}

// Persister mirrors the full contents of a store to durable storage.
//
// Save always receives all goals ordered by ID. Load on an empty
// storage returns no goals and no error.
type Persister interface {
	Load() ([]models.Goal, error)
	Save(goals []models.Goal) error
}

// Pinger is implemented by components that can report their health.
type Pinger interface {
	Ping() error
}
