package store

import (
	"cmp"
	"fmt"
	"math"
	"sync"

	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Memory is a Store keyed by an auto-incrementing ID.
//
// If a Persister is configured, every mutation is written through to it.
// A mutation whose snapshot cannot be saved is rolled back.
type Memory struct {
	mu        sync.Mutex
	goals     map[uint64]models.Goal
	nextID    uint64
	persister Persister
}

// NewMemory creates a store and loads all goals from the persister.
// The persister can be nil.
func NewMemory(persister Persister) (*Memory, error) {
	m := &Memory{
		goals:     make(map[uint64]models.Goal),
		nextID:    1,
		persister: persister,
	}

	if persister == nil {
		return m, nil
	}

	goals, err := persister.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goals: %w", err)
	}

	for _, goal := range goals {
		// The counter continues after the largest ID and must not wrap
		if goal.ID == 0 || goal.ID == math.MaxUint64 {
			return nil, fmt.Errorf("failed to load savings goals: invalid ID %d", goal.ID)
		}

		if _, ok := m.goals[goal.ID]; ok {
			return nil, fmt.Errorf("failed to load savings goals: duplicate ID %d", goal.ID)
		}

		m.goals[goal.ID] = goal
		if goal.ID >= m.nextID {
			m.nextID = goal.ID + 1
		}
	}

	log.Debug().Int("goals", len(m.goals)).Uint64("nextID", m.nextID).Msg("store loaded")
	return m, nil
}

// List returns all goals ordered by ID.
func (m *Memory) List() []models.Goal {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sorted()
}

// Get returns the goal with the ID. The boolean is false if there is none.
func (m *Memory) Get(id uint64) (models.Goal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	goal, ok := m.goals[id]
	return goal, ok
}

// Create validates the goal, assigns the next ID and stores it.
//
// Once all IDs are used up, it returns models.ErrGeneral.
func (m *Memory) Create(editable models.GoalEditable) (models.Goal, error) {
	if err := editable.Validate(); err != nil {
		return models.Goal{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.goals[m.nextID]; taken || m.nextID == 0 {
		log.Error().Uint64("nextID", m.nextID).Msg("no savings goal ID available")
		return models.Goal{}, fmt.Errorf("%w: no savings goal ID available", models.ErrGeneral)
	}

	goal := models.Goal{
		ID:           m.nextID,
		GoalEditable: editable,
	}

	m.goals[goal.ID] = goal
	if err := m.persist(); err != nil {
		delete(m.goals, goal.ID)
		return models.Goal{}, err
	}

	m.nextID++
	return goal, nil
}

// Update merges the patch into the goal with the ID.
//
// It returns models.ErrGoalNotFound if there is no such goal.
func (m *Memory) Update(id uint64, patch models.GoalPatch) (models.Goal, error) {
	if err := patch.Validate(); err != nil {
		return models.Goal{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.goals[id]
	if !ok {
		return models.Goal{}, models.ErrGoalNotFound
	}

	updated := existing.Apply(patch)
	if err := updated.Validate(); err != nil {
		return models.Goal{}, err
	}

	m.goals[id] = updated
	if err := m.persist(); err != nil {
		m.goals[id] = existing
		return models.Goal{}, err
	}

	return updated, nil
}

// Delete removes the goal with the ID. Deleting an ID that does not
// exist is not an error.
func (m *Memory) Delete(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.goals[id]
	if !ok {
		return nil
	}

	delete(m.goals, id)
	if err := m.persist(); err != nil {
		m.goals[id] = existing
		return err
	}

	return nil
}

// Len returns the number of goals.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.goals)
}

// Ping checks the persister if it supports health checks.
func (m *Memory) Ping() error {
	if p, ok := m.persister.(Pinger); ok {
		return p.Ping()
	}

	return nil
}

// persist saves a snapshot. m.mu must be held.
func (m *Memory) persist() error {
	if m.persister == nil {
		return nil
	}

	if err := m.persister.Save(m.sorted()); err != nil {
		log.Error().Err(err).Msg("saving savings goals failed")
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	return nil
}

// sorted returns all goals ordered by ID. m.mu must be held.
func (m *Memory) sorted() []models.Goal {
	goals := make([]models.Goal, 0, len(m.goals))
	for _, goal := range m.goals {
		goals = append(goals, goal)
	}

	slices.SortFunc(goals, func(a, b models.Goal) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return goals
}
