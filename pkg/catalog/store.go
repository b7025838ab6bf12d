package catalog

import (
	"sync"

	"github.com/rentvehicle/rentkit/pkg/validator"
)

// Store is an in-memory vehicle catalog safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	vehicles []*Vehicle
	byID     map[string]*Vehicle
}

// NewStore creates an empty catalog.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*Vehicle),
	}
}

// Add validates and inserts a new vehicle. The id must be unique.
func (s *Store) Add(v Vehicle) error {
	if err := validator.Apply(
		validator.Required("id", v.ID),
		validator.Required("name", v.Name),
		validator.NonNegative("base_rate", v.BaseRate),
	); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[v.ID]; exists {
		return ErrDuplicateVehicle
	}

	stored := v
	s.vehicles = append(s.vehicles, &stored)
	s.byID[v.ID] = &stored
	return nil
}

// List returns copies of all vehicles in insertion order.
func (s *Store) List() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, *v)
	}
	return out
}

// ListAvailable returns copies of the vehicles currently open for booking,
// in insertion order.
func (s *Store) ListAvailable() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Vehicle
	for _, v := range s.vehicles {
		if v.Available {
			out = append(out, *v)
		}
	}
	return out
}

// Find returns a copy of the vehicle with the given id.
func (s *Store) Find(id string) (Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.byID[id]
	if !exists {
		return Vehicle{}, ErrVehicleNotFound
	}
	return *v, nil
}

// FindAvailable returns a copy of the vehicle with the given id if it can be
// booked right now. Unknown ids return ErrVehicleNotFound; known but rented
// vehicles return ErrVehicleUnavailable.
func (s *Store) FindAvailable(id string) (Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.byID[id]
	if !exists {
		return Vehicle{}, ErrVehicleNotFound
	}
	if !v.Available {
		return Vehicle{}, ErrVehicleUnavailable
	}
	return *v, nil
}

// SetAvailable flips the availability flag of the vehicle with the given id.
func (s *Store) SetAvailable(id string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.byID[id]
	if !exists {
		return ErrVehicleNotFound
	}
	v.Available = available
	return nil
}

// Len reports the number of vehicles in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}
