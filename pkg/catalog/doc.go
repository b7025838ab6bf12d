// Package catalog holds the in-memory vehicle fleet.
//
// Store keeps vehicles in insertion order behind an RWMutex. Reads return
// copies, so callers can never mutate store state through a returned value;
// availability changes go through SetAvailable exclusively.
//
// # Usage
//
//	store := catalog.NewStore()
//	err := store.Add(catalog.Vehicle{
//		ID:        "V001",
//		Name:      "Toyota Avanza",
//		Category:  "MPV",
//		BaseRate:  15000,
//		Available: true,
//	})
//
// Lookups distinguish unknown ids (ErrVehicleNotFound) from vehicles that
// exist but are currently rented out (ErrVehicleUnavailable).
package catalog
