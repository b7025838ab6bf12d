package catalog

import "errors"

var (
	ErrVehicleNotFound    = errors.New("catalog.vehicle_not_found")
	ErrVehicleUnavailable = errors.New("catalog.vehicle_unavailable")
	ErrDuplicateVehicle   = errors.New("catalog.duplicate_vehicle")
)
