package catalog

import "github.com/rentvehicle/rentkit/pkg/money"

// Vehicle is one rentable unit in the fleet.
type Vehicle struct {
	ID       string
	Name     string
	Category string
	// BaseRate is the hourly rate every pricing policy derives from.
	BaseRate money.Amount
	// Available is true while the vehicle can be booked. It flips to false
	// when a booking is created and back to true if the booking is rejected.
	Available bool
}
