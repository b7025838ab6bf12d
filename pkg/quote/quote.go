package quote

import (
	"github.com/rentvehicle/rentkit/pkg/catalog"
	"github.com/rentvehicle/rentkit/pkg/money"
	"github.com/rentvehicle/rentkit/pkg/pricing"
	"github.com/rentvehicle/rentkit/pkg/validator"
)

// Quote is a priced and described rental composition.
type Quote interface {
	// Cost returns the total price of the composition.
	Cost() money.Amount
	// Description returns the display description of the composition.
	Description() string
}

// Base is the root of every quote: one vehicle priced by one policy for a
// fixed duration. The vehicle is captured by value, so later catalog changes
// do not alter an existing quote.
type Base struct {
	vehicle  catalog.Vehicle
	policy   pricing.Policy
	duration int
}

// NewBase builds the root of a quote. The duration must be at least one
// unit of the policy's granularity.
func NewBase(vehicle catalog.Vehicle, policy pricing.Policy, duration int) (*Base, error) {
	if policy == nil {
		return nil, ErrMissingPolicy
	}
	if err := validator.Apply(
		validator.MinNum("duration", duration, 1),
	); err != nil {
		return nil, err
	}

	return &Base{
		vehicle:  vehicle,
		policy:   policy,
		duration: duration,
	}, nil
}

// Cost prices the rental with the captured policy and duration.
func (b *Base) Cost() money.Amount {
	return b.policy.Price(b.vehicle.BaseRate, b.duration)
}

// Description combines the vehicle name with the policy label.
func (b *Base) Description() string {
	return b.vehicle.Name + " - " + b.policy.Label()
}

// Vehicle returns the snapshot of the vehicle this quote prices.
func (b *Base) Vehicle() catalog.Vehicle {
	return b.vehicle
}

// Duration returns the rental duration in policy units.
func (b *Base) Duration() int {
	return b.duration
}

// Unwrap walks an add-on chain down to its root Base. It reports false for
// nil quotes and for Quote implementations outside this package.
func Unwrap(q Quote) (*Base, bool) {
	for q != nil {
		switch v := q.(type) {
		case *Base:
			return v, true
		case *WithAddOn:
			q = v.inner
		default:
			return nil, false
		}
	}
	return nil, false
}
