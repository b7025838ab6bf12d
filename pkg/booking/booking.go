package booking

import (
	"time"

	"github.com/rentvehicle/rentkit/pkg/account"
	"github.com/rentvehicle/rentkit/pkg/money"
	"github.com/rentvehicle/rentkit/pkg/quote"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

// transitions is the allowed status graph. Confirmed and rejected are
// terminal; completed has no inbound edge.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {},
	StatusRejected:  {},
	StatusCompleted: {},
}

// CanTransition reports whether a booking may move from s to target.
func (s Status) CanTransition(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Booking is one committed rental attempt.
//
// Cost and Description are captured from the quote when the booking is
// created; the quote itself is retained only to trace back to the vehicle.
type Booking struct {
	ID          string
	Customer    account.User
	Quote       quote.Quote
	Cost        money.Amount
	Description string
	Status      Status
	CreatedAt   time.Time
}
