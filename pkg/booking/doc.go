// Package booking owns the rental booking lifecycle.
//
// A Booking is created from a priced quote and starts out pending. An
// administrator then confirms or rejects it; both outcomes are terminal.
// The allowed moves form a small state machine:
//
//	PENDING -> CONFIRMED
//	PENDING -> REJECTED
//
// COMPLETED exists as a status value for reporting but has no inbound
// transition yet.
//
// Ledger is the single owner of all bookings. Every booking-affecting
// operation runs under one mutex, so two concurrent confirms of the same
// booking cannot both succeed. Creating a booking marks the vehicle
// unavailable through the Fleet; rejecting it puts the vehicle back.
// Lifecycle events are published through the Notifier, with a one-shot
// subscriber delivering confirm and reject outcomes to the booking's
// customer even when that customer is not attached.
//
// Cost and description are captured from the quote at creation time and
// never recomputed, so later add-on pricing changes cannot alter an
// existing booking.
package booking
