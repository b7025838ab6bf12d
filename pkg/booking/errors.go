package booking

import "errors"

var (
	// ErrNotFound covers both an unknown booking id and a booking that has
	// already left the pending state. Callers cannot tell the two apart,
	// which keeps retried admin actions harmless.
	ErrNotFound = errors.New("booking.not_found_or_processed")

	// ErrMalformedQuote is returned when a quote cannot be traced back to a
	// vehicle. It only fires for Quote implementations foreign to the quote
	// package.
	ErrMalformedQuote = errors.New("booking.malformed_quote")
)
