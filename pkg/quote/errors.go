package quote

import "errors"

var (
	ErrMissingPolicy = errors.New("quote.missing_policy")
	ErrNilQuote      = errors.New("quote.nil_quote")
	ErrUnknownAddOn  = errors.New("quote.unknown_add_on")
)
