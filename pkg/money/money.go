package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a monetary value in the smallest currency unit (whole rupiah).
type Amount int64

// Formatter renders amounts with locale-aware digit grouping and a currency
// symbol prefix. A Formatter is safe for concurrent use.
type Formatter struct {
	printer *message.Printer
	tag     language.Tag
	symbol  string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithSymbol overrides the currency symbol prefix.
// Empty symbols are ignored to keep output unambiguous.
func WithSymbol(symbol string) Option {
	return func(f *Formatter) {
		if symbol != "" {
			f.symbol = symbol
		}
	}
}

// WithLanguage sets the locale used for digit grouping.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.tag = tag
	}
}

// NewFormatter creates a Formatter. Defaults render rupiah with Indonesian
// digit grouping, e.g. "Rp 3.645.000".
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		tag:    language.Indonesian,
		symbol: "Rp",
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.tag)
	return f
}

// Format renders a with the configured symbol and grouping.
func (f *Formatter) Format(a Amount) string {
	return f.printer.Sprintf("%s %d", f.symbol, int64(a))
}
