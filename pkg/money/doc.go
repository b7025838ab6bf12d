// Package money defines the monetary value type shared across the rental
// domain and locale-aware rendering for user-facing output.
//
// Amounts are whole rupiah held in an int64. Every price in the system is
// derived from integral hourly rates and integral surcharges, so integer
// arithmetic keeps totals exact with no rounding step.
//
// # Usage
//
//	f := money.NewFormatter()
//	fmt.Println(f.Format(3645000)) // "Rp 3.645.000"
//
// Formatter grouping follows the configured locale via golang.org/x/text,
// defaulting to Indonesian digit grouping.
package money
