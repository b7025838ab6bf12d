// Package quote composes priced rental offers.
//
// A quote starts from a Base (one vehicle priced by one policy for a fixed
// duration) and gains optional services by wrapping:
//
//	base, err := quote.NewBase(vehicle, pricing.Weekly{}, 2)
//	q, err := quote.Wrap(base, quote.AddOnInsurance)
//	q, err = quote.Wrap(q, quote.AddOnGPS)
//
//	q.Cost()        // base price plus both surcharges
//	q.Description() // "Toyota Avanza - Per Minggu (Diskon 15%) + Asuransi + GPS"
//
// Each wrapper adds one flat surcharge and one description suffix; add-on
// order changes the description wording but never the cost. Unwrap walks any
// chain back down to its Base, which is how the booking ledger recovers the
// vehicle a quote was built for.
//
// Quotes are immutable after construction. There is no unwrapping of a
// single layer and no removal of an add-on; build a new chain instead.
package quote
