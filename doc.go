// Package rentkit wires the vehicle rental domain into one application
// context.
//
// The building blocks live in pkg/ and know nothing about each other's
// construction: pricing policies price rentals, quotes compose add-ons over
// a priced base, the catalog tracks the fleet, accounts hold users, the
// notify hub fans events out, and the booking ledger drives the lifecycle.
// App assembles them:
//
//	app := rentkit.New(rentkit.WithLogger(log))
//	if err := app.ApplySeed(rentkit.DefaultSeed()); err != nil {
//		// duplicate ids or invalid seed entries
//	}
//
// There is no package-level state. Everything hangs off the App value, so
// tests can build as many isolated instances as they need.
//
// The interactive terminal frontend lives in the cli package; cmd/rentvehicle
// is the entry point binding configuration, logging, seeding, and the menu
// loop together.
package rentkit
