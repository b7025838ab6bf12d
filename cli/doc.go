// Package cli implements the interactive terminal frontend of the rental
// system.
//
// Runner drives a menu loop over an injected reader and writer, so scripted
// sessions in tests work exactly like a person at a terminal. The loop has
// three screens keyed off the session state: the login menu when nobody is
// signed in, the admin menu for administrators, and the customer menu for
// everyone else.
//
// Logging in attaches a notification subscriber for the user to the app's
// hub; logging out detaches it. While attached, booking events published by
// the ledger appear inline between menu renders, which is the whole point
// of the synchronous hub.
//
// All user-facing text is Indonesian, matching the audience of the system.
// Diagnostics go to the structured logger, never to the menu stream.
package cli
