// Package account manages registered users and credential checks.
//
// Store keeps users in memory behind an RWMutex, keyed by username.
// Passwords are hashed with bcrypt at registration and never stored or
// returned in plain form. Authenticate deliberately reports the same
// ErrInvalidCredentials for an unknown username and for a wrong password,
// so callers cannot probe which usernames exist.
//
// # Usage
//
//	store := account.NewStore()
//	user, err := store.Register("budi", "pass123", "Budi Santoso", account.RoleCustomer)
//	if err != nil {
//		// validator.ValidationErrors or ErrUsernameTaken
//	}
//
//	user, err = store.Authenticate("budi", "pass123")
package account
