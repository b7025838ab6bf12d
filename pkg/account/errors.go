package account

import "errors"

var (
	ErrUserNotFound       = errors.New("account.user_not_found")
	ErrUsernameTaken      = errors.New("account.username_taken")
	ErrInvalidCredentials = errors.New("account.invalid_credentials")
	ErrInvalidRole        = errors.New("account.invalid_role")
	ErrPasswordHashing    = errors.New("account.password_hashing_failed")
)
