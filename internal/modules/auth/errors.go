package auth

import "errors"

var (
	// ErrInvalidCredentials covers both wrong passwords and non-admin accounts.
	ErrInvalidCredentials = errors.New("invalid login or password")
)
