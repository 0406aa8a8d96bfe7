package auth

import "errors"

var (
	// ErrInvalidCredentials covers both a wrong credential and a non-active
	// user so responses never reveal which condition blocked the login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid or expired token")
)
