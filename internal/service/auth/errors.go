package auth

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email address format")
	ErrPasswordTooShort   = errors.New("password does not meet the minimum length")
	ErrInvalidCredentials = errors.New("email or password is incorrect, or the account is inactive")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
