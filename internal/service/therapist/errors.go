package therapist

import "errors"

var (
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrNameRequired       = errors.New("first name and last name are required")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address format")
	ErrPasswordTooShort   = errors.New("password does not meet the minimum length")
)
