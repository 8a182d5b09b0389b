package session

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrInvalidTimeRange  = errors.New("session end time must be after its start time")
	ErrInvalidStatus     = errors.New("invalid session status")
)
