package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNameRequired    = errors.New("first name and last name are required")
)
