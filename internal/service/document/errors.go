package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrTitleRequired    = errors.New("document title is required")
	ErrEmptyFile        = errors.New("uploaded file is empty")
)
