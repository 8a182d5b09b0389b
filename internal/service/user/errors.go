package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfStatusChange guards against admins locking themselves out.
	ErrSelfStatusChange = errors.New("you cannot activate or deactivate your own account")
)
