package utils

import "errors"

var (
	// Validation
	ErrEmptyContent = errors.New("entry content is empty")
	ErrInvalidMood  = errors.New("mood level out of range")

	// Permission
	ErrPhotoRequiresPremium = errors.New("photo attachments require a premium subscription")

	// Hard persistence failure; the only error that aborts a submission
	ErrEntrySaveFailed = errors.New("failed to save entry")

	ErrEntryNotFound   = errors.New("entry not found")
	ErrNotEntryOwner   = errors.New("entry belongs to another user")
	ErrProfileNotFound = errors.New("profile not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
