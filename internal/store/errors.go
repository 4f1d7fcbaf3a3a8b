package store

import "errors"

// Sentinel errors returned by store methods. The API layer maps these to
// status codes; anything else is an infrastructure failure and becomes a 500.
var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("record already exists")
	ErrAdminExists       = errors.New("admin already exists")
	ErrInvalidCourse     = errors.New("invalid courseCodeId")
	ErrInvalidSection    = errors.New("invalid sectionId")
	ErrMentorUnavailable = errors.New("peer mentor not available")
)
