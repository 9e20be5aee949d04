package services

import "errors"

var (
	// ErrNotFound covers both a missing record and one owned by another
	// user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found or permission denied")

	// ErrDuplicateName is returned when a custom meal name already exists
	// for the user, compared case-insensitively.
	ErrDuplicateName = errors.New("a custom meal with this name already exists")

	// ErrDateConflict is returned when moving a dated log onto a day that
	// already holds another record for the same user.
	ErrDateConflict = errors.New("a log for this date already exists")
)
