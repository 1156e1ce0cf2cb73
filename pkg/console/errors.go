package console

import "errors"

var (
	// ErrDenied is returned when the session may not perform an operation.
	ErrDenied = errors.New("permission denied")

	// ErrNotFound is returned when the producer does not exist in the
	// session's tenant.
	ErrNotFound = errors.New("producer not found")

	// ErrUnknownRole is returned when switching to a role the table does not
	// declare.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidTransition is returned for a status change with no rule.
	ErrInvalidTransition = errors.New("invalid status transition")
)
