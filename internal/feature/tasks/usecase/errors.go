// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task does not exist or belongs
	// to a different user; the two cases are indistinguishable so task
	// IDs cannot be probed across owners.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidInput is returned when task input fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPriority is returned for a priority outside low/medium/high.
	ErrInvalidPriority = errors.New("invalid priority")
)
