// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrEmailAlreadyExists is returned by Register when the email is
	// already taken. Registration is the one place allowed to confirm
	// that an email exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// email and a wrong password, so the error cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput is returned when registration input fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoToken is returned by Authenticate when the Authorization
	// header is absent or does not carry a bearer token.
	ErrNoToken = errors.New("missing bearer token")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrIdentityMismatch is returned by Authenticate when the email
	// claim inside a valid token no longer matches the user's current
	// email, invalidating tokens issued before an email change.
	ErrIdentityMismatch = errors.New("token identity does not match user")
)
