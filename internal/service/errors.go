package service

import "errors"

var (
	// ErrPasswordsDoNotMatch is returned by registration when the password
	// confirmation differs from the password.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrInvalidCredentials covers an unknown email, a wrong password and
	// empty login fields alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidID is returned when a job id is not a UUID.
	ErrInvalidID = errors.New("invalid job id format")

	// ErrUnauthenticated is returned when an operation receives an empty identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenMalformed      = errors.New("token is malformed")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnknownTokenSubject is returned when a valid token names a user
	// that no longer exists.
	ErrUnknownTokenSubject = errors.New("token subject does not exist")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
