// Package common defines shared constants and sentinel errors used across
// the videoclub server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Input errors: the request is missing a required field.
	ErrMissingCredentials = errors.New("email and / or password is missing")
	ErrMissingTitle       = errors.New("title is missing")
	ErrMissingCategory    = errors.New("category parameter is missing")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrInvalidRequest     = errors.New("invalid request body")

	// Auth errors.
	ErrMissingToken       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrInvalidCredentials = errors.New("incorrect password given")
	ErrUserNotFound       = errors.New("user does not exist")

	// Rental and catalog rule violations.
	ErrTitleNotFound  = errors.New("movie does not exist")
	ErrGenreNotFound  = errors.New("genre does not exist")
	ErrAlreadyRenting = errors.New("you are already renting this movie")
	ErrNotRenting     = errors.New("you have not rented this movie")
	ErrEmailTaken     = errors.New("current email already exists")
)
