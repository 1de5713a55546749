package userrepo

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates a user already exists with the provided email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrAlreadyExists indicates a user already exists with the provided ID.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrInvalidID indicates the provided id is not in the expected format.
	ErrInvalidID = errors.New("invalid user id")
)
