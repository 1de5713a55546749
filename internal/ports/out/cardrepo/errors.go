package cardrepo

import "errors"

var (
	// ErrNotFound indicates the requested card does not exist.
	ErrNotFound = errors.New("card not found")

	// ErrAlreadyExists indicates a card already exists with the provided ID.
	ErrAlreadyExists = errors.New("card already exists")

	// ErrInvalidID indicates the provided id is not in the expected format.
	ErrInvalidID = errors.New("invalid card id")
)
