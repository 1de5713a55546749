package userrepo

import (
	"context"

	"github.com/placegram/places-api/internal/domain"
)

// ProfilePatch describes a partial profile update. Nil fields are left
// unchanged; pointers distinguish "not supplied" from empty values.
type ProfilePatch struct {
	Name   *string
	About  *string
	Avatar *string
}

// Repository provides access to persisted user accounts.
//
// Result ordering expectations:
// - List returns users ordered by Name ascending (id ascending as tiebreak)
//   to keep behavior deterministic across adapters.
type Repository interface {
	Create(ctx context.Context, u domain.User) error

	GetByID(ctx context.Context, id domain.UserID) (domain.User, error)

	// GetByEmail returns the user including the password digest; it exists
	// for credential verification at signin.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	List(ctx context.Context) ([]domain.User, error)

	// UpdateProfile applies the patch and returns the updated user.
	UpdateProfile(ctx context.Context, id domain.UserID, patch ProfilePatch) (domain.User, error)
}
