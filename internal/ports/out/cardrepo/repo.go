package cardrepo

import (
	"context"

	"github.com/placegram/places-api/internal/domain"
)

// Repository provides access to persisted cards.
//
// Result ordering expectations:
// - List returns cards ordered by CreatedAt ascending (id ascending as
//   tiebreak); Likes of every returned card are sorted ascending.
type Repository interface {
	Create(ctx context.Context, c domain.Card) error

	GetByID(ctx context.Context, id domain.CardID) (domain.Card, error)

	List(ctx context.Context) ([]domain.Card, error)

	Delete(ctx context.Context, id domain.CardID) error

	// AddLike adds userID to the card's like set and returns the updated
	// card. Adding an existing like is a no-op (set semantics).
	AddLike(ctx context.Context, id domain.CardID, userID domain.UserID) (domain.Card, error)

	// RemoveLike removes userID from the card's like set and returns the
	// updated card. Removing an absent like is a no-op.
	RemoveLike(ctx context.Context, id domain.CardID, userID domain.UserID) (domain.Card, error)
}
