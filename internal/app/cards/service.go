package cards

import (
	"context"
	"errors"
	"time"

	"github.com/placegram/places-api/internal/apperr"
	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/ports/out/cardrepo"
)

// CreateCardInput carries a new card. The owner is always the acting
// principal, never client-supplied.
type CreateCardInput struct {
	Name string
	Link string
}

type Clock interface {
	Now() time.Time
}

// Service implements card CRUD and like toggling.
type Service struct {
	cards cardrepo.Repository
	clock Clock
}

func NewService(cards cardrepo.Repository, clock Clock) *Service {
	return &Service{cards: cards, clock: clock}
}

func (s *Service) List(ctx context.Context) ([]domain.Card, error) {
	return s.cards.List(ctx)
}

func (s *Service) Create(ctx context.Context, caller domain.UserID, in CreateCardInput) (domain.Card, error) {
	c := domain.Card{
		ID:        domain.NewCardID(),
		Name:      domain.NormalizeText(in.Name),
		Link:      in.Link,
		OwnerID:   caller,
		Likes:     []domain.UserID{},
		CreatedAt: s.clock.Now(),
	}
	if err := s.cards.Create(ctx, c); err != nil {
		if errors.Is(err, cardrepo.ErrAlreadyExists) {
			// UUID collision; practically unreachable.
			return domain.Card{}, apperr.NewConflict("card id conflict")
		}
		return domain.Card{}, err
	}
	return c, nil
}

// Delete removes a card after the ownership check: the card is loaded first
// (absent → NotFound, before any ownership comparison), then the owner must
// match the caller (mismatch → Forbidden).
func (s *Service) Delete(ctx context.Context, caller domain.UserID, id domain.CardID) error {
	c, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return classifyLookup(err)
	}
	if c.OwnerID != caller {
		return apperr.NewForbidden("cannot delete another user's card")
	}
	if err := s.cards.Delete(ctx, id); err != nil {
		if errors.Is(err, cardrepo.ErrNotFound) {
			// Deleted concurrently after the ownership check.
			return apperr.NewNotFound("card not found")
		}
		return err
	}
	return nil
}

// Like and Unlike are scoped to the acting principal's own id, so they need
// no ownership comparison, only authentication.

func (s *Service) Like(ctx context.Context, caller domain.UserID, id domain.CardID) (domain.Card, error) {
	c, err := s.cards.AddLike(ctx, id, caller)
	if err != nil {
		return domain.Card{}, classifyLookup(err)
	}
	return c, nil
}

func (s *Service) Unlike(ctx context.Context, caller domain.UserID, id domain.CardID) (domain.Card, error) {
	c, err := s.cards.RemoveLike(ctx, id, caller)
	if err != nil {
		return domain.Card{}, classifyLookup(err)
	}
	return c, nil
}

func classifyLookup(err error) error {
	switch {
	case errors.Is(err, cardrepo.ErrNotFound):
		return apperr.NewNotFound("card not found")
	case errors.Is(err, cardrepo.ErrInvalidID):
		// Malformed ids are caller input errors, not server faults.
		return apperr.NewValidation(apperr.FieldError{Field: "cardId", Message: "must be a valid id"})
	}
	return err
}
