package cardrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/ports/out/cardrepo"
)

// Repo is an in-memory implementation of cardrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID  map[domain.CardID]domain.Card
	likes map[domain.CardID]map[domain.UserID]struct{}
}

func NewRepo() *Repo {
	return &Repo{
		byID:  make(map[domain.CardID]domain.Card),
		likes: make(map[domain.CardID]map[domain.UserID]struct{}),
	}
}

func (r *Repo) Create(ctx context.Context, c domain.Card) error {
	_ = ctx
	if c.ID == "" {
		return cardrepo.ErrAlreadyExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; ok {
		return cardrepo.ErrAlreadyExists
	}

	likes := make(map[domain.UserID]struct{}, len(c.Likes))
	for _, l := range c.Likes {
		likes[l] = struct{}{}
	}
	r.byID[c.ID] = c
	r.likes[c.ID] = likes
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.CardID) (domain.Card, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.Card{}, cardrepo.ErrNotFound
	}
	return r.withLikes(c), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Card, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Card, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, r.withLikes(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.CardID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return cardrepo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.likes, id)
	return nil
}

func (r *Repo) AddLike(ctx context.Context, id domain.CardID, userID domain.UserID) (domain.Card, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.Card{}, cardrepo.ErrNotFound
	}
	r.likes[id][userID] = struct{}{}
	return r.withLikes(c), nil
}

func (r *Repo) RemoveLike(ctx context.Context, id domain.CardID, userID domain.UserID) (domain.Card, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.Card{}, cardrepo.ErrNotFound
	}
	delete(r.likes[id], userID)
	return r.withLikes(c), nil
}

// withLikes materializes the like set as a sorted slice. Callers must hold
// at least the read lock.
func (r *Repo) withLikes(c domain.Card) domain.Card {
	set := r.likes[c.ID]
	likes := make([]domain.UserID, 0, len(set))
	for id := range set {
		likes = append(likes, id)
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i] < likes[j] })
	c.Likes = likes
	return c
}
