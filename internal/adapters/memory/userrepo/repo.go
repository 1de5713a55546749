package userrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/ports/out/userrepo"
)

// Repo is an in-memory implementation of userrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID      map[domain.UserID]domain.User
	idByEmail map[string]domain.UserID
}

func NewRepo() *Repo {
	return &Repo{
		byID:      make(map[domain.UserID]domain.User),
		idByEmail: make(map[string]domain.UserID),
	}
}

func (r *Repo) Create(ctx context.Context, u domain.User) error {
	_ = ctx
	if u.ID == "" {
		return userrepo.ErrAlreadyExists // treat empty ID as invalid; app layer validates earlier
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; ok {
		return userrepo.ErrAlreadyExists
	}
	if _, ok := r.idByEmail[emailKey(u.Email)]; ok {
		return userrepo.ErrEmailTaken
	}

	// Emails are stored lowercased so lookups and rendered responses agree
	// with the Postgres adapter.
	u.Email = emailKey(u.Email)
	r.byID[u.ID] = u
	r.idByEmail[u.Email] = u.ID
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.idByEmail[emailKey(email)]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	return u, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sortUsersByName(out)
	return out, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, id domain.UserID, patch userrepo.ProfilePatch) (domain.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.About != nil {
		u.About = *patch.About
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	r.byID[id] = u
	return u, nil
}

// emailKey matches the Postgres adapter's lower(email) normalization.
func emailKey(email string) string {
	return strings.ToLower(email)
}

func sortUsersByName(us []domain.User) {
	sort.Slice(us, func(i, j int) bool {
		ni := strings.ToLower(us[i].Name)
		nj := strings.ToLower(us[j].Name)
		if ni == nj {
			return us[i].ID < us[j].ID
		}
		return ni < nj
	})
}
