// Package contracttest defines behavioral contracts every repository adapter
// must satisfy. The memory adapters run them unconditionally; the Postgres
// adapters run them against TEST_DATABASE_URL when it is set.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/placegram/places-api/internal/domain"
	cardrepoport "github.com/placegram/places-api/internal/ports/out/cardrepo"
	userrepoport "github.com/placegram/places-api/internal/ports/out/userrepo"
)

type CleanupFunc = func()

type UserRepoFactory func(t *testing.T) (userrepoport.Repository, CleanupFunc)
type CardRepoFactory func(t *testing.T) (cardrepoport.Repository, CleanupFunc)

func RunUserRepo(t *testing.T, newRepo UserRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	a := domain.User{
		ID:             domain.NewUserID(),
		Name:           "Alice",
		About:          "First",
		Avatar:         "http://x/a.png",
		Email:          "Alice@Example.com",
		PasswordDigest: "digest-a",
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}

	// Emails are stored lowercased, whatever casing signup supplied.
	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "alice@example.com" || got.PasswordDigest != a.PasswordDigest {
		t.Fatalf("GetByID: got %+v", got)
	}

	got, err = repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("GetByEmail: got id %q want %q", got.ID, a.ID)
	}

	// Email uniqueness.
	dup := a
	dup.ID = domain.NewUserID()
	if err := repo.Create(ctx, dup); !errors.Is(err, userrepoport.ErrEmailTaken) {
		t.Fatalf("duplicate email: err=%v, want ErrEmailTaken", err)
	}

	// Unknown lookups.
	if _, err := repo.GetByID(ctx, domain.NewUserID()); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByID unknown: err=%v, want ErrNotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("GetByEmail unknown: err=%v, want ErrNotFound", err)
	}

	// Partial profile update.
	name := "Alice Updated"
	got, err = repo.UpdateProfile(ctx, a.ID, userrepoport.ProfilePatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Name != name || got.About != "First" || got.Avatar != a.Avatar {
		t.Fatalf("UpdateProfile: got %+v", got)
	}
	if _, err := repo.UpdateProfile(ctx, domain.NewUserID(), userrepoport.ProfilePatch{Name: &name}); !errors.Is(err, userrepoport.ErrNotFound) {
		t.Fatalf("UpdateProfile unknown: err=%v, want ErrNotFound", err)
	}

	// Ordering: List sorts by name.
	b := domain.User{
		ID:             domain.NewUserID(),
		Name:           "Aaron",
		About:          "Second",
		Avatar:         "http://x/b.png",
		Email:          "aaron@example.com",
		PasswordDigest: "digest-b",
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	us, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(us) != 2 || us[0].ID != b.ID || us[1].ID != a.ID {
		t.Fatalf("List order: got %+v", us)
	}
}

// RunCardRepo exercises card persistence against two pre-created users,
// which Postgres needs for its foreign keys.
func RunCardRepo(t *testing.T, newUserRepo UserRepoFactory, newRepo CardRepoFactory) {
	t.Helper()
	ctx := context.Background()

	users, ucleanup := newUserRepo(t)
	if ucleanup != nil {
		t.Cleanup(ucleanup)
	}
	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	owner := domain.NewUserID()
	liker := domain.NewUserID()
	for i, id := range []domain.UserID{owner, liker} {
		u := domain.User{
			ID:             id,
			Name:           "User",
			About:          "About",
			Avatar:         "http://x/u.png",
			Email:          string(id) + "@example.com",
			PasswordDigest: "digest",
		}
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("Create user %d: %v", i, err)
		}
	}

	now := time.Unix(1700000000, 0).UTC()
	c := domain.Card{
		ID:        domain.NewCardID(),
		Name:      "Lake",
		Link:      "http://x/lake.jpg",
		OwnerID:   owner,
		Likes:     []domain.UserID{},
		CreatedAt: now,
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create card: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OwnerID != owner || len(got.Likes) != 0 {
		t.Fatalf("GetByID: got %+v", got)
	}

	// Like set semantics: adding twice leaves one entry.
	if _, err := repo.AddLike(ctx, c.ID, liker); err != nil {
		t.Fatalf("AddLike: %v", err)
	}
	got, err = repo.AddLike(ctx, c.ID, liker)
	if err != nil {
		t.Fatalf("AddLike again: %v", err)
	}
	if len(got.Likes) != 1 || got.Likes[0] != liker {
		t.Fatalf("likes after double add: %+v", got.Likes)
	}

	got, err = repo.RemoveLike(ctx, c.ID, liker)
	if err != nil {
		t.Fatalf("RemoveLike: %v", err)
	}
	if len(got.Likes) != 0 {
		t.Fatalf("likes after removal: %+v", got.Likes)
	}

	// Like operations on unknown cards report ErrNotFound.
	if _, err := repo.AddLike(ctx, domain.NewCardID(), liker); !errors.Is(err, cardrepoport.ErrNotFound) {
		t.Fatalf("AddLike unknown card: err=%v, want ErrNotFound", err)
	}

	// Ordering: List sorts by creation time.
	c2 := domain.Card{
		ID:        domain.NewCardID(),
		Name:      "Mountain",
		Link:      "http://x/mountain.jpg",
		OwnerID:   owner,
		Likes:     []domain.UserID{},
		CreatedAt: now.Add(time.Minute),
	}
	if err := repo.Create(ctx, c2); err != nil {
		t.Fatalf("Create card 2: %v", err)
	}
	cs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cs) != 2 || cs[0].ID != c.ID || cs[1].ID != c2.ID {
		t.Fatalf("List order: got %+v", cs)
	}

	// Delete reports whether the card existed.
	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, c.ID); !errors.Is(err, cardrepoport.ErrNotFound) {
		t.Fatalf("Delete again: err=%v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, c.ID); !errors.Is(err, cardrepoport.ErrNotFound) {
		t.Fatalf("GetByID deleted: err=%v, want ErrNotFound", err)
	}
}
