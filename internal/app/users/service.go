package users

import (
	"context"
	"errors"

	"github.com/placegram/places-api/internal/apperr"
	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/platform/auth/password"
	"github.com/placegram/places-api/internal/platform/auth/token"
	"github.com/placegram/places-api/internal/ports/out/userrepo"
)

// Service implements account registration, authentication and profile
// operations. All failures it returns are classified (*apperr.Error) except
// genuinely unexpected faults, which bubble unwrapped for the transport
// layer to downgrade.
type Service struct {
	users  userrepo.Repository
	hasher password.Hasher
	tokens *token.Codec
}

func NewService(users userrepo.Repository, hasher password.Hasher, tokens *token.Codec) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:             domain.NewUserID(),
		Name:           domain.NormalizeText(in.Name),
		About:          domain.NormalizeText(in.About),
		Avatar:         in.Avatar,
		Email:          in.Email,
		PasswordDigest: digest,
	}
	if u.Name == "" {
		u.Name = domain.DefaultName
	}
	if u.About == "" {
		u.About = domain.DefaultAbout
	}
	if u.Avatar == "" {
		u.Avatar = domain.DefaultAvatar
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrEmailTaken) {
			return domain.User{}, apperr.NewConflict("email already registered")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) Signin(ctx context.Context, in SigninInput) (SigninResult, error) {
	// One message for both unknown email and bad password, so responses do
	// not reveal which accounts exist.
	badCredentials := apperr.NewUnauthenticated("incorrect email or password")

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return SigninResult{}, badCredentials
		}
		return SigninResult{}, err
	}
	if !s.hasher.Compare(in.Password, u.PasswordDigest) {
		return SigninResult{}, badCredentials
	}

	tok, err := s.tokens.Issue(string(u.ID))
	if err != nil {
		return SigninResult{}, err
	}
	return SigninResult{Token: tok, Name: u.Name, Email: u.Email}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, userrepo.ErrNotFound):
			return domain.User{}, apperr.NewNotFound("user not found")
		case errors.Is(err, userrepo.ErrInvalidID):
			return domain.User{}, apperr.NewValidation(apperr.FieldError{Field: "userId", Message: "must be a valid id"})
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, caller domain.UserID, in UpdateProfileInput) (domain.User, error) {
	patch := userrepo.ProfilePatch{}
	if in.Name != nil {
		name := domain.NormalizeText(*in.Name)
		patch.Name = &name
	}
	if in.About != nil {
		about := domain.NormalizeText(*in.About)
		patch.About = &about
	}

	u, err := s.users.UpdateProfile(ctx, caller, patch)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, apperr.NewNotFound("user not found")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) UpdateAvatar(ctx context.Context, caller domain.UserID, avatar string) (domain.User, error) {
	u, err := s.users.UpdateProfile(ctx, caller, userrepo.ProfilePatch{Avatar: &avatar})
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, apperr.NewNotFound("user not found")
		}
		return domain.User{}, err
	}
	return u, nil
}
