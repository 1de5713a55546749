package httpapi

import (
	"context"

	"github.com/placegram/places-api/internal/domain"
)

type principalKey struct{}

// WithPrincipal binds the authenticated user id into the request context.
func WithPrincipal(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, principalKey{}, id)
}

// PrincipalFromContext returns the authenticated user id bound by the auth
// middleware, if any.
func PrincipalFromContext(ctx context.Context) (domain.UserID, bool) {
	v, ok := ctx.Value(principalKey{}).(domain.UserID)
	return v, ok && v != ""
}
