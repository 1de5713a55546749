package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/placegram/places-api/internal/apperr"
	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/platform/auth/token"
)

// NewAuthMiddleware enforces Authorization: Bearer <token> for the routes it
// wraps. On success it binds the verified principal into request context; on
// any failure it short-circuits with 401 and the wrapped handler never runs.
func NewAuthMiddleware(codec *token.Codec, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if authz == "" || !strings.HasPrefix(authz, prefix) {
				writeError(w, r, log, apperr.NewUnauthenticated("must authenticate"))
				return
			}

			sub, err := codec.Verify(strings.TrimPrefix(authz, prefix))
			if err != nil {
				writeError(w, r, log, apperr.NewUnauthenticated("invalid token"))
				return
			}
			principal, ok := domain.ParseUserID(sub)
			if !ok {
				writeError(w, r, log, apperr.NewUnauthenticated("invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
