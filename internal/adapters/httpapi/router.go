package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/placegram/places-api/internal/apperr"
)

// RouterOptions allows tests to substitute the auth middleware.
type RouterOptions struct {
	AuthMiddleware func(http.Handler) http.Handler
}

// NewRouter constructs the API HTTP router.
//
// Signup and signin are the only entry points that run without a principal;
// every other route sits behind the auth middleware, so exemption is a
// property of the wiring rather than of per-route checks.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health endpoint is deliberately unauthenticated (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/signup", s.handleSignup)
	r.Post("/signin", s.handleSignin)

	r.Group(func(r chi.Router) {
		if opts.AuthMiddleware != nil {
			r.Use(opts.AuthMiddleware)
		}

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.handleListUsers)
			r.Get("/me", s.handleGetMe)
			r.Patch("/me", s.handleUpdateProfile)
			r.Patch("/me/avatar", s.handleUpdateAvatar)
			r.Get("/{userId}", s.handleGetUser)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", s.handleListCards)
			r.Post("/", s.handleCreateCard)
			r.Delete("/{cardId}", s.handleDeleteCard)
			r.Put("/{cardId}/likes", s.handleLikeCard)
			r.Delete("/{cardId}/likes", s.handleUnlikeCard)
		})
	})

	// Unmatched routes and method mismatches go through the same terminal
	// error path as everything else.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, s.log, apperr.NewNotFound("resource not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, s.log, apperr.NewNotFound("resource not found"))
	})

	return r
}
