package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/placegram/places-api/internal/apperr"
	"github.com/placegram/places-api/internal/app/cards"
	"github.com/placegram/places-api/internal/app/users"
)

// Server holds the application services the HTTP handlers delegate to.
type Server struct {
	users *users.Service
	cards *cards.Service
	log   *slog.Logger
}

func NewServer(usersSvc *users.Service, cardsSvc *cards.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{users: usersSvc, cards: cardsSvc, log: log}
}

// decodeJSON decodes the request body into dst. A body that is not valid
// JSON is a caller input error, not a server fault.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.NewValidation(apperr.FieldError{Field: "body", Message: "must be valid JSON"})
	}
	return nil
}
