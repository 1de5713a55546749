package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/placegram/places-api/internal/apperr"
	"github.com/placegram/places-api/internal/app/cards"
	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/platform/validate"
)

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	cs, err := s.cards.List(r.Context())
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	out := make([]cardResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCardResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, s.log, apperr.NewUnauthenticated("must authenticate"))
		return
	}

	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}
	if fields := validate.Struct(req); fields != nil {
		writeError(w, r, s.log, apperr.NewValidation(fields...))
		return
	}

	c, err := s.cards.Create(r.Context(), principal, cards.CreateCardInput{Name: req.Name, Link: req.Link})
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(c))
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	principal, cardID, ok := s.cardRequest(w, r)
	if !ok {
		return
	}
	if err := s.cards.Delete(r.Context(), principal, cardID); err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "card deleted"})
}

func (s *Server) handleLikeCard(w http.ResponseWriter, r *http.Request) {
	principal, cardID, ok := s.cardRequest(w, r)
	if !ok {
		return
	}
	c, err := s.cards.Like(r.Context(), principal, cardID)
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(c))
}

func (s *Server) handleUnlikeCard(w http.ResponseWriter, r *http.Request) {
	principal, cardID, ok := s.cardRequest(w, r)
	if !ok {
		return
	}
	c, err := s.cards.Unlike(r.Context(), principal, cardID)
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// cardRequest extracts the principal and the cardId path parameter, writing
// the failure response itself when either is unusable.
func (s *Server) cardRequest(w http.ResponseWriter, r *http.Request) (domain.UserID, domain.CardID, bool) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, s.log, apperr.NewUnauthenticated("must authenticate"))
		return "", "", false
	}
	cardID, ok := domain.ParseCardID(chi.URLParam(r, "cardId"))
	if !ok {
		writeError(w, r, s.log, apperr.NewValidation(apperr.FieldError{Field: "cardId", Message: "must be a valid id"}))
		return "", "", false
	}
	return principal, cardID, true
}
