package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/nullable"

	"github.com/placegram/places-api/internal/apperr"
	"github.com/placegram/places-api/internal/app/users"
	"github.com/placegram/places-api/internal/domain"
	"github.com/placegram/places-api/internal/platform/validate"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}
	if fields := validate.Struct(req); fields != nil {
		writeError(w, r, s.log, apperr.NewValidation(fields...))
		return
	}

	u, err := s.users.Signup(r.Context(), users.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(u))
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}
	if fields := validate.Struct(req); fields != nil {
		writeError(w, r, s.log, apperr.NewValidation(fields...))
		return
	}

	res, err := s.users.Signin(r.Context(), users.SigninInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, signinResponse{Token: res.Token, Name: res.Name, Email: res.Email})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	us, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	out := make([]profileResponse, 0, len(us))
	for _, u := range us {
		out = append(out, toProfileResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, s.log, apperr.NewUnauthenticated("must authenticate"))
		return
	}
	u, err := s.users.GetByID(r.Context(), principal)
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(u))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseUserID(chi.URLParam(r, "userId"))
	if !ok {
		writeError(w, r, s.log, apperr.NewValidation(apperr.FieldError{Field: "userId", Message: "must be a valid id"}))
		return
	}
	u, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, s.log, apperr.NewUnauthenticated("must authenticate"))
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}

	var fields updateProfileFields
	var nullErrs []apperr.FieldError
	extract := func(name string, n nullable.Nullable[string], dst **string) {
		if !n.IsSpecified() {
			return
		}
		if n.IsNull() {
			nullErrs = append(nullErrs, apperr.FieldError{Field: name, Message: "cannot be null"})
			return
		}
		v := n.MustGet()
		*dst = &v
	}
	extract("name", req.Name, &fields.Name)
	extract("about", req.About, &fields.About)
	if nullErrs != nil {
		writeError(w, r, s.log, apperr.NewValidation(nullErrs...))
		return
	}
	if ferrs := validate.Struct(fields); ferrs != nil {
		writeError(w, r, s.log, apperr.NewValidation(ferrs...))
		return
	}

	u, err := s.users.UpdateProfile(r.Context(), principal, users.UpdateProfileInput{
		Name:  fields.Name,
		About: fields.About,
	})
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(u))
}

func (s *Server) handleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, s.log, apperr.NewUnauthenticated("must authenticate"))
		return
	}

	var req updateAvatarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.log, err)
		return
	}
	if fields := validate.Struct(req); fields != nil {
		writeError(w, r, s.log, apperr.NewValidation(fields...))
		return
	}

	u, err := s.users.UpdateAvatar(r.Context(), principal, req.Avatar)
	if err != nil {
		writeError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(u))
}
