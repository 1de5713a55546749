package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/placegram/places-api/internal/domain"
)

// Request bodies. Validation rules live on the `validate` tags and are
// checked before handler logic runs; reported field names come from the json
// tags.

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,max=200"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest uses tri-state fields: absent leaves the field
// unchanged, explicit null is rejected, a value is validated then applied.
type updateProfileRequest struct {
	Name  nullable.Nullable[string] `json:"name"`
	About nullable.Nullable[string] `json:"about"`
}

// updateProfileFields is the validation shape for the values actually
// supplied in an updateProfileRequest.
type updateProfileFields struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=30"`
	About *string `json:"about" validate:"omitempty,max=200"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

type createCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// Response bodies.

type profileResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

type accountResponse struct {
	profileResponse
	Email string `json:"email"`
}

type signinResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type cardResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProfileResponse(u domain.User) profileResponse {
	return profileResponse{
		ID:     string(u.ID),
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
	}
}

func toAccountResponse(u domain.User) accountResponse {
	return accountResponse{
		profileResponse: toProfileResponse(u),
		Email:           u.Email,
	}
}

func toCardResponse(c domain.Card) cardResponse {
	likes := make([]string, 0, len(c.Likes))
	for _, l := range c.Likes {
		likes = append(likes, string(l))
	}
	return cardResponse{
		ID:        string(c.ID),
		Name:      c.Name,
		Link:      c.Link,
		Owner:     string(c.OwnerID),
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}
