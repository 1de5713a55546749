package domain

import "github.com/google/uuid"

// UserID is an internal identifier for a user account.
type UserID string

// CardID is an internal identifier for a card record.
type CardID string

// ParseUserID reports whether s is a well-formed user id and returns it typed.
func ParseUserID(s string) (UserID, bool) {
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return UserID(s), true
}

// ParseCardID reports whether s is a well-formed card id and returns it typed.
func ParseCardID(s string) (CardID, bool) {
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return CardID(s), true
}

// NewUserID generates a fresh user id.
func NewUserID() UserID { return UserID(uuid.NewString()) }

// NewCardID generates a fresh card id.
func NewCardID() CardID { return CardID(uuid.NewString()) }
