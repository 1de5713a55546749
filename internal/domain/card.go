package domain

import "time"

// Card is the domain representation of a shared photo card.
type Card struct {
	ID   CardID
	Name string
	// Link is a URL to the card's image.
	Link string
	// OwnerID is set from the creating principal and never reassigned.
	OwnerID UserID
	// Likes holds the ids of users who liked the card. Set semantics:
	// a user appears at most once regardless of how many times they like.
	Likes     []UserID
	CreatedAt time.Time
}

// LikedBy reports whether the card's like set contains the given user.
func (c Card) LikedBy(id UserID) bool {
	for _, l := range c.Likes {
		if l == id {
			return true
		}
	}
	return false
}
