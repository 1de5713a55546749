// Package password provides one-way password hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes plaintext passwords and verifies them against stored digests.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() BcryptHasher { return BcryptHasher{cost: bcrypt.DefaultCost} }

// NewBcryptHasherWithCost exists for tests that want bcrypt.MinCost.
func NewBcryptHasherWithCost(cost int) BcryptHasher { return BcryptHasher{cost: cost} }

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
