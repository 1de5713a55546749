// Package token signs and verifies the compact bearer tokens that prove a
// user's identity between requests. Tokens are HS256-signed with a single
// process-wide secret and carry only the subject id and an expiry; expiry is
// the only invalidation mechanism (no revocation list, no rotation).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any verification failure: malformed token,
// signature mismatch, or expiry. Callers get no more detail than this so the
// failure mode is not distinguishable from the outside.
var ErrInvalidToken = errors.New("invalid token")

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Codec issues and verifies bearer tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return NewCodecWithClock(secret, ttl, nil)
}

func NewCodecWithClock(secret []byte, ttl time.Duration, clock Clock) *Codec {
	if clock == nil {
		clock = realClock{}
	}
	return &Codec{secret: secret, ttl: ttl, clock: clock}
}

// Issue signs a token for subject, valid from now until now+ttl.
func (c *Codec) Issue(subject string) (string, error) {
	now := c.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the token's signature and expiry against the codec's clock
// and returns the subject it was issued for.
func (c *Codec) Verify(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.clock.Now),
	)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
