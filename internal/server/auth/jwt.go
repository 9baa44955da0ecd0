// Package auth issues and verifies the bearer tokens used by the HTTP API
// and carries the authenticated user id through request contexts.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the id of the account the token
// was issued to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Codec signs tokens with HS256.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewCodec returns common.ErrMissingSecret for an empty secret; there is no
// fallback key.
func NewCodec(secret string, validity time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, common.ErrMissingSecret
	}
	return &Codec{secret: []byte(secret), validity: validity, now: time.Now}, nil
}

// Validity is how long issued tokens stay valid.
func (c *Codec) Validity() time.Duration {
	return c.validity
}

// Issue produces a signed token for userID expiring after the codec's
// validity period.
func (c *Codec) Issue(userID string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Failures are common.ErrTokenExpired or common.ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
