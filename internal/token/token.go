// Package token signs and verifies the self-contained session credential.
// A token carries the identity (user id, email, role) and is valid for
// seven days; no server-side session store backs it.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is the fixed session lifetime. A stale role inside a live token is
// accepted until expiry.
const TTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Sign embeds the identity in an HS256 token expiring at now+TTL.
func Sign(id Identity, secret []byte) (string, error) {
	return SignWithTTL(id, secret, TTL)
}

// SignWithTTL is Sign with an explicit lifetime.
func SignWithTTL(id Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Parse verifies signature, signing method and expiry, returning the
// embedded identity. It reports ErrInvalidToken for every failure mode;
// the HMAC comparison underneath is constant-time.
func Parse(tokenStr string, secret []byte) (*Identity, error) {
	var claims SessionClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
