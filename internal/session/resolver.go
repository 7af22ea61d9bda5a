// Package session turns the request cookie into an authenticated
// identity and enforces role policies. Resolution is a pure read of the
// request; cookies are only written at login, register and logout.
package session

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/token"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

type Resolver struct {
	Secret []byte
}

// Resolve extracts and verifies the session token, returning nil when no
// valid session is present. It never errors: an invalid session and a
// missing one look the same to callers.
func (r *Resolver) Resolve(c echo.Context) *token.Identity {
	raw := ReadToken(c)
	if raw == "" {
		return nil
	}
	id, err := token.Parse(raw, r.Secret)
	if err != nil {
		return nil
	}
	return id
}

// RequireAuth fails with ErrUnauthorized exactly when no valid session
// cookie is present.
func (r *Resolver) RequireAuth(c echo.Context) (*token.Identity, error) {
	id := r.Resolve(c)
	if id == nil {
		return nil, ErrUnauthorized
	}
	return id, nil
}

// RequireAdmin additionally fails with ErrForbidden when the session is
// valid but the role is not ADMIN.
func (r *Resolver) RequireAdmin(c echo.Context) (*token.Identity, error) {
	id, err := r.RequireAuth(c)
	if err != nil {
		return nil, err
	}
	if id.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	return id, nil
}
