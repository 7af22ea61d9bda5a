package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/token"
)

// CookieName is the single HTTP-only cookie carrying the signed session
// token. HttpOnly plus the token signature are the whole anti-tampering
// boundary.
const CookieName = "auth_token"

type CookieManager struct {
	// Secure marks the cookie TLS-only; enabled in production.
	Secure bool
}

func (m CookieManager) NewCookie(tokenStr string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(token.TTL / time.Second),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m CookieManager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ReadToken returns the raw token from the request cookie, or "" when
// the cookie is absent.
func ReadToken(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}
