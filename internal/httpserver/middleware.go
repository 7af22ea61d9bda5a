package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/session"
)

// AdminPages gates the /admin path prefix for the back-office.
// Unauthenticated visitors land on the login page; authenticated
// non-admins are sent back to the home page.
func AdminPages(resolver *session.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := resolver.Resolve(c)
			if id == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			if id.Role != models.RoleAdmin {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}
