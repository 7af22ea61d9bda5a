package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/session"
)

// Every response body carries "success"; errors never leak internal
// messages past the boundary.

func ok(c echo.Context, code int, fields echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(code, body)
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"success": false, "error": msg})
}

// failFor maps the error taxonomy to status codes: 400 validation,
// 401 unauthenticated, 403 wrong role, 404 absent, 409 duplicate,
// 500 everything else.
func failFor(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fail(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, service.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, session.ErrUnauthorized):
		return fail(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, session.ErrForbidden):
		return fail(c, http.StatusForbidden, "Forbidden: Admin access required")
	case errors.Is(err, service.ErrNotFound):
		return fail(c, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrConflict):
		return fail(c, http.StatusConflict, "Already exists")
	default:
		return fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
