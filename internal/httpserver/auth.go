package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/session"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Cookies  session.CookieManager
	Resolver *session.Resolver
}

func profileFields(u *models.User) echo.Map {
	return echo.Map{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return fail(c, http.StatusBadRequest, "Invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}

	res, err := h.Svc.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if err == service.ErrConflict {
			return fail(c, http.StatusConflict, "User already exists")
		}
		return failFor(c, err)
	}

	c.SetCookie(h.Cookies.NewCookie(res.Token))
	return ok(c, http.StatusOK, echo.Map{"data": profileFields(res.User)})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return fail(c, http.StatusBadRequest, "Invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return failFor(c, err)
	}

	c.SetCookie(h.Cookies.NewCookie(res.Token))
	return ok(c, http.StatusOK, echo.Map{"data": profileFields(res.User)})
}

// Logout clears the cookie unconditionally; the token itself simply
// expires, there is no server-side session to revoke.
func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(h.Cookies.ExpiredCookie())
	return ok(c, http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := h.Resolver.RequireAuth(c)
	if err != nil {
		return failFor(c, err)
	}

	user, err := h.Svc.Me(ctx, id.UserID)
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"user": profileFields(user)})
}
