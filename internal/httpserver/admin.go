package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/session"
)

type AdminHTTP struct {
	Stats    *service.StatsService
	Resolver *session.Resolver
}

func (h *AdminHTTP) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_stats")

	if _, err := h.Resolver.RequireAdmin(c); err != nil {
		return failFor(c, err)
	}

	snap, err := h.Stats.Stats(ctx)
	if err != nil {
		l.Error("admin_stats_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{
		"stats":              snap.Stats,
		"recentApplications": snap.RecentApplications,
	})
}

// Dashboard backs the /admin/dashboard page behind the AdminPages
// middleware; the actual UI is rendered client-side.
func (h *AdminHTTP) Dashboard(c echo.Context) error {
	return ok(c, http.StatusOK, echo.Map{"page": "dashboard"})
}
