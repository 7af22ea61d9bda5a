package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/util"
)

type EventsHTTP struct {
	Svc *service.EventService
}

func (h *EventsHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events_list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	pageSize := util.ParseIntDefault(c.QueryParam("pageSize"), util.DefaultPageSize)

	res, err := h.Svc.List(ctx, page, pageSize)
	if err != nil {
		l.Error("events_list_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"data": res})
}
