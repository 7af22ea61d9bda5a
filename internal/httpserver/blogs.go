package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/util"
)

type BlogsHTTP struct {
	Svc *service.BlogService
}

func (h *BlogsHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blogs_list")

	category := c.QueryParam("category")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	pageSize := util.ParseIntDefault(c.QueryParam("pageSize"), util.DefaultPageSize)

	res, err := h.Svc.List(ctx, category, page, pageSize)
	if err != nil {
		l.Error("blogs_list_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"data": res})
}

func (h *BlogsHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "blogs_get")

	blog, err := h.Svc.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, http.StatusNotFound, "Blog post not found")
		}
		l.Error("blogs_get_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"blog": blog})
}
