package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/util"
)

type CompaniesHTTP struct {
	Svc *service.CompanyService
}

func (h *CompaniesHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "companies_list")

	premium := c.QueryParam("premium") == "true"
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	pageSize := util.ParseIntDefault(c.QueryParam("pageSize"), util.DefaultPageSize)

	res, err := h.Svc.List(ctx, premium, page, pageSize)
	if err != nil {
		l.Error("companies_list_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"data": res})
}

func (h *CompaniesHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "companies_get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid company id")
	}

	detail, err := h.Svc.Get(ctx, id)
	if err != nil {
		if err == service.ErrNotFound {
			return fail(c, http.StatusNotFound, "Company not found")
		}
		l.Error("companies_get_failed", "status", 500, "error", err)
		return failFor(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"data": detail})
}
