package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carrierx/carrierx/internal/session"
)

type Deps struct {
	Auth      *AuthHTTP
	Jobs      *JobsHTTP
	Blogs     *BlogsHTTP
	Companies *CompaniesHTTP
	Events    *EventsHTTP
	Search    *SearchHTTP
	Admin     *AdminHTTP
	Resolver  *session.Resolver
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/me", d.Auth.Me)

	api.GET("/jobs", d.Jobs.List)
	api.POST("/jobs", d.Jobs.Create)
	api.GET("/jobs/:id", d.Jobs.Get)
	api.POST("/jobs/:id/apply", d.Jobs.Apply)

	api.GET("/blogs", d.Blogs.List)
	api.GET("/blogs/:slug", d.Blogs.Get)

	api.GET("/companies", d.Companies.List)
	api.GET("/companies/:id", d.Companies.Get)

	api.GET("/events", d.Events.List)

	api.GET("/search", d.Search.Search)

	api.GET("/admin/stats", d.Admin.GetStats)

	// Back-office pages; the middleware redirects anyone without a
	// valid admin session.
	admin := e.Group("/admin")
	admin.Use(AdminPages(d.Resolver))
	admin.GET("/dashboard", d.Admin.Dashboard)
}
