package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/session"
	"github.com/carrierx/carrierx/internal/token"
)

var testSecret = []byte("test-secret")

func newTestServer(t *testing.T) (*echo.Echo, *repo.GormRepo) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// :memory: is per connection; keep the pool at one so concurrent
	// queries see the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	r := repo.New(db)
	resolver := &session.Resolver{Secret: testSecret}
	cookies := session.CookieManager{}

	e := echo.New()
	Register(e, &Deps{
		Auth:      &AuthHTTP{Svc: &service.AuthService{Repo: r, Secret: testSecret}, Cookies: cookies, Resolver: resolver},
		Jobs:      &JobsHTTP{Jobs: &service.JobService{Repo: r}, Apps: &service.ApplicationService{Repo: r}, Resolver: resolver},
		Blogs:     &BlogsHTTP{Svc: &service.BlogService{Repo: r}},
		Companies: &CompaniesHTTP{Svc: &service.CompanyService{Repo: r}},
		Events:    &EventsHTTP{Svc: &service.EventService{Repo: r}},
		Search:    &SearchHTTP{Svc: &service.SearchService{Repo: r}},
		Admin:     &AdminHTTP{Stats: &service.StatsService{Repo: r}, Resolver: resolver},
		Resolver:  resolver,
	})
	return e, r
}

func seedUser(t *testing.T, r *repo.GormRepo, email, role string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "x", Name: "Test User", Role: role}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}

func seedJob(t *testing.T, r *repo.GormRepo, active bool) *models.Job {
	t.Helper()

	company := &models.Company{Name: "Acme"}
	require.NoError(t, r.DB.Create(company).Error)

	job := &models.Job{
		CompanyID: company.ID,
		Title:     "Backend Intern",
		Type:      models.JobTypeInternship,
		Location:  "Remote",
		Deadline:  time.Now().Add(30 * 24 * time.Hour),
		IsActive:  active,
	}
	require.NoError(t, r.DB.Create(job).Error)
	return job
}

func sessionCookie(t *testing.T, u *models.User) *http.Cookie {
	t.Helper()

	signed, err := token.Sign(token.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: signed}
}

func doJSON(e *echo.Echo, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
