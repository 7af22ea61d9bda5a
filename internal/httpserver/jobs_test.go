package httpserver

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrierx/carrierx/internal/models"
)

func TestListJobsEndpoint(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	seedJob(t, r, true)
	seedJob(t, r, false)

	rec := doJSON(e, http.MethodGet, "/api/jobs?page=1&pageSize=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Len(t, data["jobs"], 1)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["totalPages"])
}

func TestGetJobEndpoint(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	job := seedJob(t, r, true)

	rec := doJSON(e, http.MethodGet, "/api/jobs/"+job.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["hasApplied"])

	rec = doJSON(e, http.MethodGet, "/api/jobs/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/jobs/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateJobEndpoint_Authz(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	user := seedUser(t, r, "ada@example.com", models.RoleUser)

	payload := `{"companyId":"x","title":"T","location":"Remote","deadline":"2030-01-01"}`

	rec := doJSON(e, http.MethodPost, "/api/jobs", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/jobs", payload, sessionCookie(t, user))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJobEndpoint(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	admin := seedUser(t, r, "admin@example.com", models.RoleAdmin)

	company := &models.Company{Name: "Acme"}
	require.NoError(t, r.DB.Create(company).Error)

	rec := doJSON(e, http.MethodPost, "/api/jobs", `{"title":"T"}`, sessionCookie(t, admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/jobs",
		fmt.Sprintf(`{"companyId":%q,"title":"T","location":"Remote","deadline":"not-a-date"}`, company.ID),
		sessionCookie(t, admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	deadline := time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339)
	rec = doJSON(e, http.MethodPost, "/api/jobs",
		fmt.Sprintf(`{"companyId":%q,"title":"SRE Intern","location":"Berlin","deadline":%q,"techStack":["Go"]}`, company.ID, deadline),
		sessionCookie(t, admin))
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "SRE Intern", data["title"])
	assert.Equal(t, "INTERNSHIP", data["type"])
	assert.Equal(t, true, data["isActive"])
}

func TestApplyEndpoint(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	job := seedJob(t, r, true)
	user := seedUser(t, r, "ada@example.com", models.RoleUser)

	target := "/api/jobs/" + job.ID.String() + "/apply"

	rec := doJSON(e, http.MethodPost, target, `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, target, `{"answers":{"why":"because"}}`, sessionCookie(t, user))
	require.Equal(t, http.StatusOK, rec.Code)
	app := decodeBody(t, rec)["application"].(map[string]any)
	assert.Equal(t, "PENDING", app["status"])

	rec = doJSON(e, http.MethodPost, target, `{}`, sessionCookie(t, user))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You have already applied to this job", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodPost, "/api/jobs/"+uuid.NewString()+"/apply", `{}`, sessionCookie(t, user))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
