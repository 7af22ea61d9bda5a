package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrierx/carrierx/internal/models"
)

func TestGetStats_Authz(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	user := seedUser(t, r, "ada@example.com", models.RoleUser)

	rec := doJSON(e, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/admin/stats", "", sessionCookie(t, user))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetStats(t *testing.T) {
	t.Parallel()
	e, r := newTestServer(t)
	admin := seedUser(t, r, "admin@example.com", models.RoleAdmin)
	seedJob(t, r, true)

	rec := doJSON(e, http.MethodGet, "/api/admin/stats", "", sessionCookie(t, admin))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["totalJobs"])
	assert.Equal(t, float64(1), stats["activeJobs"])
	assert.NotNil(t, body["recentApplications"])
}
