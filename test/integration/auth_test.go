package integration_test

import (
	"net/http"
	"testing"

	"travel_backend/internal/middleware"
	"travel_backend/internal/models"
	"travel_backend/internal/testutil"
	"travel_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginAndMe(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts, models.UserRoleEditor)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, user.Email)
	assert.NotContains(t, body, "password", "the hash never leaves the server")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAuth_BadCredentials(t *testing.T) {
	ts := helpers.NewTestServer(t)
	user := testutil.CreateUser(t, ts.DB, models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	assert.Contains(t, body, "Invalid email or password")
}

func TestDashboard_Stats(t *testing.T) {
	ts := helpers.NewTestServer(t)
	editor := helpers.LoginEditor(t, ts)
	testutil.CreatePackage(t, ts.DB, "Live", models.ListingStatusActive)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", editor, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"ACTIVE":1`)
}

func TestHealth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		res, body := ts.SendRequest(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"status":"ok","database":"up"}`, body)
		assert.NotEmpty(t, res.Header.Get(middleware.RequestIDHeader))
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"error":"Route not found"}`, body)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := helpers.NewTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "trace-123", res.Header.Get(middleware.RequestIDHeader))
}
