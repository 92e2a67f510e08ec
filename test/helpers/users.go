package helpers

import (
	"net/http"
	"testing"

	"travel_backend/internal/models"
	"travel_backend/internal/testutil"

	"github.com/stretchr/testify/require"
)

// CreateAndLoginUser inserts a back-office user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := testutil.CreateUser(t, ts.DB, role)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": testutil.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: %s", body)

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	DecodeJSON(t, body, &login)
	require.NotEmpty(t, login.AccessToken)

	return login.AccessToken, user
}

func LoginAdmin(t *testing.T, ts *TestServer) string {
	t.Helper()
	token, _ := CreateAndLoginUser(t, ts, models.UserRoleAdmin)
	return token
}

func LoginEditor(t *testing.T, ts *TestServer) string {
	t.Helper()
	token, _ := CreateAndLoginUser(t, ts, models.UserRoleEditor)
	return token
}
