package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel_backend/internal/auth"
	"travel_backend/internal/logger"
	"travel_backend/internal/middleware"
	"travel_backend/internal/models"
	"travel_backend/internal/testutil"
	"travel_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDB_CarriesIdsAddedAfterDBMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager(testutil.TestJWTSecret, time.Hour)
	user := &models.User{Role: models.UserRoleAdmin}
	user.ID = "user-42"
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	base := NewBaseHandler(validator.New())
	var requestID, userID string

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.DBMiddleware(testutil.NewDB(t)))
	r.GET("/who", middleware.NewAuthenticator(tokens).AuthMiddleware(), func(c *gin.Context) {
		ctx := base.GetDB(c).Statement.Context
		requestID = logger.GetRequestID(ctx)
		userID = logger.GetUserID(ctx)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "user-42", userID)
	assert.Equal(t, "req-1", requestID)
}
