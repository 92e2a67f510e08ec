package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"travel_backend/internal/models"
	"travel_backend/test/helpers"

	"github.com/stretchr/testify/require"
)

type reviewBody struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	Rating   int     `json:"rating"`
	Helpful  int     `json:"helpful"`
	Verified bool    `json:"verified"`
	Email    *string `json:"email"`
}

type reviewList struct {
	Reviews    []reviewBody `json:"reviews"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

type apiError struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details"`
}

// postReview submits a valid review for pkgID and returns its id.
func postReview(t *testing.T, ts *helpers.TestServer, pkgID string, rating int) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", "", map[string]interface{}{
		"packageId": pkgID,
		"name":      "Asha",
		"rating":    rating,
		"comment":   "Well organised trip",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Review reviewBody `json:"review"`
	}
	helpers.DecodeJSON(t, body, &created)
	return created.Review.ID
}

func approve(t *testing.T, ts *helpers.TestServer, token, id string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/reviews", token, map[string]interface{}{
		"id":     id,
		"status": string(models.ReviewStatusApproved),
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func listReviews(t *testing.T, ts *helpers.TestServer, token string, query string, args ...interface{}) reviewList {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/reviews?"+fmt.Sprintf(query, args...), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list reviewList
	helpers.DecodeJSON(t, body, &list)
	return list
}
