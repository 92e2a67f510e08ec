package integration_test

import (
	"net/http"
	"testing"

	"travel_backend/internal/models"
	"travel_backend/internal/testutil"
	"travel_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_SubmitModerateAndAggregate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	admin := helpers.LoginAdmin(t, ts)
	pkg := testutil.CreatePackage(t, ts.DB, "Goa Beach Paradise", models.ListingStatusActive)

	id := postReview(t, ts, pkg.ID, 5)

	public := listReviews(t, ts, "", "packageId=%s&includeAll=true", pkg.ID)
	assert.Empty(t, public.Reviews, "pending reviews stay hidden from the public")
	require.NotNil(t, public.Reviews)

	all := listReviews(t, ts, admin, "packageId=%s&includeAll=true", pkg.ID)
	require.Len(t, all.Reviews, 1)
	assert.Equal(t, id, all.Reviews[0].ID)
	assert.Equal(t, "PENDING", all.Reviews[0].Status)

	for _, rating := range []int{4, 4, 4} {
		approve(t, ts, admin, postReview(t, ts, pkg.ID, rating))
	}
	approve(t, ts, admin, id)

	public = listReviews(t, ts, "", "packageId=%s", pkg.ID)
	assert.Len(t, public.Reviews, 4)

	public = listReviews(t, ts, "", "packageId=%s&status=whatever", pkg.ID)
	assert.Len(t, public.Reviews, 4, "public callers cannot filter by status")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/packages/"+pkg.Slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var page struct {
		Package struct {
			Rating  float64 `json:"rating"`
			Reviews int     `json:"reviews"`
		} `json:"package"`
	}
	helpers.DecodeJSON(t, body, &page)
	assert.Equal(t, 4.3, page.Package.Rating)
	assert.Equal(t, 4, page.Package.Reviews)
}

func TestReview_RatingOutOfRangeIsRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	pkg := testutil.CreatePackage(t, ts.DB, "Bali Explorer", models.ListingStatusActive)

	for _, rating := range []int{0, 6, -1} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", "", map[string]interface{}{
			"packageId": pkg.ID,
			"name":      "Asha",
			"rating":    rating,
			"comment":   "x",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "rating %d: %s", rating, body)

		var apiErr apiError
		helpers.DecodeJSON(t, body, &apiErr)
		assert.Contains(t, apiErr.Details, "rating")
	}

	var count int64
	require.NoError(t, ts.DB.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReview_MissingFieldsAndBadJSON(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", "", map[string]interface{}{"rating": 4})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var apiErr apiError
	helpers.DecodeJSON(t, body, &apiErr)
	assert.Contains(t, apiErr.Details, "packageId")
	assert.Contains(t, apiErr.Details, "name")
	assert.Contains(t, apiErr.Details, "comment")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", "", "not an object")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReview_UnknownOrHiddenPackageIs404(t *testing.T) {
	ts := helpers.NewTestServer(t)
	draft := testutil.CreatePackage(t, ts.DB, "Secret Trip", models.ListingStatusDraft)

	for _, id := range []string{draft.ID, "does-not-exist"} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", "", map[string]interface{}{
			"packageId": id,
			"name":      "Asha",
			"rating":    5,
			"comment":   "x",
		})
		assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	}
}

func TestReview_ModerationRequiresAdmin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	editor := helpers.LoginEditor(t, ts)
	pkg := testutil.CreatePackage(t, ts.DB, "Goa Beach Paradise", models.ListingStatusActive)
	id := postReview(t, ts, pkg.ID, 5)

	moderation := map[string]interface{}{"id": id, "status": "APPROVED"}

	cases := map[string]string{
		"anonymous":     "",
		"garbage token": "not-a-jwt",
		"editor":        editor,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/reviews", token, moderation)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

			res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews?id="+id, token, nil)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
		})
	}

	stored := testutil.Reload[models.Review](t, ts.DB, id)
	assert.Equal(t, models.ReviewStatusPending, stored.Status, "no mutation without authorisation")
}

func TestReview_AdminDeleteRecomputes(t *testing.T) {
	ts := helpers.NewTestServer(t)
	admin := helpers.LoginAdmin(t, ts)
	pkg := testutil.CreatePackage(t, ts.DB, "Goa Beach Paradise", models.ListingStatusActive)

	keep := postReview(t, ts, pkg.ID, 4)
	drop := postReview(t, ts, pkg.ID, 2)
	approve(t, ts, admin, keep)
	approve(t, ts, admin, drop)
	require.Equal(t, 3.0, testutil.Reload[models.Package](t, ts.DB, pkg.ID).Rating)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews?id="+drop, admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, 4.0, testutil.Reload[models.Package](t, ts.DB, pkg.ID).Rating)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews?id="+drop, admin, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews", admin, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReview_HelpfulVotes(t *testing.T) {
	ts := helpers.NewTestServer(t)
	pkg := testutil.CreatePackage(t, ts.DB, "Goa Beach Paradise", models.ListingStatusActive)
	id := postReview(t, ts, pkg.ID, 5)

	for want := 1; want <= 3; want++ {
		res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/reviews", "", map[string]interface{}{
			"id":     id,
			"action": "helpful",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var resp struct {
			Review struct {
				ID      string `json:"id"`
				Helpful int    `json:"helpful"`
			} `json:"review"`
		}
		helpers.DecodeJSON(t, body, &resp)
		assert.Equal(t, id, resp.Review.ID)
		assert.Equal(t, want, resp.Review.Helpful)
	}

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/reviews", "", map[string]interface{}{"id": id, "action": "report"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/reviews", "", map[string]interface{}{"id": "missing", "action": "helpful"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestReview_StatsAndRecompute(t *testing.T) {
	ts := helpers.NewTestServer(t)
	admin := helpers.LoginAdmin(t, ts)
	pkg := testutil.CreatePackage(t, ts.DB, "Goa Beach Paradise", models.ListingStatusActive)

	approve(t, ts, admin, postReview(t, ts, pkg.ID, 5))
	postReview(t, ts, pkg.ID, 1)

	// drift the stored aggregate behind the service's back
	require.NoError(t, ts.DB.Model(&models.Package{}).Where("id = ?", pkg.ID).Updates(map[string]interface{}{"rating": 1.0, "reviews": 9}).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/packages/"+pkg.ID+"/recompute-rating", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, 5.0, testutil.Reload[models.Package](t, ts.DB, pkg.ID).Rating)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/reviews/stats", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Total    int64 `json:"total"`
	}
	helpers.DecodeJSON(t, body, &stats)
	assert.EqualValues(t, 1, stats.Pending)
	assert.EqualValues(t, 1, stats.Approved)
	assert.EqualValues(t, 2, stats.Total)
}
