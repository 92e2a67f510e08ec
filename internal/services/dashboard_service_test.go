package services

import (
	"testing"

	"travel_backend/internal/models"
	"travel_backend/internal/services/dto"
	"travel_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_EmptyStore(t *testing.T) {
	env := newTestEnv(t, nil)

	stats, err := env.dashboard.Stats(env.db)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"ACTIVE": 0, "INACTIVE": 0, "DRAFT": 0}, stats.Packages)
	assert.Zero(t, stats.Destinations)
	assert.Zero(t, stats.PendingReviews)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t, nil)

	testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)
	pkg := testutil.CreatePackage(t, env.db, "Live", models.ListingStatusActive)
	testutil.CreatePackage(t, env.db, "Draft", models.ListingStatusDraft)

	submitReview(t, env, pkg.ID, 5)
	approved := submitReview(t, env, pkg.ID, 4)
	moderate(t, env, approved.ID, models.ReviewStatusApproved)

	_, err := env.blog.CreatePost(env.db, &dto.PostRequest{Title: "Out", Content: "x", Status: "PUBLISHED"})
	require.NoError(t, err)
	_, err = env.blog.CreatePost(env.db, &dto.PostRequest{Title: "In", Content: "x"})
	require.NoError(t, err)

	_, err = env.enquiries.CreateEnquiry(env.db, &dto.CreateEnquiryRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	stats, err := env.dashboard.Stats(env.db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Packages["ACTIVE"])
	assert.EqualValues(t, 1, stats.Packages["DRAFT"])
	assert.EqualValues(t, 0, stats.Packages["INACTIVE"])
	assert.EqualValues(t, 1, stats.Destinations)
	assert.EqualValues(t, 1, stats.PublishedPosts)
	assert.EqualValues(t, 1, stats.DraftPosts)
	assert.EqualValues(t, 1, stats.PendingReviews)
	assert.EqualValues(t, 1, stats.NewEnquiries)
}
