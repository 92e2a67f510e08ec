package services

import (
	"testing"

	"travel_backend/internal/cache"
	"travel_backend/internal/events"
	"travel_backend/internal/models"
	"travel_backend/internal/services/dto"
	"travel_backend/internal/testutil"
	"travel_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDestination(t *testing.T) {
	env := newTestEnv(t, nil)

	dest, err := env.destinations.CreateDestination(env.db, &dto.DestinationRequest{
		Name:    "Café Coast",
		Country: "Portugal",
		Region:  "world",
		Status:  "ACTIVE",
	})
	require.NoError(t, err)

	assert.Equal(t, "cafe-coast", dest.Slug)
	assert.Equal(t, models.RegionWorld, dest.Region)
	assert.Equal(t, models.ListingStatusActive, dest.Status)
	assert.Equal(t, []string{events.NameDestinationChanged}, env.recorder.names())

	_, err = env.destinations.CreateDestination(env.db, &dto.DestinationRequest{Name: "Cafe Coast", Region: "WORLD"})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)
}

func TestGetDestinationBySlug_IncludesOnlyActivePackages(t *testing.T) {
	env := newTestEnv(t, nil)
	goa := testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)
	live := testutil.CreatePackage(t, env.db, "Live", models.ListingStatusActive, testutil.InDestination(goa))
	testutil.CreatePackage(t, env.db, "Draft", models.ListingStatusDraft, testutil.InDestination(goa))

	dest, err := env.destinations.GetDestinationBySlug(env.db, goa.Slug)
	require.NoError(t, err)
	require.Len(t, dest.Packages, 1)
	assert.Equal(t, live.ID, dest.Packages[0].ID)
}

func TestGetDestinationBySlug_HidesNonActive(t *testing.T) {
	env := newTestEnv(t, nil)
	hidden := testutil.CreateDestination(t, env.db, "Hidden", models.ListingStatusInactive)

	_, err := env.destinations.GetDestinationBySlug(env.db, hidden.Slug)
	assert.ErrorIs(t, err, apperrors.ErrDestinationNotFound)

	// the dashboard still reaches it by id
	got, err := env.destinations.GetDestinationByID(env.db, hidden.ID)
	require.NoError(t, err)
	assert.Equal(t, hidden.Slug, got.Slug)
}

func TestUpdateDestination_RenameInvalidatesBothSlugs(t *testing.T) {
	mr, pageCache := newRedisCache(t)
	env := newTestEnv(t, pageCache)
	goa := testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)

	_, err := env.destinations.GetDestinationBySlug(env.db, goa.Slug)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.DestinationKey(goa.Slug)))

	updated, err := env.destinations.UpdateDestination(env.db, goa.ID, &dto.DestinationRequest{
		Name:   "North Goa",
		Slug:   "north-goa",
		Region: "INDIA",
	})
	require.NoError(t, err)
	assert.Equal(t, "north-goa", updated.Slug)
	assert.Equal(t, models.ListingStatusActive, updated.Status, "blank status leaves it unchanged")
	assert.False(t, mr.Exists(cache.DestinationKey(goa.Slug)))

	require.Len(t, env.recorder.events, 1)
	changed, ok := env.recorder.events[0].(events.DestinationChanged)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{goa.Slug, "north-goa"}, changed.Slugs)
}

func TestUpdateDestination_PreservesAggregate(t *testing.T) {
	env := newTestEnv(t, nil)
	goa := testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)
	pkg := testutil.CreatePackage(t, env.db, "Beach", models.ListingStatusActive, testutil.InDestination(goa))
	moderate(t, env, submitReview(t, env, pkg.ID, 4).ID, models.ReviewStatusApproved)

	_, err := env.destinations.UpdateDestination(env.db, goa.ID, &dto.DestinationRequest{Name: "Goa", Region: "INDIA"})
	require.NoError(t, err)

	stored := testutil.Reload[models.Destination](t, env.db, goa.ID)
	assert.Equal(t, 4.0, stored.Rating)
	assert.Equal(t, 1, stored.Reviews)
}

func TestDeleteDestination_RefusedWhilePackagesAttached(t *testing.T) {
	env := newTestEnv(t, nil)
	goa := testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)
	pkg := testutil.CreatePackage(t, env.db, "Draft", models.ListingStatusDraft, testutil.InDestination(goa))

	err := env.destinations.DeleteDestination(env.db, goa.ID)
	require.ErrorIs(t, err, apperrors.ErrDestinationInUse)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, map[string]int64{"packages": 1}, appErr.Details)

	require.NoError(t, env.packages.DeletePackage(env.db, pkg.ID))
	require.NoError(t, env.destinations.DeleteDestination(env.db, goa.ID))

	_, err = env.destinations.GetDestinationByID(env.db, goa.ID)
	assert.ErrorIs(t, err, apperrors.ErrDestinationNotFound)
}

func TestListDestinations(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)
	testutil.CreateDestination(t, env.db, "Kerala", models.ListingStatusActive)
	testutil.CreateDestination(t, env.db, "Ladakh", models.ListingStatusDraft)

	public, err := env.destinations.ListDestinations(env.db, &dto.DestinationListQuery{}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, public.Total)

	all, err := env.destinations.ListDestinations(env.db, &dto.DestinationListQuery{}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
}
