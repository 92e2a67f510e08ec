package services

import (
	"fmt"
	"testing"

	"travel_backend/internal/models"
	"travel_backend/internal/services/dto"
	"travel_backend/internal/testutil"
	"travel_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ShortQueryNeverTouchesStore(t *testing.T) {
	svc := NewSearchService(nil, nil)

	for _, q := range []string{"", " ", "g", "  g  "} {
		resp, err := svc.Search(nil, q)
		require.NoError(t, err, "query %q", q)
		require.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
		assert.Zero(t, resp.Counts.Total)
	}
}

func TestSearch_MatchesPackagesAndDestinations(t *testing.T) {
	env := newTestEnv(t, nil)

	goa := testutil.CreateDestination(t, env.db, "Goa", models.ListingStatusActive)
	pkg := testutil.CreatePackage(t, env.db, "Goa Beach Paradise", models.ListingStatusActive, testutil.InDestination(goa))
	testutil.CreatePackage(t, env.db, "Kerala Backwaters", models.ListingStatusActive, testutil.WithLocation("Alleppey"))

	resp, err := env.search.Search(env.db, "GOA")
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Counts.Packages)
	assert.Equal(t, 1, resp.Counts.Destinations)
	assert.Equal(t, 2, resp.Counts.Total)

	first := resp.Results[0]
	assert.Equal(t, dto.ResultTypePackage, first.Type, "packages are listed before destinations")
	assert.Equal(t, pkg.ID, first.ID)
	assert.Equal(t, "/packages/"+pkg.Slug, first.Href)
	assert.Equal(t, "4 Nights / 5 Days • North Goa", first.Subtitle)
	require.NotNil(t, first.Price)
	assert.Equal(t, pkg.Price, *first.Price)

	second := resp.Results[1]
	assert.Equal(t, dto.ResultTypeDestination, second.Type)
	assert.Equal(t, "/destinations/"+goa.Slug, second.Href)
	assert.Equal(t, "Goa, India", second.Subtitle)
	assert.Nil(t, second.Price)
}

func TestSearch_ExcludesNonActiveListings(t *testing.T) {
	env := newTestEnv(t, nil)

	testutil.CreateDestination(t, env.db, "Goa Hidden", models.ListingStatusInactive)
	testutil.CreatePackage(t, env.db, "Goa Draft", models.ListingStatusDraft)
	testutil.CreatePackage(t, env.db, "Goa Retired", models.ListingStatusInactive)

	resp, err := env.search.Search(env.db, "goa")
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearch_CapsResultsPerType(t *testing.T) {
	env := newTestEnv(t, nil)

	for i := 0; i < MaxPackageResults+3; i++ {
		testutil.CreatePackage(t, env.db, fmt.Sprintf("Island Escape %d", i), models.ListingStatusActive)
	}
	for i := 0; i < MaxDestinationResults+2; i++ {
		testutil.CreateDestination(t, env.db, fmt.Sprintf("Island %d", i), models.ListingStatusActive)
	}

	resp, err := env.search.Search(env.db, "island")
	require.NoError(t, err)
	assert.Equal(t, MaxPackageResults, resp.Counts.Packages)
	assert.Equal(t, MaxDestinationResults, resp.Counts.Destinations)
	assert.Len(t, resp.Results, MaxPackageResults+MaxDestinationResults)
}

func TestSearch_FeaturedPackagesRankFirst(t *testing.T) {
	env := newTestEnv(t, nil)

	testutil.CreatePackage(t, env.db, "Alpine Trek", models.ListingStatusActive)
	featured := testutil.CreatePackage(t, env.db, "Zermatt Trek", models.ListingStatusActive, testutil.Featured())

	resp, err := env.search.Search(env.db, "trek")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, featured.ID, resp.Results[0].ID)
}

func TestSearch_LikeWildcardsAreLiteral(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreatePackage(t, env.db, "Goa Beach Paradise", models.ListingStatusActive)

	resp, err := env.search.Search(env.db, "%%")
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearch_StoreFailureReturnsNoPartialResults(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreatePackage(t, env.db, "Goa Beach Paradise", models.ListingStatusActive)
	require.NoError(t, env.db.Migrator().DropTable(&models.Destination{}))

	resp, err := env.search.Search(env.db, "goa")
	assert.Nil(t, resp)
	require.ErrorIs(t, err, apperrors.SearchError(nil))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode)
	assert.Equal(t, "Search failed", appErr.Message)
}
