package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"travel_backend/internal/auth"
	"travel_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const DefaultPassword = "password123"

var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// CreateUser inserts an active back-office user with DefaultPassword.
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &models.User{
		Email:        fmt.Sprintf("%s_%d@example.com", strings.ToLower(string(role)), next()),
		PasswordHash: hash,
		Name:         "Test " + string(role),
		Role:         role,
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateDestination inserts an INDIA destination with the given status.
func CreateDestination(t *testing.T, db *gorm.DB, name string, status models.ListingStatus) *models.Destination {
	t.Helper()

	dest := &models.Destination{
		Name:     name,
		Slug:     fmt.Sprintf("%s-%d", slugish(name), next()),
		Location: name,
		Country:  "India",
		Region:   models.RegionIndia,
		Status:   status,
	}
	require.NoError(t, db.Create(dest).Error)
	return dest
}

// PackageOption tweaks a fixture package before insert.
type PackageOption func(*models.Package)

func InDestination(dest *models.Destination) PackageOption {
	return func(p *models.Package) {
		p.DestinationID = &dest.ID
		p.DestinationName = dest.Name
	}
}

func WithSlug(slug string) PackageOption {
	return func(p *models.Package) { p.Slug = slug }
}

func WithPrice(price float64) PackageOption {
	return func(p *models.Package) { p.Price = price }
}

func WithLocation(location string) PackageOption {
	return func(p *models.Package) { p.Location = location }
}

func Featured() PackageOption {
	return func(p *models.Package) { p.Featured = true }
}

func CreatePackage(t *testing.T, db *gorm.DB, name string, status models.ListingStatus, opts ...PackageOption) *models.Package {
	t.Helper()

	pkg := &models.Package{
		Name:         name,
		Slug:         fmt.Sprintf("%s-%d", slugish(name), next()),
		Location:     "North Goa",
		Country:      "India",
		Price:        19999,
		Duration:     "4 Nights / 5 Days",
		DurationDays: 5,
		Status:       status,
	}
	for _, opt := range opts {
		opt(pkg)
	}
	require.NoError(t, db.Create(pkg).Error)
	return pkg
}

// CreateReview inserts a review directly, bypassing aggregation.
func CreateReview(t *testing.T, db *gorm.DB, packageID string, rating int, status models.ReviewStatus) *models.Review {
	t.Helper()

	review := &models.Review{
		PackageID: packageID,
		Name:      fmt.Sprintf("Guest %d", next()),
		Rating:    rating,
		Comment:   "Lovely trip",
		Status:    status,
	}
	require.NoError(t, db.Create(review).Error)
	return review
}

// Reload fetches a fresh copy of a model by primary key.
func Reload[T any](t *testing.T, db *gorm.DB, id string) *T {
	t.Helper()

	var out T
	require.NoError(t, db.First(&out, "id = ?", id).Error)
	return &out
}

func slugish(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return string(out)
}
