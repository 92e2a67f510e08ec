package services

import (
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"

	"gorm.io/gorm"
)

// AverageRating is sum/count rounded half-up to one decimal, computed on
// integers so 4.25 becomes 4.3 and 4.35 becomes 4.4. Zero reviews give 0.
func AverageRating(sum, count int64) float64 {
	if count <= 0 {
		return 0
	}
	tenths := (20*sum + count) / (2 * count)
	return float64(tenths) / 10
}

// RecomputeResult carries what changed so callers can publish events after commit.
type RecomputeResult struct {
	Package     *models.Package
	Destination *models.Destination
}

func (r *RecomputeResult) DestinationSlug() string {
	if r == nil || r.Destination == nil {
		return ""
	}
	return r.Destination.Slug
}

// RatingAggregator rewrites the derived rating/reviews columns from the
// APPROVED reviews. It always runs inside the caller's transaction, so a
// failure here rolls back the review change that triggered it.
type RatingAggregator struct {
	reviewRepo      repositories.ReviewRepository
	packageRepo     repositories.PackageRepository
	destinationRepo repositories.DestinationRepository
}

func NewRatingAggregator(
	reviewRepo repositories.ReviewRepository,
	packageRepo repositories.PackageRepository,
	destinationRepo repositories.DestinationRepository,
) *RatingAggregator {
	return &RatingAggregator{
		reviewRepo:      reviewRepo,
		packageRepo:     packageRepo,
		destinationRepo: destinationRepo,
	}
}

// Recompute refreshes one package and then its destination.
func (a *RatingAggregator) Recompute(tx *gorm.DB, packageID string) (*RecomputeResult, error) {
	pkg, err := a.packageRepo.FindPackageByID(tx, packageID)
	if err != nil {
		return nil, err
	}

	agg, err := a.reviewRepo.ApprovedAggregateForPackage(tx, packageID)
	if err != nil {
		return nil, err
	}

	rating := AverageRating(agg.Total, agg.Count)
	if err := a.packageRepo.UpdateAggregate(tx, packageID, rating, agg.Count); err != nil {
		return nil, err
	}
	pkg.Rating = rating
	pkg.Reviews = int(agg.Count)

	result := &RecomputeResult{Package: pkg}
	if pkg.DestinationID != nil && *pkg.DestinationID != "" {
		dest, err := a.RecomputeDestination(tx, *pkg.DestinationID)
		if err != nil {
			return nil, err
		}
		result.Destination = dest
	}
	return result, nil
}

// RecomputeDestination rolls up approved reviews across the destination's ACTIVE packages.
func (a *RatingAggregator) RecomputeDestination(tx *gorm.DB, destinationID string) (*models.Destination, error) {
	dest, err := a.destinationRepo.FindDestinationByID(tx, destinationID)
	if err != nil {
		return nil, err
	}

	agg, err := a.reviewRepo.ApprovedAggregateForDestination(tx, destinationID)
	if err != nil {
		return nil, err
	}

	rating := AverageRating(agg.Total, agg.Count)
	if err := a.destinationRepo.UpdateAggregate(tx, destinationID, rating, agg.Count); err != nil {
		return nil, err
	}
	dest.Rating = rating
	dest.Reviews = int(agg.Count)
	return dest, nil
}
