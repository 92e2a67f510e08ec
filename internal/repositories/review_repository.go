package repositories

import (
	"errors"

	"travel_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	FindReviewByID(db *gorm.DB, id string) (*models.Review, error)
	FindReviews(db *gorm.DB, filter ReviewFilter) ([]models.Review, int64, error)
	UpdateModeration(db *gorm.DB, id string, status models.ReviewStatus, verified *bool) error
	IncrementHelpful(db *gorm.DB, id string) (int, error)
	DeleteReview(db *gorm.DB, id string) error
	DeleteReviewsByPackage(db *gorm.DB, packageID string) error

	// Aggregates over APPROVED reviews only
	ApprovedAggregateForPackage(db *gorm.DB, packageID string) (Aggregate, error)
	ApprovedAggregateForDestination(db *gorm.DB, destinationID string) (Aggregate, error)
	ApprovedAggregateAll(db *gorm.DB) (Aggregate, error)

	CountByStatus(db *gorm.DB) (map[string]int64, error)
}

// ReviewFilter selects reviews for listing. Empty Statuses means any status.
type ReviewFilter struct {
	PackageID string
	Statuses  []models.ReviewStatus
	Page      int
	Limit     int
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviews(db *gorm.DB, filter ReviewFilter) ([]models.Review, int64, error) {
	base := func() *gorm.DB {
		q := db.Model(&models.Review{})
		if filter.PackageID != "" {
			q = q.Where("package_id = ?", filter.PackageID)
		}
		if len(filter.Statuses) > 0 {
			q = q.Where("status IN ?", filter.Statuses)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := paginate(base(), filter.Page, filter.Limit).
		Order("created_at DESC").Order("id DESC").
		Find(&reviews).Error
	return reviews, total, err
}

// UpdateModeration sets status and, when given, verified. It does not rely on
// RowsAffected because mysql reports 0 for an unchanged row.
func (r *ReviewRepositoryImpl) UpdateModeration(db *gorm.DB, id string, status models.ReviewStatus, verified *bool) error {
	updates := map[string]interface{}{"status": status}
	if verified != nil {
		updates["verified"] = *verified
	}
	return db.Model(&models.Review{}).Where("id = ?", id).Updates(updates).Error
}

// IncrementHelpful bumps the counter and reads it back in one transaction.
// The row lock taken by the UPDATE keeps other votes out of the returned value.
func (r *ReviewRepositoryImpl) IncrementHelpful(db *gorm.DB, id string) (int, error) {
	var helpful int
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Review{}).Where("id = ?", id).
			UpdateColumn("helpful", gorm.Expr("helpful + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReviewNotFound
		}
		return tx.Model(&models.Review{}).Where("id = ?", id).Select("helpful").Scan(&helpful).Error
	})
	if err != nil {
		return 0, err
	}
	return helpful, nil
}

func (r *ReviewRepositoryImpl) DeleteReview(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// DeleteReviewsByPackage removes a package's reviews ahead of the package
// itself, so deletion does not depend on the driver enforcing ON DELETE CASCADE.
func (r *ReviewRepositoryImpl) DeleteReviewsByPackage(db *gorm.DB, packageID string) error {
	return db.Where("package_id = ?", packageID).Delete(&models.Review{}).Error
}

func (r *ReviewRepositoryImpl) ApprovedAggregateForPackage(db *gorm.DB, packageID string) (Aggregate, error) {
	var agg Aggregate
	err := db.Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS total").
		Where("package_id = ? AND status = ?", packageID, models.ReviewStatusApproved).
		Scan(&agg).Error
	return agg, err
}

// ApprovedAggregateForDestination counts approved reviews of the destination's ACTIVE packages.
func (r *ReviewRepositoryImpl) ApprovedAggregateForDestination(db *gorm.DB, destinationID string) (Aggregate, error) {
	var agg Aggregate
	err := db.Model(&models.Review{}).
		Select("COUNT(reviews.id) AS count, COALESCE(SUM(reviews.rating), 0) AS total").
		Joins("JOIN packages ON packages.id = reviews.package_id").
		Where("packages.destination_id = ? AND packages.status = ? AND reviews.status = ?",
			destinationID, models.ListingStatusActive, models.ReviewStatusApproved).
		Scan(&agg).Error
	return agg, err
}

func (r *ReviewRepositoryImpl) ApprovedAggregateAll(db *gorm.DB) (Aggregate, error) {
	var agg Aggregate
	err := db.Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS total").
		Where("status = ?", models.ReviewStatusApproved).
		Scan(&agg).Error
	return agg, err
}

func (r *ReviewRepositoryImpl) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	return countByStatus(db, &models.Review{})
}
