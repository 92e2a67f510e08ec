package services

import (
	"errors"
	"strings"

	"travel_backend/internal/events"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const ReviewSubmittedMessage = "Thank you! Your review has been submitted and is pending approval."

type ReviewService interface {
	CreateReview(db *gorm.DB, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error)
	ModerateReview(db *gorm.DB, req *dto.ModerateReviewRequest) (*models.Review, error)
	ApplyAction(db *gorm.DB, req *dto.ReviewActionRequest) (*dto.HelpfulResponse, error)
	ListReviews(db *gorm.DB, query *dto.ReviewListQuery, isAdmin bool) (*dto.ReviewListResponse, error)
	DeleteReview(db *gorm.DB, reviewID string) error
	GetStats(db *gorm.DB) (*dto.ReviewStatsResponse, error)
	RecomputePackageRating(db *gorm.DB, packageID string) (*dto.RatingResponse, error)
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	packageRepo repositories.PackageRepository
	aggregator  *RatingAggregator
	bus         *events.Bus
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	packageRepo repositories.PackageRepository,
	aggregator *RatingAggregator,
	bus *events.Bus,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		packageRepo: packageRepo,
		aggregator:  aggregator,
		bus:         bus,
	}
}

// ---------------- Submission ----------------

func (s *reviewService) CreateReview(db *gorm.DB, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error) {
	name := strings.TrimSpace(req.Name)
	comment := strings.TrimSpace(req.Comment)
	if name == "" {
		return nil, fieldError("name", "This field is required")
	}
	if comment == "" {
		return nil, fieldError("comment", "This field is required")
	}
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, fieldError("rating", "Must be between 1 and 5")
	}

	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	pkg, err := s.packageRepo.FindPackageByID(tx, req.PackageID)
	if err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.ErrPackageNotReviewable
		}
		return nil, apperrors.InternalError(err)
	}
	if pkg.Status != models.ListingStatusActive {
		return nil, apperrors.ErrPackageNotReviewable
	}

	images := make(datatypes.JSONSlice[string], 0, len(req.Images))
	images = append(images, req.Images...)

	review := &models.Review{
		PackageID: pkg.ID,
		Name:      name,
		Email:     optional(req.Email),
		Location:  optional(req.Location),
		Rating:    req.Rating,
		Title:     optional(req.Title),
		Comment:   comment,
		Images:    images,
		Verified:  false,
		Helpful:   0,
		Status:    models.ReviewStatusPending,
	}

	if err := s.reviewRepo.CreateReview(tx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result, err := s.aggregator.Recompute(tx, pkg.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := commit(tx, "create_review"); err != nil {
		return nil, err
	}

	logger.CtxInfo(contextOf(db), "review submitted", "review_id", review.ID, "package_id", pkg.ID)
	s.publishRatingChanged(db, result)

	return &dto.CreateReviewResponse{
		Review:  review,
		Message: ReviewSubmittedMessage,
	}, nil
}

// ---------------- Moderation ----------------

func (s *reviewService) ModerateReview(db *gorm.DB, req *dto.ModerateReviewRequest) (*models.Review, error) {
	status, ok := models.ParseReviewStatus(req.Status)
	if !ok {
		return nil, fieldError("status", "Must be one of: PENDING, APPROVED, REJECTED")
	}

	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	review, err := s.reviewRepo.FindReviewByID(tx, req.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	previous := review.Status

	if err := s.reviewRepo.UpdateModeration(tx, review.ID, status, req.Verified); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Only a change in the APPROVED set can move the aggregate.
	var result *RecomputeResult
	if previous == models.ReviewStatusApproved || status == models.ReviewStatusApproved {
		result, err = s.aggregator.Recompute(tx, review.PackageID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	updated, err := s.reviewRepo.FindReviewByID(tx, review.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := commit(tx, "moderate_review"); err != nil {
		return nil, err
	}

	logger.CtxInfo(contextOf(db), "review moderated",
		"review_id", review.ID,
		"from", previous,
		"to", status,
	)
	s.publishRatingChanged(db, result)

	return updated, nil
}

// ---------------- Helpful vote ----------------

// ApplyAction handles the public PATCH. "helpful" is the only action; votes
// are not deduplicated per visitor.
func (s *reviewService) ApplyAction(db *gorm.DB, req *dto.ReviewActionRequest) (*dto.HelpfulResponse, error) {
	if req.Action != dto.ReviewActionHelpful {
		return nil, apperrors.ErrInvalidReviewAction.WithDetails(map[string]string{
			"action": "Must be: " + dto.ReviewActionHelpful,
		})
	}

	helpful, err := s.reviewRepo.IncrementHelpful(db, req.ID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &dto.HelpfulResponse{
		Review: dto.HelpfulReview{ID: req.ID, Helpful: helpful},
	}, nil
}

// ---------------- Listing ----------------

// ListReviews shows only APPROVED reviews unless an admin asks for includeAll.
// A non-admin includeAll is ignored rather than rejected.
func (s *reviewService) ListReviews(db *gorm.DB, query *dto.ReviewListQuery, isAdmin bool) (*dto.ReviewListResponse, error) {
	page, limit := query.Normalize()

	filter := repositories.ReviewFilter{
		PackageID: strings.TrimSpace(query.PackageID),
		Page:      page,
		Limit:     limit,
	}

	if isAdmin && query.IncludeAll {
		if query.Status != "" {
			status, ok := models.ParseReviewStatus(query.Status)
			if !ok {
				return nil, fieldError("status", "Must be one of: PENDING, APPROVED, REJECTED")
			}
			filter.Statuses = []models.ReviewStatus{status}
		}
	} else {
		filter.Statuses = []models.ReviewStatus{models.ReviewStatusApproved}
	}

	reviews, total, err := s.reviewRepo.FindReviews(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return &dto.ReviewListResponse{
		Reviews:    reviews,
		Total:      total,
		Page:       page,
		TotalPages: dto.TotalPages(total, limit),
	}, nil
}

// ---------------- Deletion ----------------

func (s *reviewService) DeleteReview(db *gorm.DB, reviewID string) error {
	reviewID = strings.TrimSpace(reviewID)
	if reviewID == "" {
		return fieldError("id", "This field is required")
	}

	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	review, err := s.reviewRepo.FindReviewByID(tx, reviewID)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.reviewRepo.DeleteReview(tx, review.ID); err != nil {
		return mapRepoError(err)
	}

	result, err := s.aggregator.Recompute(tx, review.PackageID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := commit(tx, "delete_review"); err != nil {
		return err
	}

	logger.CtxInfo(contextOf(db), "review deleted", "review_id", review.ID, "package_id", review.PackageID)
	s.publishRatingChanged(db, result)
	return nil
}

// ---------------- Admin ----------------

func (s *reviewService) GetStats(db *gorm.DB) (*dto.ReviewStatsResponse, error) {
	counts, err := s.reviewRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	agg, err := s.reviewRepo.ApprovedAggregateAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.ReviewStatsResponse{
		Pending:       counts[string(models.ReviewStatusPending)],
		Approved:      counts[string(models.ReviewStatusApproved)],
		Rejected:      counts[string(models.ReviewStatusRejected)],
		AverageRating: AverageRating(agg.Total, agg.Count),
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}

// RecomputePackageRating repairs a package aggregate on demand.
func (s *reviewService) RecomputePackageRating(db *gorm.DB, packageID string) (*dto.RatingResponse, error) {
	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := s.aggregator.Recompute(tx, packageID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := commit(tx, "recompute_rating"); err != nil {
		return nil, err
	}
	s.publishRatingChanged(db, result)

	return &dto.RatingResponse{
		PackageID: result.Package.ID,
		Rating:    result.Package.Rating,
		Reviews:   int64(result.Package.Reviews),
	}, nil
}

// publishRatingChanged runs after commit; subscribers only log their failures.
func (s *reviewService) publishRatingChanged(db *gorm.DB, result *RecomputeResult) {
	if result == nil || result.Package == nil {
		return
	}
	s.bus.Publish(contextOf(db), events.PackageRatingChanged{
		PackageID:       result.Package.ID,
		Slug:            result.Package.Slug,
		DestinationSlug: result.DestinationSlug(),
	})
}

// optional maps nil or blank input to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
