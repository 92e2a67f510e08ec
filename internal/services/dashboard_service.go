package services

import (
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DashboardService interface {
	Stats(db *gorm.DB) (*dto.DashboardStats, error)
}

type dashboardService struct {
	packageRepo     repositories.PackageRepository
	destinationRepo repositories.DestinationRepository
	blogRepo        repositories.BlogRepository
	reviewRepo      repositories.ReviewRepository
	enquiryRepo     repositories.EnquiryRepository
}

func NewDashboardService(
	packageRepo repositories.PackageRepository,
	destinationRepo repositories.DestinationRepository,
	blogRepo repositories.BlogRepository,
	reviewRepo repositories.ReviewRepository,
	enquiryRepo repositories.EnquiryRepository,
) DashboardService {
	return &dashboardService{
		packageRepo:     packageRepo,
		destinationRepo: destinationRepo,
		blogRepo:        blogRepo,
		reviewRepo:      reviewRepo,
		enquiryRepo:     enquiryRepo,
	}
}

func (s *dashboardService) Stats(db *gorm.DB) (*dto.DashboardStats, error) {
	packages, err := s.packageRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, status := range []models.ListingStatus{models.ListingStatusActive, models.ListingStatusInactive, models.ListingStatusDraft} {
		if _, ok := packages[string(status)]; !ok {
			packages[string(status)] = 0
		}
	}

	destinations, err := s.destinationRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	posts, err := s.blogRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	enquiries, err := s.enquiryRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		Packages:       packages,
		Destinations:   destinations,
		PublishedPosts: posts[string(models.PostStatusPublished)],
		DraftPosts:     posts[string(models.PostStatusDraft)],
		PendingReviews: reviews[string(models.ReviewStatusPending)],
		NewEnquiries:   enquiries[string(models.EnquiryStatusNew)],
	}, nil
}
