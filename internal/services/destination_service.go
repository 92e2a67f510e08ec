package services

import (
	"strings"

	"travel_backend/internal/cache"
	"travel_backend/internal/events"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DestinationService interface {
	ListDestinations(db *gorm.DB, query *dto.DestinationListQuery, includeAllStatuses bool) (*dto.DestinationListResponse, error)
	GetDestinationBySlug(db *gorm.DB, slug string) (*models.Destination, error)
	GetDestinationByID(db *gorm.DB, id string) (*models.Destination, error)
	CreateDestination(db *gorm.DB, req *dto.DestinationRequest) (*models.Destination, error)
	UpdateDestination(db *gorm.DB, id string, req *dto.DestinationRequest) (*models.Destination, error)
	DeleteDestination(db *gorm.DB, id string) error
}

type destinationService struct {
	destinationRepo repositories.DestinationRepository
	packageRepo     repositories.PackageRepository
	pageCache       cache.PageCache
	bus             *events.Bus
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	packageRepo repositories.PackageRepository,
	pageCache cache.PageCache,
	bus *events.Bus,
) DestinationService {
	return &destinationService{
		destinationRepo: destinationRepo,
		packageRepo:     packageRepo,
		pageCache:       pageCache,
		bus:             bus,
	}
}

func (s *destinationService) ListDestinations(db *gorm.DB, query *dto.DestinationListQuery, includeAllStatuses bool) (*dto.DestinationListResponse, error) {
	page, limit := query.Normalize()

	filter := repositories.DestinationFilter{
		Category: strings.TrimSpace(query.Category),
		Featured: query.Featured,
		Query:    strings.TrimSpace(query.Q),
		Page:     page,
		Limit:    limit,
	}
	if query.Region != "" {
		filter.Region, _ = models.ParseRegion(query.Region)
	}

	switch {
	case !includeAllStatuses:
		filter.Statuses = []models.ListingStatus{models.ListingStatusActive}
	case query.Status != "":
		status, ok := models.ParseListingStatus(query.Status)
		if !ok {
			return nil, fieldError("status", "Must be one of: ACTIVE, INACTIVE, DRAFT")
		}
		filter.Statuses = []models.ListingStatus{status}
	}

	dests, total, err := s.destinationRepo.FindDestinations(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if dests == nil {
		dests = []models.Destination{}
	}

	return &dto.DestinationListResponse{
		Destinations: dests,
		Total:        total,
		Page:         page,
		TotalPages:   dto.TotalPages(total, limit),
	}, nil
}

// GetDestinationBySlug serves the public destination page, including its
// ACTIVE packages, through the page cache.
func (s *destinationService) GetDestinationBySlug(db *gorm.DB, slug string) (*models.Destination, error) {
	ctx := contextOf(db)
	key := cache.DestinationKey(slug)

	var cached models.Destination
	hit, err := s.pageCache.Get(ctx, key, &cached)
	if err != nil {
		logger.CtxWarn(ctx, "page cache read failed", "key", key, "error", err.Error())
	}
	if hit {
		return &cached, nil
	}

	dest, err := s.destinationRepo.FindDestinationBySlug(db, slug, true)
	if err != nil {
		return nil, mapRepoError(err)
	}

	pkgs, err := s.packageRepo.FindActiveByDestination(db, dest.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if pkgs == nil {
		pkgs = []models.Package{}
	}
	dest.Packages = pkgs

	if err := s.pageCache.Set(ctx, key, dest); err != nil {
		logger.CtxWarn(ctx, "page cache write failed", "key", key, "error", err.Error())
	}
	return dest, nil
}

func (s *destinationService) GetDestinationByID(db *gorm.DB, id string) (*models.Destination, error) {
	dest, err := s.destinationRepo.FindDestinationByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return dest, nil
}

func (s *destinationService) CreateDestination(db *gorm.DB, req *dto.DestinationRequest) (*models.Destination, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, fieldError("slug", "Could not derive a slug from the name; provide one")
	}

	dest := &models.Destination{Slug: slug, Status: models.ListingStatusDraft}
	if req.Status != "" {
		dest.Status, _ = models.ParseListingStatus(req.Status)
	}
	applyDestinationRequest(dest, req)

	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if exists, err := s.destinationRepo.SlugExists(tx, slug, ""); err != nil {
		return nil, apperrors.InternalError(err)
	} else if exists {
		return nil, apperrors.ErrSlugTaken
	}

	if err := s.destinationRepo.CreateDestination(tx, dest); err != nil {
		return nil, mapRepoError(err)
	}

	if err := commit(tx, "create_destination"); err != nil {
		return nil, err
	}

	logger.CtxInfo(contextOf(db), "destination created", "destination_id", dest.ID, "slug", dest.Slug)
	s.bus.Publish(contextOf(db), events.DestinationChanged{DestinationID: dest.ID, Slugs: []string{dest.Slug}})
	return dest, nil
}

func (s *destinationService) UpdateDestination(db *gorm.DB, id string, req *dto.DestinationRequest) (*models.Destination, error) {
	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	dest, err := s.destinationRepo.FindDestinationByID(tx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	oldSlug := dest.Slug

	if req.Slug != "" && req.Slug != dest.Slug {
		if exists, err := s.destinationRepo.SlugExists(tx, req.Slug, dest.ID); err != nil {
			return nil, apperrors.InternalError(err)
		} else if exists {
			return nil, apperrors.ErrSlugTaken
		}
		dest.Slug = req.Slug
	}
	if req.Status != "" {
		dest.Status, _ = models.ParseListingStatus(req.Status)
	}
	applyDestinationRequest(dest, req)

	if err := s.destinationRepo.UpdateDestination(tx, dest); err != nil {
		return nil, mapRepoError(err)
	}

	if err := commit(tx, "update_destination"); err != nil {
		return nil, err
	}

	logger.CtxInfo(contextOf(db), "destination updated", "destination_id", dest.ID, "slug", dest.Slug)
	s.bus.Publish(contextOf(db), events.DestinationChanged{DestinationID: dest.ID, Slugs: []string{oldSlug, dest.Slug}})
	return dest, nil
}

// DeleteDestination refuses while any package, in any status, still points at it.
func (s *destinationService) DeleteDestination(db *gorm.DB, id string) error {
	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dest, err := s.destinationRepo.FindDestinationByID(tx, id)
	if err != nil {
		return mapRepoError(err)
	}

	count, err := s.packageRepo.CountByDestination(tx, dest.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.ErrDestinationInUse.WithDetails(map[string]int64{"packages": count})
	}

	if err := s.destinationRepo.DeleteDestination(tx, dest.ID); err != nil {
		return mapRepoError(err)
	}

	if err := commit(tx, "delete_destination"); err != nil {
		return err
	}

	logger.CtxInfo(contextOf(db), "destination deleted", "destination_id", dest.ID, "slug", dest.Slug)
	s.bus.Publish(contextOf(db), events.DestinationChanged{DestinationID: dest.ID, Slugs: []string{dest.Slug}})
	return nil
}

func applyDestinationRequest(dest *models.Destination, req *dto.DestinationRequest) {
	dest.Name = strings.TrimSpace(req.Name)
	dest.Location = strings.TrimSpace(req.Location)
	dest.Country = strings.TrimSpace(req.Country)
	dest.Region, _ = models.ParseRegion(req.Region)
	dest.Category = strings.TrimSpace(req.Category)
	dest.Image = req.Image
	dest.Description = req.Description
	dest.Featured = req.Featured
}
