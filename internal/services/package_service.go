package services

import (
	"errors"
	"strings"

	"travel_backend/internal/cache"
	"travel_backend/internal/events"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PackageService interface {
	ListPackages(db *gorm.DB, query *dto.PackageListQuery, includeAllStatuses bool) (*dto.PackageListResponse, error)
	GetPackageBySlug(db *gorm.DB, slug string) (*models.Package, error)
	GetPackageByID(db *gorm.DB, id string) (*models.Package, error)
	CreatePackage(db *gorm.DB, req *dto.PackageRequest) (*models.Package, error)
	UpdatePackage(db *gorm.DB, id string, req *dto.PackageRequest) (*models.Package, error)
	DeletePackage(db *gorm.DB, id string) error
}

type packageService struct {
	packageRepo     repositories.PackageRepository
	destinationRepo repositories.DestinationRepository
	reviewRepo      repositories.ReviewRepository
	aggregator      *RatingAggregator
	pageCache       cache.PageCache
	bus             *events.Bus
}

func NewPackageService(
	packageRepo repositories.PackageRepository,
	destinationRepo repositories.DestinationRepository,
	reviewRepo repositories.ReviewRepository,
	aggregator *RatingAggregator,
	pageCache cache.PageCache,
	bus *events.Bus,
) PackageService {
	return &packageService{
		packageRepo:     packageRepo,
		destinationRepo: destinationRepo,
		reviewRepo:      reviewRepo,
		aggregator:      aggregator,
		pageCache:       pageCache,
		bus:             bus,
	}
}

// ListPackages returns ACTIVE packages for the public site. The dashboard
// passes includeAllStatuses and may then filter by status itself.
func (s *packageService) ListPackages(db *gorm.DB, query *dto.PackageListQuery, includeAllStatuses bool) (*dto.PackageListResponse, error) {
	page, limit := query.Normalize()

	filter := repositories.PackageFilter{
		DestinationSlug: strings.TrimSpace(query.Destination),
		Category:        strings.TrimSpace(query.Category),
		Featured:        query.Featured,
		MinPrice:        query.MinPrice,
		MaxPrice:        query.MaxPrice,
		MinDays:         query.MinDays,
		MaxDays:         query.MaxDays,
		Query:           strings.TrimSpace(query.Q),
		Sort:            query.Sort,
		Page:            page,
		Limit:           limit,
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

	pkgs, total, err := s.packageRepo.FindPackages(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if pkgs == nil {
		pkgs = []models.Package{}
	}

	return &dto.PackageListResponse{
		Packages:   pkgs,
		Total:      total,
		Page:       page,
		TotalPages: dto.TotalPages(total, limit),
	}, nil
}

// GetPackageBySlug serves the public package page through the page cache.
// Cache errors degrade to a database read.
func (s *packageService) GetPackageBySlug(db *gorm.DB, slug string) (*models.Package, error) {
	ctx := contextOf(db)
	key := cache.PackageKey(slug)

	var cached models.Package
	hit, err := s.pageCache.Get(ctx, key, &cached)
	if err != nil {
		logger.CtxWarn(ctx, "page cache read failed", "key", key, "error", err.Error())
	}
	if hit {
		return &cached, nil
	}

	pkg, err := s.packageRepo.FindPackageBySlug(db, slug, true)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := s.pageCache.Set(ctx, key, pkg); err != nil {
		logger.CtxWarn(ctx, "page cache write failed", "key", key, "error", err.Error())
	}
	return pkg, nil
}

func (s *packageService) GetPackageByID(db *gorm.DB, id string) (*models.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return pkg, nil
}

func (s *packageService) CreatePackage(db *gorm.DB, req *dto.PackageRequest) (*models.Package, error) {
	status := models.ListingStatusDraft
	if req.Status != "" {
		status, _ = models.ParseListingStatus(req.Status)
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, fieldError("slug", "Could not derive a slug from the name; provide one")
	}

	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if exists, err := s.packageRepo.SlugExists(tx, slug, ""); err != nil {
		return nil, apperrors.InternalError(err)
	} else if exists {
		return nil, apperrors.ErrSlugTaken
	}

	pkg := &models.Package{Slug: slug, Status: status}
	applyPackageRequest(pkg, req)

	dest, err := s.resolveDestination(tx, pkg)
	if err != nil {
		return nil, err
	}

	if err := s.packageRepo.CreatePackage(tx, pkg); err != nil {
		return nil, mapRepoError(err)
	}

	if err := commit(tx, "create_package"); err != nil {
		return nil, err
	}

	logger.CtxInfo(contextOf(db), "package created", "package_id", pkg.ID, "slug", pkg.Slug)
	s.bus.Publish(contextOf(db), events.PackageChanged{
		PackageID:        pkg.ID,
		Slugs:            []string{pkg.Slug},
		DestinationSlugs: destinationSlugs(dest),
	})
	return pkg, nil
}

func (s *packageService) UpdatePackage(db *gorm.DB, id string, req *dto.PackageRequest) (*models.Package, error) {
	tx, err := begin(db)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	pkg, err := s.packageRepo.FindPackageByID(tx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	oldSlug := pkg.Slug
	oldDestinationID := pkg.DestinationID

	if req.Slug != "" && req.Slug != pkg.Slug {
		if exists, err := s.packageRepo.SlugExists(tx, req.Slug, pkg.ID); err != nil {
			return nil, apperrors.InternalError(err)
		} else if exists {
			return nil, apperrors.ErrSlugTaken
		}
		pkg.Slug = req.Slug
	}
	if req.Status != "" {
		pkg.Status, _ = models.ParseListingStatus(req.Status)
	}

	// a blank destination name is refilled from the (possibly new) destination
	pkg.DestinationName = ""
	applyPackageRequest(pkg, req)

	if _, err := s.resolveDestination(tx, pkg); err != nil {
		return nil, err
	}

	if err := s.packageRepo.UpdatePackage(tx, pkg); err != nil {
		return nil, mapRepoError(err)
	}

	// status or destination changes move reviews in or out of a destination roll-up
	touched, err := s.recomputeDestinations(tx, oldDestinationID, pkg.DestinationID)
	if err != nil {
		return nil, err
	}

	if err := commit(tx, "update_package"); err != nil {
		return nil, err
	}

	logger.CtxInfo(contextOf(db), "package updated", "package_id", pkg.ID, "slug", pkg.Slug)
	s.bus.Publish(contextOf(db), events.PackageChanged{
		PackageID:        pkg.ID,
		Slugs:            []string{oldSlug, pkg.Slug},
		DestinationSlugs: destinationSlugs(touched...),
	})
	return pkg, nil
}

func (s *packageService) DeletePackage(db *gorm.DB, id string) error {
	tx, err := begin(db)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pkg, err := s.packageRepo.FindPackageByID(tx, id)
	if err != nil {
		return mapRepoError(err)
	}

	if err := s.reviewRepo.DeleteReviewsByPackage(tx, pkg.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.packageRepo.DeletePackage(tx, pkg.ID); err != nil {
		return mapRepoError(err)
	}

	touched, err := s.recomputeDestinations(tx, pkg.DestinationID)
	if err != nil {
		return err
	}

	if err := commit(tx, "delete_package"); err != nil {
		return err
	}

	logger.CtxInfo(contextOf(db), "package deleted", "package_id", pkg.ID, "slug", pkg.Slug)
	s.bus.Publish(contextOf(db), events.PackageChanged{
		PackageID:        pkg.ID,
		Slugs:            []string{pkg.Slug},
		DestinationSlugs: destinationSlugs(touched...),
	})
	return nil
}

// resolveDestination checks pkg.DestinationID and fills display fields left
// blank from the destination.
func (s *packageService) resolveDestination(tx *gorm.DB, pkg *models.Package) (*models.Destination, error) {
	if pkg.DestinationID == nil {
		return nil, nil
	}

	dest, err := s.destinationRepo.FindDestinationByID(tx, *pkg.DestinationID)
	if err != nil {
		if errors.Is(err, repositories.ErrDestinationNotFound) {
			return nil, fieldError("destinationId", "Destination does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	if pkg.DestinationName == "" {
		pkg.DestinationName = dest.Name
	}
	if pkg.Location == "" {
		pkg.Location = dest.Location
	}
	if pkg.Country == "" {
		pkg.Country = dest.Country
	}
	return dest, nil
}

func (s *packageService) recomputeDestinations(tx *gorm.DB, ids ...*string) ([]*models.Destination, error) {
	seen := make(map[string]bool, len(ids))
	var out []*models.Destination
	for _, id := range ids {
		if id == nil || *id == "" || seen[*id] {
			continue
		}
		seen[*id] = true

		dest, err := s.aggregator.RecomputeDestination(tx, *id)
		if err != nil {
			if errors.Is(err, repositories.ErrDestinationNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}
		out = append(out, dest)
	}
	return out, nil
}

func applyPackageRequest(pkg *models.Package, req *dto.PackageRequest) {
	pkg.Name = strings.TrimSpace(req.Name)
	pkg.DestinationID = optional(req.DestinationID)
	if name := strings.TrimSpace(req.DestinationName); name != "" {
		pkg.DestinationName = name
	}
	pkg.Location = strings.TrimSpace(req.Location)
	pkg.Country = strings.TrimSpace(req.Country)
	pkg.Price = req.Price
	pkg.OriginalPrice = req.OriginalPrice
	pkg.Duration = strings.TrimSpace(req.Duration)
	pkg.DurationDays = req.DurationDays
	pkg.Image = req.Image
	pkg.Description = req.Description
	pkg.Category = strings.TrimSpace(req.Category)
	pkg.Highlights = stringList(req.Highlights)
	pkg.Inclusions = stringList(req.Inclusions)
	pkg.Exclusions = stringList(req.Exclusions)
	pkg.Itinerary = datatypes.JSONSlice[models.ItineraryDay](append([]models.ItineraryDay{}, req.Itinerary...))
	pkg.Featured = req.Featured
}

func stringList(in []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func destinationSlugs(dests ...*models.Destination) []string {
	var slugs []string
	for _, d := range dests {
		if d != nil {
			slugs = append(slugs, d.Slug)
		}
	}
	return slugs
}
