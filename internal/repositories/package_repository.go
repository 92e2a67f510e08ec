package repositories

import (
	"errors"

	"travel_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageRepository interface {
	CreatePackage(db *gorm.DB, pkg *models.Package) error
	FindPackageByID(db *gorm.DB, id string) (*models.Package, error)
	FindPackageBySlug(db *gorm.DB, slug string, activeOnly bool) (*models.Package, error)
	FindPackages(db *gorm.DB, filter PackageFilter) ([]models.Package, int64, error)
	FindActiveByDestination(db *gorm.DB, destinationID string) ([]models.Package, error)
	SearchPackages(db *gorm.DB, query string, limit int) ([]models.Package, error)
	UpdatePackage(db *gorm.DB, pkg *models.Package) error
	UpdateAggregate(db *gorm.DB, id string, rating float64, reviews int64) error
	DeletePackage(db *gorm.DB, id string) error
	SlugExists(db *gorm.DB, slug, excludeID string) (bool, error)
	CountByDestination(db *gorm.DB, destinationID string) (int64, error)
	CountByStatus(db *gorm.DB) (map[string]int64, error)
}

// PackageFilter drives the catalogue listing. Nil pointers are "no filter".
type PackageFilter struct {
	Statuses        []models.ListingStatus
	DestinationSlug string
	Region          models.Region
	Category        string
	Featured        *bool
	MinPrice        *float64
	MaxPrice        *float64
	MinDays         *int
	MaxDays         *int
	Query           string
	Sort            string
	Page            int
	Limit           int
}

const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

var packageSorts = map[string][]string{
	SortFeatured:  {"packages.featured DESC", "packages.rating DESC", "packages.created_at DESC"},
	SortPriceAsc:  {"packages.price ASC"},
	SortPriceDesc: {"packages.price DESC"},
	SortRating:    {"packages.rating DESC", "packages.reviews DESC"},
	SortNewest:    {"packages.created_at DESC"},
}

type PackageRepositoryImpl struct{}

func NewPackageRepository() PackageRepository {
	return &PackageRepositoryImpl{}
}

func (r *PackageRepositoryImpl) CreatePackage(db *gorm.DB, pkg *models.Package) error {
	if err := db.Omit(clause.Associations).Create(pkg).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *PackageRepositoryImpl) FindPackageByID(db *gorm.DB, id string) (*models.Package, error) {
	var pkg models.Package
	if err := db.First(&pkg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) FindPackageBySlug(db *gorm.DB, slug string, activeOnly bool) (*models.Package, error) {
	q := db.Where("slug = ?", slug)
	if activeOnly {
		q = q.Where("status = ?", models.ListingStatusActive)
	}

	var pkg models.Package
	if err := q.First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) FindPackages(db *gorm.DB, f PackageFilter) ([]models.Package, int64, error) {
	base := func() *gorm.DB {
		q := db.Model(&models.Package{})
		if f.DestinationSlug != "" || f.Region != "" {
			q = q.Joins("JOIN destinations ON destinations.id = packages.destination_id")
			if f.DestinationSlug != "" {
				q = q.Where("destinations.slug = ?", f.DestinationSlug)
			}
			if f.Region != "" {
				q = q.Where("destinations.region = ?", f.Region)
			}
		}
		if len(f.Statuses) > 0 {
			q = q.Where("packages.status IN ?", f.Statuses)
		}
		if f.Category != "" {
			q = q.Where("packages.category = ?", f.Category)
		}
		if f.Featured != nil {
			q = q.Where("packages.featured = ?", *f.Featured)
		}
		if f.MinPrice != nil {
			q = q.Where("packages.price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("packages.price <= ?", *f.MaxPrice)
		}
		if f.MinDays != nil {
			q = q.Where("packages.duration_days >= ?", *f.MinDays)
		}
		if f.MaxDays != nil {
			q = q.Where("packages.duration_days <= ?", *f.MaxDays)
		}
		return whereContains(q, f.Query,
			"packages.name", "packages.destination_name", "packages.location", "packages.country")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := packageSorts[f.Sort]
	if !ok {
		order = packageSorts[SortFeatured]
	}

	q := paginate(base().Select("packages.*"), f.Page, f.Limit)
	for _, o := range order {
		q = q.Order(o)
	}

	var pkgs []models.Package
	err := q.Order("packages.id ASC").Find(&pkgs).Error
	return pkgs, total, err
}

func (r *PackageRepositoryImpl) FindActiveByDestination(db *gorm.DB, destinationID string) ([]models.Package, error) {
	var pkgs []models.Package
	err := db.Where("destination_id = ? AND status = ?", destinationID, models.ListingStatusActive).
		Order("featured DESC").Order("rating DESC").Order("name ASC").
		Find(&pkgs).Error
	return pkgs, err
}

// SearchPackages matches ACTIVE packages by name, destination, location or country.
func (r *PackageRepositoryImpl) SearchPackages(db *gorm.DB, query string, limit int) ([]models.Package, error) {
	q := db.Model(&models.Package{}).Where("status = ?", models.ListingStatusActive)
	q = whereContains(q, query, "name", "destination_name", "location", "country")

	var pkgs []models.Package
	err := q.Order("featured DESC").Order("rating DESC").Order("name ASC").
		Limit(limit).
		Find(&pkgs).Error
	return pkgs, err
}

// UpdatePackage saves editable columns. Rating and reviews belong to the
// aggregator and are never written here.
func (r *PackageRepositoryImpl) UpdatePackage(db *gorm.DB, pkg *models.Package) error {
	err := db.Model(pkg).
		Select("*").
		Omit(clause.Associations, "id", "created_at", "rating", "reviews").
		Updates(pkg).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *PackageRepositoryImpl) UpdateAggregate(db *gorm.DB, id string, rating float64, reviews int64) error {
	return db.Model(&models.Package{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"rating": rating, "reviews": reviews}).Error
}

func (r *PackageRepositoryImpl) DeletePackage(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Package{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepositoryImpl) SlugExists(db *gorm.DB, slug, excludeID string) (bool, error) {
	q := db.Model(&models.Package{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *PackageRepositoryImpl) CountByDestination(db *gorm.DB, destinationID string) (int64, error) {
	var count int64
	err := db.Model(&models.Package{}).Where("destination_id = ?", destinationID).Count(&count).Error
	return count, err
}

func (r *PackageRepositoryImpl) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	return countByStatus(db, &models.Package{})
}
