package repositories

import (
	"errors"

	"travel_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDestinationNotFound = errors.New("destination not found")

type DestinationRepository interface {
	CreateDestination(db *gorm.DB, dest *models.Destination) error
	FindDestinationByID(db *gorm.DB, id string) (*models.Destination, error)
	FindDestinationBySlug(db *gorm.DB, slug string, activeOnly bool) (*models.Destination, error)
	FindDestinations(db *gorm.DB, filter DestinationFilter) ([]models.Destination, int64, error)
	SearchDestinations(db *gorm.DB, query string, limit int) ([]models.Destination, error)
	UpdateDestination(db *gorm.DB, dest *models.Destination) error
	UpdateAggregate(db *gorm.DB, id string, rating float64, reviews int64) error
	DeleteDestination(db *gorm.DB, id string) error
	SlugExists(db *gorm.DB, slug, excludeID string) (bool, error)
	CountAll(db *gorm.DB) (int64, error)
}

type DestinationFilter struct {
	Statuses []models.ListingStatus
	Region   models.Region
	Category string
	Featured *bool
	Query    string
	Page     int
	Limit    int
}

type DestinationRepositoryImpl struct{}

func NewDestinationRepository() DestinationRepository {
	return &DestinationRepositoryImpl{}
}

func (r *DestinationRepositoryImpl) CreateDestination(db *gorm.DB, dest *models.Destination) error {
	if err := db.Omit(clause.Associations).Create(dest).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *DestinationRepositoryImpl) FindDestinationByID(db *gorm.DB, id string) (*models.Destination, error) {
	var dest models.Destination
	if err := db.First(&dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepositoryImpl) FindDestinationBySlug(db *gorm.DB, slug string, activeOnly bool) (*models.Destination, error) {
	q := db.Where("slug = ?", slug)
	if activeOnly {
		q = q.Where("status = ?", models.ListingStatusActive)
	}

	var dest models.Destination
	if err := q.First(&dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepositoryImpl) FindDestinations(db *gorm.DB, f DestinationFilter) ([]models.Destination, int64, error) {
	base := func() *gorm.DB {
		q := db.Model(&models.Destination{})
		if len(f.Statuses) > 0 {
			q = q.Where("status IN ?", f.Statuses)
		}
		if f.Region != "" {
			q = q.Where("region = ?", f.Region)
		}
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		if f.Featured != nil {
			q = q.Where("featured = ?", *f.Featured)
		}
		return whereContains(q, f.Query, "name", "location", "country")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dests []models.Destination
	err := paginate(base(), f.Page, f.Limit).
		Order("featured DESC").Order("rating DESC").Order("name ASC").
		Find(&dests).Error
	return dests, total, err
}

func (r *DestinationRepositoryImpl) SearchDestinations(db *gorm.DB, query string, limit int) ([]models.Destination, error) {
	q := db.Model(&models.Destination{}).Where("status = ?", models.ListingStatusActive)
	q = whereContains(q, query, "name", "location", "country")

	var dests []models.Destination
	err := q.Order("featured DESC").Order("rating DESC").Order("name ASC").
		Limit(limit).
		Find(&dests).Error
	return dests, err
}

func (r *DestinationRepositoryImpl) UpdateDestination(db *gorm.DB, dest *models.Destination) error {
	err := db.Model(dest).
		Select("*").
		Omit(clause.Associations, "id", "created_at", "rating", "reviews").
		Updates(dest).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *DestinationRepositoryImpl) UpdateAggregate(db *gorm.DB, id string, rating float64, reviews int64) error {
	return db.Model(&models.Destination{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"rating": rating, "reviews": reviews}).Error
}

func (r *DestinationRepositoryImpl) DeleteDestination(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Destination{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDestinationNotFound
	}
	return nil
}

func (r *DestinationRepositoryImpl) SlugExists(db *gorm.DB, slug, excludeID string) (bool, error) {
	q := db.Model(&models.Destination{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *DestinationRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Destination{}).Count(&count).Error
	return count, err
}
