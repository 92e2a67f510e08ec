package repositories

import (
	"errors"

	"travel_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

type EnquiryRepository interface {
	CreateEnquiry(db *gorm.DB, enquiry *models.Enquiry) error
	FindEnquiryByID(db *gorm.DB, id string) (*models.Enquiry, error)
	FindEnquiries(db *gorm.DB, filter EnquiryFilter) ([]models.Enquiry, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.EnquiryStatus) error
	CountByStatus(db *gorm.DB) (map[string]int64, error)
}

type EnquiryFilter struct {
	Status models.EnquiryStatus
	Type   models.EnquiryType
	Page   int
	Limit  int
}

type EnquiryRepositoryImpl struct{}

func NewEnquiryRepository() EnquiryRepository {
	return &EnquiryRepositoryImpl{}
}

func (r *EnquiryRepositoryImpl) CreateEnquiry(db *gorm.DB, enquiry *models.Enquiry) error {
	return db.Omit("Package").Create(enquiry).Error
}

func (r *EnquiryRepositoryImpl) FindEnquiryByID(db *gorm.DB, id string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := db.Preload("Package").First(&enquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepositoryImpl) FindEnquiries(db *gorm.DB, f EnquiryFilter) ([]models.Enquiry, int64, error) {
	base := func() *gorm.DB {
		q := db.Model(&models.Enquiry{})
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.Type != "" {
			q = q.Where("type = ?", f.Type)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enquiries []models.Enquiry
	err := paginate(base(), f.Page, f.Limit).
		Preload("Package").
		Order("created_at DESC").
		Find(&enquiries).Error
	return enquiries, total, err
}

func (r *EnquiryRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.EnquiryStatus) error {
	return db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status).Error
}

func (r *EnquiryRepositoryImpl) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	return countByStatus(db, &models.Enquiry{})
}
