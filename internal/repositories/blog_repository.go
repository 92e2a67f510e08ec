package repositories

import (
	"errors"

	"travel_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type BlogRepository interface {
	CreatePost(db *gorm.DB, post *models.BlogPost) error
	FindPostByID(db *gorm.DB, id string) (*models.BlogPost, error)
	FindPostBySlug(db *gorm.DB, slug string, publishedOnly bool) (*models.BlogPost, error)
	FindPosts(db *gorm.DB, filter PostFilter) ([]models.BlogPost, int64, error)
	UpdatePost(db *gorm.DB, post *models.BlogPost) error
	IncrementViews(db *gorm.DB, id string) error
	DeletePost(db *gorm.DB, id string) error
	SlugExists(db *gorm.DB, slug, excludeID string) (bool, error)
	CountByStatus(db *gorm.DB) (map[string]int64, error)
}

type PostFilter struct {
	Status   models.PostStatus
	Category string
	Tag      string
	Query    string
	Page     int
	Limit    int
}

type BlogRepositoryImpl struct{}

func NewBlogRepository() BlogRepository {
	return &BlogRepositoryImpl{}
}

func (r *BlogRepositoryImpl) CreatePost(db *gorm.DB, post *models.BlogPost) error {
	if err := db.Create(post).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *BlogRepositoryImpl) FindPostByID(db *gorm.DB, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) FindPostBySlug(db *gorm.DB, slug string, publishedOnly bool) (*models.BlogPost, error) {
	q := db.Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("status = ?", models.PostStatusPublished)
	}

	var post models.BlogPost
	if err := q.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) FindPosts(db *gorm.DB, f PostFilter) ([]models.BlogPost, int64, error) {
	base := func() *gorm.DB {
		q := db.Model(&models.BlogPost{})
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		if f.Tag != "" {
			// tags is a JSON array; match the quoted element inside its text form
			q = whereContains(q, `"`+f.Tag+`"`, jsonAsText(db, "tags"))
		}
		return whereContains(q, f.Query, "title", "excerpt")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.BlogPost
	err := paginate(base(), f.Page, f.Limit).
		Order("published_at DESC").Order("created_at DESC").
		Find(&posts).Error
	return posts, total, err
}

func (r *BlogRepositoryImpl) UpdatePost(db *gorm.DB, post *models.BlogPost) error {
	err := db.Model(post).
		Select("*").
		Omit("id", "created_at", "views").
		Updates(post).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *BlogRepositoryImpl) IncrementViews(db *gorm.DB, id string) error {
	return db.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *BlogRepositoryImpl) DeletePost(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) SlugExists(db *gorm.DB, slug, excludeID string) (bool, error) {
	q := db.Model(&models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *BlogRepositoryImpl) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	return countByStatus(db, &models.BlogPost{})
}
