package services

import (
	"strings"
	"time"

	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BlogService interface {
	ListPosts(db *gorm.DB, query *dto.PostListQuery, includeDrafts bool) (*dto.PostListResponse, error)
	ReadPost(db *gorm.DB, slug string) (*models.BlogPost, error)
	GetPostByID(db *gorm.DB, id string) (*models.BlogPost, error)
	CreatePost(db *gorm.DB, req *dto.PostRequest) (*models.BlogPost, error)
	UpdatePost(db *gorm.DB, id string, req *dto.PostRequest) (*models.BlogPost, error)
	DeletePost(db *gorm.DB, id string) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
	now      func() time.Time
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo, now: time.Now}
}

func (s *blogService) ListPosts(db *gorm.DB, query *dto.PostListQuery, includeDrafts bool) (*dto.PostListResponse, error) {
	page, limit := query.Normalize()

	filter := repositories.PostFilter{
		Category: strings.TrimSpace(query.Category),
		Tag:      strings.TrimSpace(query.Tag),
		Query:    strings.TrimSpace(query.Q),
		Page:     page,
		Limit:    limit,
	}
	switch {
	case !includeDrafts:
		filter.Status = models.PostStatusPublished
	case query.Status != "":
		filter.Status, _ = models.ParsePostStatus(query.Status)
	}

	posts, total, err := s.blogRepo.FindPosts(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}

	return &dto.PostListResponse{
		Posts:      posts,
		Total:      total,
		Page:       page,
		TotalPages: dto.TotalPages(total, limit),
	}, nil
}

// ReadPost returns a PUBLISHED post and counts the view atomically.
func (s *blogService) ReadPost(db *gorm.DB, slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindPostBySlug(db, slug, true)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if err := s.blogRepo.IncrementViews(db, post.ID); err != nil {
		// a lost view is not worth failing the page for
		logger.CtxWarn(contextOf(db), "failed to count post view", "post_id", post.ID, "error", err.Error())
		return post, nil
	}
	post.Views++
	return post, nil
}

func (s *blogService) GetPostByID(db *gorm.DB, id string) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindPostByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return post, nil
}

func (s *blogService) CreatePost(db *gorm.DB, req *dto.PostRequest) (*models.BlogPost, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, fieldError("slug", "Could not derive a slug from the title; provide one")
	}

	post := &models.BlogPost{Slug: slug, Status: models.PostStatusDraft}
	if req.Status != "" {
		post.Status, _ = models.ParsePostStatus(req.Status)
	}
	applyPostRequest(post, req)
	s.stampPublished(post)

	exists, err := s.blogRepo.SlugExists(db, slug, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrSlugTaken
	}

	if err := s.blogRepo.CreatePost(db, post); err != nil {
		return nil, mapRepoError(err)
	}

	logger.CtxInfo(contextOf(db), "post created", "post_id", post.ID, "slug", post.Slug)
	return post, nil
}

func (s *blogService) UpdatePost(db *gorm.DB, id string, req *dto.PostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindPostByID(db, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if req.Slug != "" && req.Slug != post.Slug {
		exists, err := s.blogRepo.SlugExists(db, req.Slug, post.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			return nil, apperrors.ErrSlugTaken
		}
		post.Slug = req.Slug
	}
	if req.Status != "" {
		post.Status, _ = models.ParsePostStatus(req.Status)
	}
	applyPostRequest(post, req)
	s.stampPublished(post)

	if err := s.blogRepo.UpdatePost(db, post); err != nil {
		return nil, mapRepoError(err)
	}

	logger.CtxInfo(contextOf(db), "post updated", "post_id", post.ID, "slug", post.Slug)
	return post, nil
}

func (s *blogService) DeletePost(db *gorm.DB, id string) error {
	if err := s.blogRepo.DeletePost(db, id); err != nil {
		return mapRepoError(err)
	}
	logger.CtxInfo(contextOf(db), "post deleted", "post_id", id)
	return nil
}

// stampPublished sets PublishedAt the first time a post goes out. Unpublishing
// keeps the original date so republishing does not reorder the archive.
func (s *blogService) stampPublished(post *models.BlogPost) {
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := s.now().UTC()
		post.PublishedAt = &now
	}
}

func applyPostRequest(post *models.BlogPost, req *dto.PostRequest) {
	post.Title = strings.TrimSpace(req.Title)
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.CoverImage = req.CoverImage
	post.Author = strings.TrimSpace(req.Author)
	post.Category = strings.TrimSpace(req.Category)
	post.Tags = stringList(req.Tags)
}
