package dto

import "travel_backend/internal/models"

type PostRequest struct {
	Title      string   `json:"title" validate:"required,max=250"`
	Slug       string   `json:"slug" validate:"omitempty,slug"`
	Excerpt    string   `json:"excerpt" validate:"omitempty,max=500"`
	Content    string   `json:"content" validate:"required"`
	CoverImage string   `json:"coverImage" validate:"omitempty,url"`
	Author     string   `json:"author" validate:"omitempty,max=120"`
	Category   string   `json:"category" validate:"omitempty,max=60"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,required,max=40"`
	Status     string   `json:"status" validate:"omitempty,is-post-status"`
}

type PostListQuery struct {
	PageQuery
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Q        string `form:"q"`
	Status   string `form:"status" validate:"omitempty,is-post-status"`
}

type PostListResponse struct {
	Posts      []models.BlogPost `json:"posts"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

type PostEnvelope struct {
	Post *models.BlogPost `json:"post"`
}
