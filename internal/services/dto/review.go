package dto

import "travel_backend/internal/models"

type CreateReviewRequest struct {
	PackageID string   `json:"packageId" validate:"required,max=36"`
	Name      string   `json:"name" validate:"required,max=120"`
	Email     *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,max=120"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Title     *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Comment   string   `json:"comment" validate:"required,max=5000"`
	Images    []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

type ModerateReviewRequest struct {
	ID       string `json:"id" validate:"required"`
	Status   string `json:"status" validate:"required,is-review-status"`
	Verified *bool  `json:"verified,omitempty"`
}

type ReviewActionRequest struct {
	ID     string `json:"id" validate:"required"`
	Action string `json:"action" validate:"required"`
}

const ReviewActionHelpful = "helpful"

type ReviewListQuery struct {
	PageQuery
	PackageID  string `form:"packageId"`
	Status     string `form:"status"`
	IncludeAll bool   `form:"includeAll"`
}

type CreateReviewResponse struct {
	Review  *models.Review `json:"review"`
	Message string         `json:"message"`
}

type ReviewEnvelope struct {
	Review *models.Review `json:"review"`
}

type HelpfulReview struct {
	ID      string `json:"id"`
	Helpful int    `json:"helpful"`
}

type HelpfulResponse struct {
	Review HelpfulReview `json:"review"`
}

type ReviewListResponse struct {
	Reviews    []models.Review `json:"reviews"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

type ReviewStatsResponse struct {
	Pending       int64   `json:"pending"`
	Approved      int64   `json:"approved"`
	Rejected      int64   `json:"rejected"`
	Total         int64   `json:"total"`
	AverageRating float64 `json:"averageRating"`
}

type RatingResponse struct {
	PackageID string  `json:"packageId"`
	Rating    float64 `json:"rating"`
	Reviews   int64   `json:"reviews"`
}
