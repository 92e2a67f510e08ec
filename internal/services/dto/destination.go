package dto

import "travel_backend/internal/models"

type DestinationRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"omitempty,slug"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Country     string `json:"country" validate:"omitempty,max=120"`
	Region      string `json:"region" validate:"required,is-region"`
	Category    string `json:"category" validate:"omitempty,max=60"`
	Status      string `json:"status" validate:"omitempty,is-listing-status"`
	Image       string `json:"image" validate:"omitempty,url"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}

type DestinationListQuery struct {
	PageQuery
	Region   string `form:"region" validate:"omitempty,is-region"`
	Category string `form:"category"`
	Featured *bool  `form:"featured"`
	Q        string `form:"q"`
	Status   string `form:"status" validate:"omitempty,is-listing-status"`
}

type DestinationListResponse struct {
	Destinations []models.Destination `json:"destinations"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	TotalPages   int                  `json:"totalPages"`
}

type DestinationEnvelope struct {
	Destination *models.Destination `json:"destination"`
}
