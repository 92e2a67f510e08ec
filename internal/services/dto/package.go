package dto

import "travel_backend/internal/models"

// PackageRequest is the admin create/update body. Rating and review count are
// derived and deliberately absent.
type PackageRequest struct {
	Name            string                `json:"name" validate:"required,max=200"`
	Slug            string                `json:"slug" validate:"omitempty,slug"`
	DestinationID   *string               `json:"destinationId,omitempty" validate:"omitempty,max=36"`
	DestinationName string                `json:"destination" validate:"omitempty,max=200"`
	Location        string                `json:"location" validate:"omitempty,max=200"`
	Country         string                `json:"country" validate:"omitempty,max=120"`
	Price           float64               `json:"price" validate:"gte=0"`
	OriginalPrice   *float64              `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Duration        string                `json:"duration" validate:"omitempty,max=60"`
	DurationDays    int                   `json:"durationDays" validate:"gte=0,max=365"`
	Image           string                `json:"image" validate:"omitempty,url"`
	Description     string                `json:"description"`
	Category        string                `json:"category" validate:"omitempty,max=60"`
	Highlights      []string              `json:"highlights" validate:"omitempty,dive,max=300"`
	Inclusions      []string              `json:"inclusions" validate:"omitempty,dive,max=300"`
	Exclusions      []string              `json:"exclusions" validate:"omitempty,dive,max=300"`
	Itinerary       []models.ItineraryDay `json:"itinerary"`
	Status          string                `json:"status" validate:"omitempty,is-listing-status"`
	Featured        bool                  `json:"featured"`
}

type PackageListQuery struct {
	PageQuery
	Destination string   `form:"destination"`
	Region      string   `form:"region" validate:"omitempty,is-region"`
	Category    string   `form:"category"`
	Featured    *bool    `form:"featured"`
	MinPrice    *float64 `form:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice    *float64 `form:"maxPrice" validate:"omitempty,gte=0"`
	MinDays     *int     `form:"minDays" validate:"omitempty,gte=0"`
	MaxDays     *int     `form:"maxDays" validate:"omitempty,gte=0"`
	Q           string   `form:"q"`
	Sort        string   `form:"sort" validate:"omitempty,oneof=featured price_asc price_desc rating newest"`
	Status      string   `form:"status" validate:"omitempty,is-listing-status"`
}

type PackageListResponse struct {
	Packages   []models.Package `json:"packages"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

type PackageEnvelope struct {
	Package *models.Package `json:"package"`
}
