package dto

import "travel_backend/internal/models"

type CreateEnquiryRequest struct {
	Type       string  `json:"type" validate:"omitempty,is-enquiry-type"`
	PackageID  *string `json:"packageId,omitempty" validate:"omitempty,max=36"`
	Name       string  `json:"name" validate:"required,max=120"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Phone      string  `json:"phone" validate:"omitempty,max=40"`
	TravelDate string  `json:"travelDate" validate:"omitempty,datetime=2006-01-02"`
	Travelers  int     `json:"travelers" validate:"omitempty,min=1,max=100"`
	Message    string  `json:"message" validate:"omitempty,max=5000"`
}

type UpdateEnquiryRequest struct {
	Status string `json:"status" validate:"required,is-enquiry-status"`
}

type EnquiryListQuery struct {
	PageQuery
	Status string `form:"status" validate:"omitempty,is-enquiry-status"`
	Type   string `form:"type" validate:"omitempty,is-enquiry-type"`
}

type CreateEnquiryResponse struct {
	Enquiry *models.Enquiry `json:"enquiry"`
	Message string          `json:"message"`
}

type EnquiryListResponse struct {
	Enquiries  []models.Enquiry `json:"enquiries"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

type EnquiryEnvelope struct {
	Enquiry *models.Enquiry `json:"enquiry"`
}
