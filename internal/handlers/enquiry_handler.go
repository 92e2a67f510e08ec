package handlers

import (
	"net/http"

	"travel_backend/internal/auth"
	"travel_backend/internal/middleware"
	"travel_backend/internal/services"
	"travel_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	*BaseHandler
	enquiryService services.EnquiryService
}

func NewEnquiryHandler(base *BaseHandler, enquiryService services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		BaseHandler:    base,
		enquiryService: enquiryService,
	}
}

func (h *EnquiryHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	r.POST("/enquiries", h.CreateEnquiry)

	admin := r.Group("/admin/enquiries")
	admin.Use(authn.AuthMiddleware(), middleware.RequirePermission(auth.PermEnquiriesManage))
	{
		admin.GET("", h.ListEnquiries)
		admin.GET("/:id", h.GetEnquiry)
		admin.PUT("/:id", h.UpdateEnquiry)
	}
}

// CreateEnquiry godoc
// @Summary Send an enquiry or booking request
// @Tags enquiries
// @Accept json
// @Produce json
// @Param enquiry body dto.CreateEnquiryRequest true "Enquiry"
// @Success 201 {object} dto.CreateEnquiryResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Package not found or not active"
// @Router /enquiries [post]
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.enquiryService.CreateEnquiry(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListEnquiries godoc
// @Summary List enquiries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "NEW, CONTACTED, CONFIRMED or CANCELLED"
// @Param type query string false "ENQUIRY or BOOKING"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.EnquiryListResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /admin/enquiries [get]
func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	var query dto.EnquiryListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.enquiryService.ListEnquiries(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEnquiry godoc
// @Summary Get an enquiry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Success 200 {object} dto.EnquiryEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/enquiries/{id} [get]
func (h *EnquiryHandler) GetEnquiry(c *gin.Context) {
	enquiry, err := h.enquiryService.GetEnquiry(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EnquiryEnvelope{Enquiry: enquiry})
}

// UpdateEnquiry godoc
// @Summary Change an enquiry status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Param status body dto.UpdateEnquiryRequest true "New status"
// @Success 200 {object} dto.EnquiryEnvelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/enquiries/{id} [put]
func (h *EnquiryHandler) UpdateEnquiry(c *gin.Context) {
	var req dto.UpdateEnquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	enquiry, err := h.enquiryService.UpdateEnquiryStatus(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EnquiryEnvelope{Enquiry: enquiry})
}
