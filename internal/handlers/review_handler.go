package handlers

import (
	"net/http"
	"strings"

	"travel_backend/internal/models"
	"travel_backend/internal/middleware"
	"travel_backend/internal/services"
	"travel_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	requireAuth := authn.AuthMiddleware()
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	reviews := r.Group("/reviews")
	{
		reviews.GET("", authn.OptionalAuthMiddleware(), h.ListReviews)
		reviews.POST("", h.CreateReview)
		reviews.PATCH("", h.ApplyAction)
		reviews.PUT("", requireAuth, adminOnly, h.ModerateReview)
		reviews.DELETE("", requireAuth, adminOnly, h.DeleteReview)
	}

	admin := r.Group("/admin")
	admin.Use(requireAuth, adminOnly)
	{
		admin.GET("/reviews/stats", h.GetStats)
		admin.POST("/packages/:id/recompute-rating", h.RecomputeRating)
	}
}

// ListReviews godoc
// @Summary List reviews
// @Description Public callers only see APPROVED reviews. Moderators may pass includeAll=true and a status filter.
// @Tags reviews
// @Produce json
// @Param packageId query string false "Package ID"
// @Param status query string false "PENDING, APPROVED or REJECTED (moderators only)"
// @Param includeAll query bool false "Include unapproved reviews (moderators only)"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ReviewListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var query dto.ReviewListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.reviewService.ListReviews(h.GetDB(c), &query, middleware.CanModerate(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateReview godoc
// @Summary Submit a review
// @Description Stores the review as PENDING. The package must exist and be ACTIVE.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.CreateReviewResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.CreateReview(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ModerateReview godoc
// @Summary Moderate a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dto.ModerateReviewRequest true "New status"
// @Success 200 {object} dto.ReviewEnvelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /reviews [put]
func (h *ReviewHandler) ModerateReview(c *gin.Context) {
	var req dto.ModerateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.ModerateReview(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReviewEnvelope{Review: review})
}

// ApplyAction godoc
// @Summary Vote a review helpful
// @Tags reviews
// @Accept json
// @Produce json
// @Param action body dto.ReviewActionRequest true "Only action=helpful is supported"
// @Success 200 {object} dto.HelpfulResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /reviews [patch]
func (h *ReviewHandler) ApplyAction(c *gin.Context) {
	var req dto.ReviewActionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.ApplyAction(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id query string true "Review ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /reviews [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if !h.RequireParam(c, id, "id") {
		return
	}

	if err := h.reviewService.DeleteReview(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Review deleted"})
}

// GetStats godoc
// @Summary Review counts per status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReviewStatsResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /admin/reviews/stats [get]
func (h *ReviewHandler) GetStats(c *gin.Context) {
	stats, err := h.reviewService.GetStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RecomputeRating godoc
// @Summary Recompute a package rating from its approved reviews
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} dto.RatingResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/packages/{id}/recompute-rating [post]
func (h *ReviewHandler) RecomputeRating(c *gin.Context) {
	resp, err := h.reviewService.RecomputePackageRating(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
