package handlers

import (
	"net/http"

	"travel_backend/internal/auth"
	"travel_backend/internal/middleware"
	"travel_backend/internal/services"
	"travel_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	*BaseHandler
	destinationService services.DestinationService
}

func NewDestinationHandler(base *BaseHandler, destinationService services.DestinationService) *DestinationHandler {
	return &DestinationHandler{
		BaseHandler:        base,
		destinationService: destinationService,
	}
}

func (h *DestinationHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/destinations")
	{
		public.GET("", h.ListDestinations)
		public.GET("/:slug", h.GetDestination)
	}

	admin := r.Group("/admin/destinations")
	admin.Use(authn.AuthMiddleware(), middleware.RequirePermission(auth.PermCatalogueWrite))
	{
		admin.GET("", h.AdminListDestinations)
		admin.GET("/:id", h.AdminGetDestination)
		admin.POST("", h.CreateDestination)
		admin.PUT("/:id", h.UpdateDestination)
		admin.DELETE("/:id", h.DeleteDestination)
	}
}

// ListDestinations godoc
// @Summary List active destinations
// @Tags destinations
// @Produce json
// @Param region query string false "INDIA or WORLD"
// @Param category query string false "Category"
// @Param featured query bool false "Featured only"
// @Param q query string false "Text search"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.DestinationListResponse
// @Router /destinations [get]
func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	h.list(c, false)
}

// AdminListDestinations godoc
// @Summary List destinations in any status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE, INACTIVE or DRAFT"
// @Success 200 {object} dto.DestinationListResponse
// @Router /admin/destinations [get]
func (h *DestinationHandler) AdminListDestinations(c *gin.Context) {
	h.list(c, true)
}

func (h *DestinationHandler) list(c *gin.Context, includeAllStatuses bool) {
	var query dto.DestinationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.destinationService.ListDestinations(h.GetDB(c), &query, includeAllStatuses)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDestination godoc
// @Summary Destination page with its active packages
// @Tags destinations
// @Produce json
// @Param slug path string true "Destination slug"
// @Success 200 {object} dto.DestinationEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /destinations/{slug} [get]
func (h *DestinationHandler) GetDestination(c *gin.Context) {
	dest, err := h.destinationService.GetDestinationBySlug(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DestinationEnvelope{Destination: dest})
}

// AdminGetDestination godoc
// @Summary Get a destination by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} dto.DestinationEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/destinations/{id} [get]
func (h *DestinationHandler) AdminGetDestination(c *gin.Context) {
	dest, err := h.destinationService.GetDestinationByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DestinationEnvelope{Destination: dest})
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param destination body dto.DestinationRequest true "Destination"
// @Success 201 {object} dto.DestinationEnvelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/destinations [post]
func (h *DestinationHandler) CreateDestination(c *gin.Context) {
	var req dto.DestinationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	dest, err := h.destinationService.CreateDestination(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DestinationEnvelope{Destination: dest})
}

// UpdateDestination godoc
// @Summary Update a destination
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param destination body dto.DestinationRequest true "Destination"
// @Success 200 {object} dto.DestinationEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/destinations/{id} [put]
func (h *DestinationHandler) UpdateDestination(c *gin.Context) {
	var req dto.DestinationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	dest, err := h.destinationService.UpdateDestination(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DestinationEnvelope{Destination: dest})
}

// DeleteDestination godoc
// @Summary Delete a destination without packages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Packages still attached"
// @Router /admin/destinations/{id} [delete]
func (h *DestinationHandler) DeleteDestination(c *gin.Context) {
	if err := h.destinationService.DeleteDestination(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Destination deleted"})
}
