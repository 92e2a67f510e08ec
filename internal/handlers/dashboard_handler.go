package handlers

import (
	"net/http"

	"travel_backend/internal/auth"
	"travel_backend/internal/middleware"
	"travel_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	r.GET("/admin/stats", authn.AuthMiddleware(), middleware.RequirePermission(auth.PermDashboardRead), h.Stats)
}

// Stats godoc
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStats
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /admin/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
