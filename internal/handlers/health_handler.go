package handlers

import (
	"context"
	"net/http"
	"time"

	"travel_backend/internal/database"
	"travel_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

// Health godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.GetDB(c)); err != nil {
		logger.CtxWithError(ctx, "health check: database unreachable", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
