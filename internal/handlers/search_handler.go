package handlers

import (
	"net/http"

	"travel_backend/internal/services"
	"travel_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.Search)
}

// Search godoc
// @Summary Site search
// @Description Searches ACTIVE packages (max 6) and destinations (max 4). Queries shorter than 2 characters return no results.
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.searchService.Search(h.GetDB(c), query.Q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
