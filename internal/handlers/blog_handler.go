package handlers

import (
	"net/http"

	"travel_backend/internal/auth"
	"travel_backend/internal/middleware"
	"travel_backend/internal/services"
	"travel_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/blog")
	{
		public.GET("", h.ListPosts)
		public.GET("/:slug", h.ReadPost)
	}

	admin := r.Group("/admin/blog")
	admin.Use(authn.AuthMiddleware(), middleware.RequirePermission(auth.PermBlogWrite))
	{
		admin.GET("", h.AdminListPosts)
		admin.GET("/:id", h.AdminGetPost)
		admin.POST("", h.CreatePost)
		admin.PUT("/:id", h.UpdatePost)
		admin.DELETE("/:id", h.DeletePost)
	}
}

// ListPosts godoc
// @Summary List published posts, newest first
// @Tags blog
// @Produce json
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param q query string false "Text search"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.PostListResponse
// @Router /blog [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	h.list(c, false)
}

// AdminListPosts godoc
// @Summary List posts including drafts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "DRAFT or PUBLISHED"
// @Success 200 {object} dto.PostListResponse
// @Router /admin/blog [get]
func (h *BlogHandler) AdminListPosts(c *gin.Context) {
	h.list(c, true)
}

func (h *BlogHandler) list(c *gin.Context, includeDrafts bool) {
	var query dto.PostListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.blogService.ListPosts(h.GetDB(c), &query, includeDrafts)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReadPost godoc
// @Summary Read a published post
// @Description Counts one view per request.
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /blog/{slug} [get]
func (h *BlogHandler) ReadPost(c *gin.Context) {
	post, err := h.blogService.ReadPost(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{Post: post})
}

// AdminGetPost godoc
// @Summary Get a post by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/blog/{id} [get]
func (h *BlogHandler) AdminGetPost(c *gin.Context) {
	post, err := h.blogService.GetPostByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{Post: post})
}

// CreatePost godoc
// @Summary Create a post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body dto.PostRequest true "Post"
// @Success 201 {object} dto.PostEnvelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/blog [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req dto.PostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.CreatePost(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PostEnvelope{Post: post})
}

// UpdatePost godoc
// @Summary Update a post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body dto.PostRequest true "Post"
// @Success 200 {object} dto.PostEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/blog/{id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req dto.PostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.UpdatePost(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostEnvelope{Post: post})
}

// DeletePost godoc
// @Summary Delete a post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/blog/{id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.blogService.DeletePost(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted"})
}
