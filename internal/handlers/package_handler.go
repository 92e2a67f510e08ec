package handlers

import (
	"net/http"

	"travel_backend/internal/auth"
	"travel_backend/internal/middleware"
	"travel_backend/internal/services"
	"travel_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	*BaseHandler
	packageService services.PackageService
}

func NewPackageHandler(base *BaseHandler, packageService services.PackageService) *PackageHandler {
	return &PackageHandler{
		BaseHandler:    base,
		packageService: packageService,
	}
}

func (h *PackageHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/packages")
	{
		public.GET("", h.ListPackages)
		public.GET("/:slug", h.GetPackage)
	}

	admin := r.Group("/admin/packages")
	admin.Use(authn.AuthMiddleware(), middleware.RequirePermission(auth.PermCatalogueWrite))
	{
		admin.GET("", h.AdminListPackages)
		admin.GET("/:id", h.AdminGetPackage)
		admin.POST("", h.CreatePackage)
		admin.PUT("/:id", h.UpdatePackage)
		admin.DELETE("/:id", h.DeletePackage)
	}
}

// ListPackages godoc
// @Summary List active packages
// @Tags packages
// @Produce json
// @Param destination query string false "Destination slug or name"
// @Param region query string false "INDIA or WORLD"
// @Param category query string false "Category"
// @Param featured query bool false "Featured only"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minDays query int false "Minimum duration in days"
// @Param maxDays query int false "Maximum duration in days"
// @Param q query string false "Text search"
// @Param sort query string false "featured, price_asc, price_desc, rating or newest"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.PackageListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	h.list(c, false)
}

// AdminListPackages godoc
// @Summary List packages in any status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE, INACTIVE or DRAFT"
// @Success 200 {object} dto.PackageListResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /admin/packages [get]
func (h *PackageHandler) AdminListPackages(c *gin.Context) {
	h.list(c, true)
}

func (h *PackageHandler) list(c *gin.Context, includeAllStatuses bool) {
	var query dto.PackageListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.packageService.ListPackages(h.GetDB(c), &query, includeAllStatuses)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPackage godoc
// @Summary Package detail page
// @Tags packages
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} dto.PackageEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /packages/{slug} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetPackageBySlug(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PackageEnvelope{Package: pkg})
}

// AdminGetPackage godoc
// @Summary Get a package by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageEnvelope
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/packages/{id} [get]
func (h *PackageHandler) AdminGetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetPackageByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PackageEnvelope{Package: pkg})
}

// CreatePackage godoc
// @Summary Create a package
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param package body dto.PackageRequest true "Package"
// @Success 201 {object} dto.PackageEnvelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Slug already in use"
// @Router /admin/packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req dto.PackageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pkg, err := h.packageService.CreatePackage(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PackageEnvelope{Package: pkg})
}

// UpdatePackage godoc
// @Summary Update a package
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param package body dto.PackageRequest true "Package"
// @Success 200 {object} dto.PackageEnvelope
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var req dto.PackageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pkg, err := h.packageService.UpdatePackage(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PackageEnvelope{Package: pkg})
}

// DeletePackage godoc
// @Summary Delete a package and its reviews
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.packageService.DeletePackage(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Package deleted"})
}
