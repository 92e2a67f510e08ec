package routes

import (
	"travel_backend/internal/handlers"
	"travel_backend/internal/logger"
	"travel_backend/internal/middleware"
	"travel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the API under /api/v1. Swagger UI is only served
// outside production.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authn *middleware.Authenticator,
	enableSwagger bool,
) {
	ginRouter.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.NewNotFoundError("routes", "Route not found"))
	})
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)

	api := ginRouter.Group("/api/v1")
	{
		api.GET("/health", appHandlers.HealthHandler.Health)

		appHandlers.AuthHandler.RegisterRoutes(api, authn)
		appHandlers.ReviewHandler.RegisterRoutes(api, authn)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.PackageHandler.RegisterRoutes(api, authn)
		appHandlers.DestinationHandler.RegisterRoutes(api, authn)
		appHandlers.BlogHandler.RegisterRoutes(api, authn)
		appHandlers.EnquiryHandler.RegisterRoutes(api, authn)
		appHandlers.DashboardHandler.RegisterRoutes(api, authn)
	}

	if enableSwagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("swagger UI registered", "path", "/swagger/index.html")
	}
}
