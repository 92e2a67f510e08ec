package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"travel_backend/internal/auth"
	"travel_backend/internal/cache"
	"travel_backend/internal/config"
	"travel_backend/internal/database"
	"travel_backend/internal/email"
	"travel_backend/internal/events"
	"travel_backend/internal/handlers"
	"travel_backend/internal/logger"
	"travel_backend/internal/middleware"
	"travel_backend/internal/repositories"
	"travel_backend/internal/routes"
	"travel_backend/internal/services"
	"travel_backend/internal/validator"
	"travel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the external resources the router is built on.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	PageCache cache.PageCache
	Mailer    email.Provider
}

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(db)
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	if err := database.SeedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	pageCache, redisClient := cache.NewPageCache(context.Background(), cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	ginRouter := SetupRouter(Deps{
		Config:    cfg,
		DB:        db,
		PageCache: pageCache,
		Mailer:    email.NewProvider(cfg),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shut down", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter builds the gin engine with every service wired. Tests call it
// directly with an in-memory database.
func SetupRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	if deps.PageCache == nil {
		deps.PageCache = cache.NoopCache{}
	}
	if deps.Mailer == nil {
		deps.Mailer = email.NoopProvider{}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(!cfg.IsProduction())

	bus := events.NewBus()
	cache.NewInvalidator(deps.PageCache).Register(bus)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL())

	serviceContainer := initializeServices(cfg, deps, bus, tokens)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg, deps.DB)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.NewAuthenticator(tokens), !cfg.IsProduction())

	return ginRouter
}

func initializeServices(cfg *config.Config, deps Deps, bus *events.Bus, tokens *auth.TokenManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	reviewRepo := repositories.NewReviewRepository()
	packageRepo := repositories.NewPackageRepository()
	destinationRepo := repositories.NewDestinationRepository()
	blogRepo := repositories.NewBlogRepository()
	enquiryRepo := repositories.NewEnquiryRepository()

	aggregator := services.NewRatingAggregator(reviewRepo, packageRepo, destinationRepo)

	mailer := &services.EnquiryMailer{
		Provider:  deps.Mailer,
		Templates: email.NewTemplateManager(),
		NotifyTo:  splitList(cfg.Email.NotifyTo),
		BaseURL:   cfg.Site.BaseURL,
	}

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, tokens),
		ReviewService:      services.NewReviewService(reviewRepo, packageRepo, aggregator, bus),
		SearchService:      services.NewSearchService(packageRepo, destinationRepo),
		PackageService:     services.NewPackageService(packageRepo, destinationRepo, reviewRepo, aggregator, deps.PageCache, bus),
		DestinationService: services.NewDestinationService(destinationRepo, packageRepo, deps.PageCache, bus),
		BlogService:        services.NewBlogService(blogRepo),
		EnquiryService:     services.NewEnquiryService(enquiryRepo, packageRepo, mailer),
		DashboardService:   services.NewDashboardService(packageRepo, destinationRepo, blogRepo, reviewRepo, enquiryRepo),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
