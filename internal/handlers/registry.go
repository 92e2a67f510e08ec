package handlers

import (
	"travel_backend/internal/services"
	"travel_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ReviewHandler      *ReviewHandler
	SearchHandler      *SearchHandler
	PackageHandler     *PackageHandler
	DestinationHandler *DestinationHandler
	BlogHandler        *BlogHandler
	EnquiryHandler     *EnquiryHandler
	DashboardHandler   *DashboardHandler
	HealthHandler      *HealthHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, svc.AuthService),
		ReviewHandler:      NewReviewHandler(base, svc.ReviewService),
		SearchHandler:      NewSearchHandler(base, svc.SearchService),
		PackageHandler:     NewPackageHandler(base, svc.PackageService),
		DestinationHandler: NewDestinationHandler(base, svc.DestinationService),
		BlogHandler:        NewBlogHandler(base, svc.BlogService),
		EnquiryHandler:     NewEnquiryHandler(base, svc.EnquiryService),
		DashboardHandler:   NewDashboardHandler(base, svc.DashboardService),
		HealthHandler:      NewHealthHandler(base),
	}
}
