package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	ReviewService      ReviewService
	SearchService      SearchService
	PackageService     PackageService
	DestinationService DestinationService
	BlogService        BlogService
	EnquiryService     EnquiryService
	DashboardService   DashboardService
}
