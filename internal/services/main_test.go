package services

import (
	"context"
	"sync"
	"testing"

	"travel_backend/internal/cache"
	"travel_backend/internal/email"
	"travel_backend/internal/events"
	"travel_backend/internal/repositories"
	"travel_backend/internal/testutil"

	"gorm.io/gorm"
)

// eventRecorder captures everything published on the bus.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) handle(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *eventRecorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name())
	}
	return out
}

type testEnv struct {
	db       *gorm.DB
	bus      *events.Bus
	recorder *eventRecorder
	mail     *email.MemoryProvider

	reviews      ReviewService
	search       SearchService
	packages     PackageService
	destinations DestinationService
	blog         BlogService
	enquiries    EnquiryService
	dashboard    DashboardService
}

func newTestEnv(t *testing.T, pageCache cache.PageCache) *testEnv {
	t.Helper()

	if pageCache == nil {
		pageCache = cache.NoopCache{}
	}

	db := testutil.NewDB(t)
	bus := events.NewBus()
	rec := &eventRecorder{}
	for _, name := range []string{events.NamePackageRatingChanged, events.NamePackageChanged, events.NameDestinationChanged} {
		bus.Subscribe(name, rec.handle)
	}
	cache.NewInvalidator(pageCache).Register(bus)

	reviewRepo := repositories.NewReviewRepository()
	packageRepo := repositories.NewPackageRepository()
	destinationRepo := repositories.NewDestinationRepository()
	blogRepo := repositories.NewBlogRepository()
	enquiryRepo := repositories.NewEnquiryRepository()
	aggregator := NewRatingAggregator(reviewRepo, packageRepo, destinationRepo)

	mail := &email.MemoryProvider{}
	mailer := &EnquiryMailer{
		Provider:  mail,
		Templates: email.NewTemplateManager(),
		NotifyTo:  []string{"desk@example.com"},
		BaseURL:   "https://travel.example.com",
	}

	return &testEnv{
		db:           db,
		bus:          bus,
		recorder:     rec,
		mail:         mail,
		reviews:      NewReviewService(reviewRepo, packageRepo, aggregator, bus),
		search:       NewSearchService(packageRepo, destinationRepo),
		packages:     NewPackageService(packageRepo, destinationRepo, reviewRepo, aggregator, pageCache, bus),
		destinations: NewDestinationService(destinationRepo, packageRepo, pageCache, bus),
		blog:         NewBlogService(blogRepo),
		enquiries:    NewEnquiryService(enquiryRepo, packageRepo, mailer),
		dashboard:    NewDashboardService(packageRepo, destinationRepo, blogRepo, reviewRepo, enquiryRepo),
	}
}
