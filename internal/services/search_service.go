package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"travel_backend/internal/logger"
	"travel_backend/internal/repositories"
	"travel_backend/internal/services/dto"
	"travel_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	MinSearchQueryLength  = 2
	MaxPackageResults     = 6
	MaxDestinationResults = 4
)

type SearchService interface {
	Search(db *gorm.DB, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	packageRepo     repositories.PackageRepository
	destinationRepo repositories.DestinationRepository
}

func NewSearchService(
	packageRepo repositories.PackageRepository,
	destinationRepo repositories.DestinationRepository,
) SearchService {
	return &searchService{
		packageRepo:     packageRepo,
		destinationRepo: destinationRepo,
	}
}

// Search does a case-insensitive substring match over ACTIVE packages and
// destinations. Queries shorter than two characters return no results
// without touching the database. Any store error fails the whole search.
func (s *searchService) Search(db *gorm.DB, query string) (*dto.SearchResponse, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinSearchQueryLength {
		return emptySearchResponse(), nil
	}

	pkgs, err := s.packageRepo.SearchPackages(db, q, MaxPackageResults)
	if err != nil {
		logger.CtxWithError(contextOf(db), "package search failed", err, "query", q)
		return nil, apperrors.SearchError(err)
	}

	dests, err := s.destinationRepo.SearchDestinations(db, q, MaxDestinationResults)
	if err != nil {
		logger.CtxWithError(contextOf(db), "destination search failed", err, "query", q)
		return nil, apperrors.SearchError(err)
	}

	results := make([]dto.SearchResult, 0, len(pkgs)+len(dests))
	for i := range pkgs {
		p := &pkgs[i]
		price := p.Price
		results = append(results, dto.SearchResult{
			ID:       p.ID,
			Type:     dto.ResultTypePackage,
			Title:    p.Name,
			Subtitle: fmt.Sprintf("%s • %s", p.Duration, p.Location),
			Price:    &price,
			Href:     "/packages/" + p.Slug,
			Image:    p.Image,
			Rating:   p.Rating,
		})
	}
	for i := range dests {
		d := &dests[i]
		results = append(results, dto.SearchResult{
			ID:       d.ID,
			Type:     dto.ResultTypeDestination,
			Title:    d.Name,
			Subtitle: fmt.Sprintf("%s, %s", d.Location, d.Country),
			Href:     "/destinations/" + d.Slug,
			Image:    d.Image,
			Rating:   d.Rating,
		})
	}

	return &dto.SearchResponse{
		Results: results,
		Counts: dto.SearchCounts{
			Packages:     len(pkgs),
			Destinations: len(dests),
			Total:        len(results),
		},
	}, nil
}

func emptySearchResponse() *dto.SearchResponse {
	return &dto.SearchResponse{Results: []dto.SearchResult{}}
}
