package dto

const (
	ResultTypePackage     = "package"
	ResultTypeDestination = "destination"
)

type SearchQuery struct {
	Q string `form:"q"`
}

type SearchResult struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Price    *float64 `json:"price,omitempty"`
	Href     string   `json:"href"`
	Image    string   `json:"image"`
	Rating   float64  `json:"rating"`
}

type SearchCounts struct {
	Packages     int `json:"packages"`
	Destinations int `json:"destinations"`
	Total        int `json:"total"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Counts  SearchCounts   `json:"counts"`
}
