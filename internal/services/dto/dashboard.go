package dto

type DashboardStats struct {
	Packages       map[string]int64 `json:"packages"`
	Destinations   int64            `json:"destinations"`
	PublishedPosts int64            `json:"publishedPosts"`
	DraftPosts     int64            `json:"draftPosts"`
	PendingReviews int64            `json:"pendingReviews"`
	NewEnquiries   int64            `json:"newEnquiries"`
}
