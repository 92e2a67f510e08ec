package dto

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// PageQuery is embedded in list queries. Zero values mean "use the default".
type PageQuery struct {
	Page  int `form:"page" json:"page" validate:"omitempty,min=1"`
	Limit int `form:"limit" json:"limit" validate:"omitempty,min=1"`
}

// Normalize applies defaults and caps limit at MaxLimit.
func (p PageQuery) Normalize() (page, limit int) {
	page, limit = p.Page, p.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

type MessageResponse struct {
	Message string `json:"message"`
}

// TotalPages is ceil(total/limit), never below 0.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
