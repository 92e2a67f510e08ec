package auth

import "travel_backend/internal/models"

type Permission string

const (
	PermReviewsModerate Permission = "reviews:moderate"
	PermCatalogueWrite  Permission = "catalogue:write"
	PermBlogWrite       Permission = "blog:write"
	PermEnquiriesManage Permission = "enquiries:manage"
	PermDashboardRead   Permission = "dashboard:read"
)

// Permissions maps each back-office role to what it may do.
// Editors manage content; moderation and leads stay with admins.
var Permissions = map[models.UserRole][]Permission{
	models.UserRoleAdmin: {
		PermReviewsModerate,
		PermCatalogueWrite,
		PermBlogWrite,
		PermEnquiriesManage,
		PermDashboardRead,
	},
	models.UserRoleEditor: {
		PermCatalogueWrite,
		PermBlogWrite,
		PermDashboardRead,
	},
}

func HasPermission(role models.UserRole, permission Permission) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

func CanPerformAction(claims *Claims, permission Permission) bool {
	return claims != nil && HasPermission(claims.Role, permission)
}
