package middleware

import (
	"strings"

	"travel_backend/internal/auth"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"
	"travel_backend/pkg/apperrors"
	"travel_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Authenticator checks bearer tokens issued by auth.TokenManager.
type Authenticator struct {
	tokens *auth.TokenManager
}

func NewAuthenticator(tokens *auth.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// AuthMiddleware rejects the request with 401 unless a valid token is present.
func (a *Authenticator) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := a.tokens.ParseToken(tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "error", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is sent and
// otherwise lets the request through anonymously.
func (a *Authenticator) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c); ok {
			if claims, err := a.tokens.ParseToken(tokenStr); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware. A missing role is a 401, not a 403.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetRole(c)] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

func RequirePermission(permission auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.CanPerformAction(GetClaims(c), permission) {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey.String())
}

func GetRole(c *gin.Context) models.UserRole {
	v, ok := c.Get(contextkeys.UserRoleKey.String())
	if !ok {
		return ""
	}
	role, _ := v.(models.UserRole)
	return role
}

// CanModerate reports whether the caller may see and moderate unapproved reviews.
func CanModerate(c *gin.Context) bool {
	return auth.CanPerformAction(GetClaims(c), auth.PermReviewsModerate)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
	c.Set(contextkeys.UserIDKey.String(), claims.UserID)
	c.Set(contextkeys.UserRoleKey.String(), claims.Role)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
}
