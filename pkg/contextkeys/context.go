package contextkeys

// contextKey keeps our keys from colliding with other packages.
type contextKey string

const (
	// DBContextKey holds the *gorm.DB pool in the gin context.
	DBContextKey = contextKey("db")
	// UserIDKey and UserRoleKey are set by the auth middleware.
	UserIDKey   = contextKey("userID")
	UserRoleKey = contextKey("userRole")
)

// String returns the key as gin's string-keyed context expects it.
func (k contextKey) String() string {
	return string(k)
}
