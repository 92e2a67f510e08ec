package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("slug already in use")

// likeEscape is the ESCAPE character used in every LIKE we build. '!' is
// accepted by postgres, mysql and sqlite alike; backslash is not.
const likeEscape = "!"

// likePattern lower-cases q and escapes LIKE metacharacters so user input
// always matches literally as a substring.
func likePattern(q string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}

// whereContains adds (LOWER(c1) LIKE ? OR LOWER(c2) LIKE ? ...) for q.
func whereContains(db *gorm.DB, q string, columns ...string) *gorm.DB {
	if q == "" || len(columns) == 0 {
		return db
	}
	pattern := likePattern(q)
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '" + likeEscape + "'"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// jsonAsText casts a JSON column to text. mysql has no CAST(... AS TEXT).
func jsonAsText(db *gorm.DB, column string) string {
	if db.Dialector != nil && db.Dialector.Name() == "mysql" {
		return "CAST(" + column + " AS CHAR)"
	}
	return "CAST(" + column + " AS TEXT)"
}

// paginate applies limit/offset for a 1-based page.
func paginate(db *gorm.DB, page, limit int) *gorm.DB {
	if limit <= 0 {
		return db
	}
	if page < 1 {
		page = 1
	}
	return db.Limit(limit).Offset((page - 1) * limit)
}

// isUniqueViolation recognises duplicate-key errors from every supported driver,
// whether or not gorm's error translation is enabled.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// StatusCount is one row of a GROUP BY status query.
type StatusCount struct {
	Status string
	Count  int64
}

func countByStatus(db *gorm.DB, model interface{}) (map[string]int64, error) {
	var rows []StatusCount
	if err := db.Model(model).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}

// Aggregate is COUNT and SUM of approved ratings.
type Aggregate struct {
	Count int64
	Total int64
}
