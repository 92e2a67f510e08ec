package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is a back-office account. There is no public sign-up.
type User struct {
	BaseModel
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"size:120" json:"name"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	// no default tag: gorm would swap an explicit false for the column default
	Active bool `gorm:"not null" json:"active"`
}

// BeforeSave keeps emails lower-cased whichever path writes the row;
// login lookups rely on it.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
