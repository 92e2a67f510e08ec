package models

import "gorm.io/datatypes"

const (
	MinRating = 1
	MaxRating = 5
)

// Review belongs to exactly one Package and is removed with it.
type Review struct {
	BaseModel
	PackageID string                      `gorm:"type:varchar(36);not null;index" json:"packageId"`
	Name      string                      `gorm:"size:120;not null" json:"name"`
	Email     *string                     `gorm:"size:255" json:"email,omitempty"`
	Location  *string                     `gorm:"size:120" json:"location,omitempty"`
	Rating    int                         `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title     *string                     `gorm:"size:200" json:"title,omitempty"`
	Comment   string                      `gorm:"type:text;not null" json:"comment"`
	Images    datatypes.JSONSlice[string] `json:"images"`
	Verified  bool                        `gorm:"not null;default:false" json:"verified"`
	Helpful   int                         `gorm:"not null;default:0" json:"helpful"`
	Status    ReviewStatus                `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`

	Package *Package `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"package,omitempty"`
}
