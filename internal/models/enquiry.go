package models

import "time"

// Enquiry is a lead captured from the contact or booking form.
type Enquiry struct {
	BaseModel
	Type       EnquiryType   `gorm:"type:varchar(20);not null;index" json:"type"`
	PackageID  *string       `gorm:"type:varchar(36);index" json:"packageId,omitempty"`
	Name       string        `gorm:"size:120;not null" json:"name"`
	Email      string        `gorm:"size:255;not null" json:"email"`
	Phone      string        `gorm:"size:40" json:"phone,omitempty"`
	TravelDate *time.Time    `json:"travelDate,omitempty"`
	Travelers  int           `gorm:"not null;default:1" json:"travelers"`
	Message    string        `gorm:"type:text" json:"message,omitempty"`
	Status     EnquiryStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`

	Package *Package `gorm:"foreignKey:PackageID;constraint:OnDelete:SET NULL" json:"package,omitempty"`
}
