package models

// Destination aggregates (Rating, Reviews) roll up from its ACTIVE packages.
type Destination struct {
	BaseModel
	Name        string        `gorm:"size:200;not null" json:"name"`
	Slug        string        `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Location    string        `gorm:"size:200" json:"location"`
	Country     string        `gorm:"size:120" json:"country"`
	Region      Region        `gorm:"type:varchar(10);not null;index" json:"region"`
	Category    string        `gorm:"size:60;index" json:"category"`
	Status      ListingStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	Image       string        `json:"image"`
	Description string        `gorm:"type:text" json:"description"`
	Featured    bool          `gorm:"not null;default:false" json:"featured"`
	Rating      float64       `gorm:"not null;default:0" json:"rating"`
	Reviews     int           `gorm:"not null;default:0" json:"reviews"`

	Packages []Package `gorm:"foreignKey:DestinationID" json:"packages,omitempty"`
}
