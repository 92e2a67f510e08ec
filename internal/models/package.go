package models

import "gorm.io/datatypes"

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Package is a bookable tour. Rating and Reviews are derived from its
// APPROVED reviews and only ever written by the rating aggregator.
type Package struct {
	BaseModel
	Name            string                            `gorm:"size:200;not null" json:"name"`
	Slug            string                            `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	DestinationID   *string                           `gorm:"type:varchar(36);index" json:"destinationId,omitempty"`
	DestinationName string                            `gorm:"size:200" json:"destination"`
	Location        string                            `gorm:"size:200" json:"location"`
	Country         string                            `gorm:"size:120" json:"country"`
	Price           float64                           `gorm:"not null" json:"price"`
	OriginalPrice   *float64                          `json:"originalPrice,omitempty"`
	Duration        string                            `gorm:"size:60" json:"duration"`
	DurationDays    int                               `gorm:"not null;default:0" json:"durationDays"`
	Image           string                            `json:"image"`
	Description     string                            `gorm:"type:text" json:"description"`
	Category        string                            `gorm:"size:60;index" json:"category"`
	Highlights      datatypes.JSONSlice[string]       `json:"highlights"`
	Inclusions      datatypes.JSONSlice[string]       `json:"inclusions"`
	Exclusions      datatypes.JSONSlice[string]       `json:"exclusions"`
	Itinerary       datatypes.JSONSlice[ItineraryDay] `json:"itinerary"`
	Rating          float64                           `gorm:"not null;default:0" json:"rating"`
	Reviews         int                               `gorm:"not null;default:0" json:"reviews"`
	Status          ListingStatus                     `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	Featured        bool                              `gorm:"not null;default:false;index" json:"featured"`

	Destination *Destination `gorm:"foreignKey:DestinationID;constraint:OnDelete:RESTRICT" json:"-"`
}
