package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	BaseModel
	Title       string                      `gorm:"size:250;not null" json:"title"`
	Slug        string                      `gorm:"size:270;not null;uniqueIndex" json:"slug"`
	Excerpt     string                      `gorm:"size:500" json:"excerpt"`
	Content     string                      `gorm:"type:text" json:"content"`
	CoverImage  string                      `json:"coverImage"`
	Author      string                      `gorm:"size:120" json:"author"`
	Category    string                      `gorm:"size:60;index" json:"category"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Status      PostStatus                  `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	PublishedAt *time.Time                  `gorm:"index" json:"publishedAt,omitempty"`
	Views       int                         `gorm:"not null;default:0" json:"views"`
}
