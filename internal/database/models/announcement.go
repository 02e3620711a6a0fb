package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement represents a club news post shown to members
type Announcement struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Body        string     `json:"body" gorm:"not null;type:text" validate:"required"`
	Pinned      bool       `json:"pinned" gorm:"default:false;index"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid;index"`
	PublishedAt time.Time  `json:"published_at" gorm:"not null;index"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
