package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryPhoto represents an image uploaded to the third-party image host.
// DeleteURL is kept so the remote copy can be removed when the photo is deleted.
type GalleryPhoto struct {
	BaseModel
	Title        string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Caption      string     `json:"caption" gorm:"size:500" validate:"max=500"`
	ImageURL     string     `json:"image_url" gorm:"not null;size:500" validate:"required,url,max=500"`
	ThumbnailURL string     `json:"thumbnail_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	DeleteURL    string     `json:"-" gorm:"size:500"`
	UploadedByID *uuid.UUID `json:"uploaded_by_id,omitempty" gorm:"type:uuid;index"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`

	// Relationships
	UploadedBy *User `json:"uploaded_by,omitempty" gorm:"foreignKey:UploadedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GalleryPhoto
func (GalleryPhoto) TableName() string {
	return "gallery_photos"
}
