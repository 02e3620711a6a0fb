package repository

import (
	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryPhotoRepository handles database operations for gallery photos
type GalleryPhotoRepository struct {
	db *gorm.DB
}

// NewGalleryPhotoRepository creates a new gallery photo repository
func NewGalleryPhotoRepository(db *gorm.DB) *GalleryPhotoRepository {
	return &GalleryPhotoRepository{db: db}
}

// Create creates a new gallery photo
func (r *GalleryPhotoRepository) Create(photo *models.GalleryPhoto) error {
	return r.db.Create(photo).Error
}

// GetByID retrieves a gallery photo by ID
func (r *GalleryPhotoRepository) GetByID(id uuid.UUID) (*models.GalleryPhoto, error) {
	var photo models.GalleryPhoto
	err := r.db.First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// List retrieves gallery photos, newest first
func (r *GalleryPhotoRepository) List(limit, offset int) ([]models.GalleryPhoto, int64, error) {
	var photos []models.GalleryPhoto
	var total int64

	if err := r.db.Model(&models.GalleryPhoto{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&photos).Error
	if err != nil {
		return nil, 0, err
	}

	return photos, total, nil
}

// Update updates a gallery photo
func (r *GalleryPhotoRepository) Update(photo *models.GalleryPhoto) error {
	return r.db.Save(photo).Error
}

// Delete deletes a gallery photo
func (r *GalleryPhotoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GalleryPhoto{}, "id = ?", id).Error
}
