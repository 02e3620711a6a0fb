package service

import (
	"fmt"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ImageUploader abstracts the image host client so gallery logic is testable
type ImageUploader interface {
	Upload(name string, data []byte) (*UploadedImage, error)
	Delete(deleteURL string)
}

// GalleryService handles business logic for the photo gallery
type GalleryService struct {
	repo      repository.GalleryPhotoRepositoryInterface
	uploader  ImageUploader
	validator *validator.Validate
}

// NewGalleryService creates a new gallery service
func NewGalleryService(repo repository.GalleryPhotoRepositoryInterface, uploader ImageUploader, validator *validator.Validate) *GalleryService {
	return &GalleryService{
		repo:      repo,
		uploader:  uploader,
		validator: validator,
	}
}

// UploadPhotoRequest represents the metadata accompanying a gallery upload
type UploadPhotoRequest struct {
	Title   string     `json:"title" validate:"required,max=200"`
	Caption string     `json:"caption" validate:"max=500"`
	TakenAt *time.Time `json:"taken_at"`
}

// UpdatePhotoRequest represents the data needed to update photo metadata
type UpdatePhotoRequest struct {
	Title   *string    `json:"title" validate:"omitempty,max=200"`
	Caption *string    `json:"caption" validate:"omitempty,max=500"`
	TakenAt *time.Time `json:"taken_at"`
}

// GalleryPhotoResponse represents the response data for a gallery photo
type GalleryPhotoResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Caption      string     `json:"caption,omitempty"`
	ImageURL     string     `json:"image_url"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	UploadedByID *uuid.UUID `json:"uploaded_by_id,omitempty"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	CreatedAt    string     `json:"created_at"`
}

// UploadPhoto sends the image to the host and stores the resulting record
func (s *GalleryService) UploadPhoto(uploaderID *uuid.UUID, req *UploadPhotoRequest, imageData []byte) (*GalleryPhotoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	uploaded, err := s.uploader.Upload(req.Title, imageData)
	if err != nil {
		return nil, err
	}

	photo := &models.GalleryPhoto{
		Title:        req.Title,
		Caption:      req.Caption,
		ImageURL:     uploaded.URL,
		ThumbnailURL: uploaded.ThumbnailURL,
		DeleteURL:    uploaded.DeleteURL,
		UploadedByID: uploaderID,
		TakenAt:      req.TakenAt,
	}

	if err := s.repo.Create(photo); err != nil {
		// The remote copy is orphaned if the row insert fails; clean it up
		s.uploader.Delete(uploaded.DeleteURL)
		return nil, fmt.Errorf("failed to save gallery photo: %w", err)
	}

	return convertPhotoToResponse(photo), nil
}

// GetPhotoByID retrieves a gallery photo by ID
func (s *GalleryService) GetPhotoByID(id uuid.UUID) (*GalleryPhotoResponse, error) {
	photo, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrGalleryPhotoNotFound
	}

	return convertPhotoToResponse(photo), nil
}

// ListPhotos retrieves gallery photos, newest first
func (s *GalleryService) ListPhotos(limit, offset int) ([]GalleryPhotoResponse, int64, error) {
	photos, total, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list gallery photos: %w", err)
	}

	responses := make([]GalleryPhotoResponse, len(photos))
	for i, photo := range photos {
		responses[i] = *convertPhotoToResponse(&photo)
	}

	return responses, total, nil
}

// UpdatePhoto updates a photo's metadata
func (s *GalleryService) UpdatePhoto(id uuid.UUID, req *UpdatePhotoRequest) (*GalleryPhotoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	photo, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrGalleryPhotoNotFound
	}

	if req.Title != nil {
		photo.Title = *req.Title
	}
	if req.Caption != nil {
		photo.Caption = *req.Caption
	}
	if req.TakenAt != nil {
		photo.TakenAt = req.TakenAt
	}

	if err := s.repo.Update(photo); err != nil {
		return nil, fmt.Errorf("failed to update gallery photo: %w", err)
	}

	return convertPhotoToResponse(photo), nil
}

// DeletePhoto removes the remote image best-effort, then deletes the record
func (s *GalleryService) DeletePhoto(id uuid.UUID) error {
	photo, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrGalleryPhotoNotFound
	}

	s.uploader.Delete(photo.DeleteURL)

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete gallery photo: %w", err)
	}

	return nil
}

func convertPhotoToResponse(photo *models.GalleryPhoto) *GalleryPhotoResponse {
	return &GalleryPhotoResponse{
		ID:           photo.ID,
		Title:        photo.Title,
		Caption:      photo.Caption,
		ImageURL:     photo.ImageURL,
		ThumbnailURL: photo.ThumbnailURL,
		UploadedByID: photo.UploadedByID,
		TakenAt:      photo.TakenAt,
		CreatedAt:    photo.CreatedAt.Format(time.RFC3339),
	}
}
