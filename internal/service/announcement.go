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

// AnnouncementService handles business logic for club announcements
type AnnouncementService struct {
	repo      repository.AnnouncementRepositoryInterface
	validator *validator.Validate
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repository.AnnouncementRepositoryInterface, validator *validator.Validate) *AnnouncementService {
	return &AnnouncementService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAnnouncementRequest represents the data needed to create an announcement
type CreateAnnouncementRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Body        string     `json:"body" validate:"required"`
	Pinned      bool       `json:"pinned"`
	PublishedAt *time.Time `json:"published_at"` // Optional: defaults to now
}

// UpdateAnnouncementRequest represents the data needed to update an announcement
type UpdateAnnouncementRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Body        *string    `json:"body"`
	Pinned      *bool      `json:"pinned"`
	PublishedAt *time.Time `json:"published_at"`
}

// AnnouncementResponse represents the response data for an announcement
type AnnouncementResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Pinned      bool       `json:"pinned"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty"`
	AuthorName  string     `json:"author_name,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// CreateAnnouncement creates a new announcement attributed to the acting user
func (s *AnnouncementService) CreateAnnouncement(authorID *uuid.UUID, req *CreateAnnouncementRequest) (*AnnouncementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	announcement := &models.Announcement{
		Title:       req.Title,
		Body:        req.Body,
		Pinned:      req.Pinned,
		AuthorID:    authorID,
		PublishedAt: publishedAt,
	}

	if err := s.repo.Create(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	return convertAnnouncementToResponse(announcement), nil
}

// GetAnnouncementByID retrieves an announcement by ID
func (s *AnnouncementService) GetAnnouncementByID(id uuid.UUID) (*AnnouncementResponse, error) {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrAnnouncementNotFound
	}

	return convertAnnouncementToResponse(announcement), nil
}

// ListAnnouncements retrieves announcements, pinned first then newest first
func (s *AnnouncementService) ListAnnouncements(pinned *bool, limit, offset int) ([]AnnouncementResponse, int64, error) {
	announcements, total, err := s.repo.List(pinned, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	responses := make([]AnnouncementResponse, len(announcements))
	for i, announcement := range announcements {
		responses[i] = *convertAnnouncementToResponse(&announcement)
	}

	return responses, total, nil
}

// UpdateAnnouncement updates an existing announcement
func (s *AnnouncementService) UpdateAnnouncement(id uuid.UUID, req *UpdateAnnouncementRequest) (*AnnouncementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrAnnouncementNotFound
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Body != nil {
		announcement.Body = *req.Body
	}
	if req.Pinned != nil {
		announcement.Pinned = *req.Pinned
	}
	if req.PublishedAt != nil {
		announcement.PublishedAt = *req.PublishedAt
	}

	if err := s.repo.Update(announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	return convertAnnouncementToResponse(announcement), nil
}

// DeleteAnnouncement deletes an announcement
func (s *AnnouncementService) DeleteAnnouncement(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrAnnouncementNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	return nil
}

func convertAnnouncementToResponse(announcement *models.Announcement) *AnnouncementResponse {
	resp := &AnnouncementResponse{
		ID:          announcement.ID,
		Title:       announcement.Title,
		Body:        announcement.Body,
		Pinned:      announcement.Pinned,
		AuthorID:    announcement.AuthorID,
		PublishedAt: announcement.PublishedAt,
		CreatedAt:   announcement.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   announcement.UpdatedAt.Format(time.RFC3339),
	}
	if announcement.Author != nil {
		resp.AuthorName = announcement.Author.FirstName + " " + announcement.Author.LastName
	}
	return resp
}
