package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for the club roster
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	eventRepo repository.MatchEventRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, eventRepo repository.MatchEventRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		eventRepo: eventRepo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the data needed to create a player
type CreatePlayerRequest struct {
	FirstName    string     `json:"first_name" validate:"required,max=100"`
	LastName     string     `json:"last_name" validate:"required,max=100"`
	JerseyNumber int        `json:"jersey_number" validate:"required,min=1,max=99"`
	Position     string     `json:"position" validate:"required"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	HeightCM     *int       `json:"height_cm" validate:"omitempty,min=100,max=230"`
	WeightKG     *int       `json:"weight_kg" validate:"omitempty,min=40,max=150"`
	PhotoURL     string     `json:"photo_url" validate:"omitempty,url,max=500"`
	IsActive     *bool      `json:"is_active" example:"true" default:"true"` // Optional: defaults to true if not provided
}

// UpdatePlayerRequest represents the data needed to update a player
type UpdatePlayerRequest struct {
	FirstName    *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string    `json:"last_name" validate:"omitempty,max=100"`
	JerseyNumber *int       `json:"jersey_number" validate:"omitempty,min=1,max=99"`
	Position     *string    `json:"position"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	HeightCM     *int       `json:"height_cm" validate:"omitempty,min=100,max=230"`
	WeightKG     *int       `json:"weight_kg" validate:"omitempty,min=40,max=150"`
	PhotoURL     *string    `json:"photo_url" validate:"omitempty,url,max=500"`
	IsActive     *bool      `json:"is_active"`
}

// PlayerResponse represents the response data for a player
type PlayerResponse struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	FullName     string     `json:"full_name"`
	JerseyNumber int        `json:"jersey_number"`
	Position     string     `json:"position"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	HeightCM     *int       `json:"height_cm,omitempty"`
	WeightKG     *int       `json:"weight_kg,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// ListPlayersQuery represents the supported roster list filters
type ListPlayersQuery struct {
	Position string
	Active   *bool
	Query    string
	SortBy   string
	Limit    int
	Offset   int
}

// CreatePlayer creates a new player
func (s *PlayerService) CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	position := models.PlayerPosition(req.Position)
	if !position.IsValid() {
		return nil, apperrors.ErrInvalidPosition
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	// A jersey number may only be worn by one active player at a time
	if isActive {
		if existing, err := s.repo.GetActiveByJerseyNumber(req.JerseyNumber); err == nil && existing != nil {
			return nil, apperrors.ErrJerseyNumberTaken
		}
	}

	player := &models.Player{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JerseyNumber: req.JerseyNumber,
		Position:     position,
		DateOfBirth:  req.DateOfBirth,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		PhotoURL:     req.PhotoURL,
		IsActive:     isActive,
	}

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return s.convertToResponse(player), nil
}

// GetPlayerByID retrieves a player by ID
func (s *PlayerService) GetPlayerByID(id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	return s.convertToResponse(player), nil
}

// ListPlayers retrieves players matching the query
func (s *PlayerService) ListPlayers(query *ListPlayersQuery) ([]PlayerResponse, int64, error) {
	filter := repository.PlayerFilter{
		Active: query.Active,
		Query:  query.Query,
		SortBy: query.SortBy,
	}
	if query.Position != "" {
		position := models.PlayerPosition(query.Position)
		if !position.IsValid() {
			return nil, 0, apperrors.ErrInvalidPosition
		}
		filter.Position = &position
	}

	players, total, err := s.repo.List(filter, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i, player := range players {
		responses[i] = *s.convertToResponse(&player)
	}

	return responses, total, nil
}

// UpdatePlayer updates an existing player
func (s *PlayerService) UpdatePlayer(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	player, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	if req.Position != nil {
		position := models.PlayerPosition(*req.Position)
		if !position.IsValid() {
			return nil, apperrors.ErrInvalidPosition
		}
		player.Position = position
	}
	if req.JerseyNumber != nil && *req.JerseyNumber != player.JerseyNumber {
		if existing, err := s.repo.GetActiveByJerseyNumber(*req.JerseyNumber); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrJerseyNumberTaken
		}
		player.JerseyNumber = *req.JerseyNumber
	}
	if req.FirstName != nil {
		player.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		player.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		player.DateOfBirth = req.DateOfBirth
	}
	if req.HeightCM != nil {
		player.HeightCM = req.HeightCM
	}
	if req.WeightKG != nil {
		player.WeightKG = req.WeightKG
	}
	if req.PhotoURL != nil {
		player.PhotoURL = *req.PhotoURL
	}
	if req.IsActive != nil {
		// Re-activation must not collide with the current wearer of the number
		if *req.IsActive && !player.IsActive {
			if existing, err := s.repo.GetActiveByJerseyNumber(player.JerseyNumber); err == nil && existing != nil && existing.ID != id {
				return nil, apperrors.ErrJerseyNumberTaken
			}
		}
		player.IsActive = *req.IsActive
	}

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.convertToResponse(player), nil
}

// DeletePlayer deletes a player and fans out to their lineup entries and events
func (s *PlayerService) DeletePlayer(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}

	if err := s.repo.DeleteWithDependents(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

// GetPlayerEvents retrieves a player's recorded match events
func (s *PlayerService) GetPlayerEvents(id uuid.UUID, limit, offset int) ([]MatchEventResponse, int64, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, 0, apperrors.ErrPlayerNotFound
	}

	events, total, err := s.eventRepo.ListByPlayer(id, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list player events: %w", err)
	}

	responses := make([]MatchEventResponse, len(events))
	for i, event := range events {
		responses[i] = *convertEventToResponse(&event)
	}

	return responses, total, nil
}

func (s *PlayerService) convertToResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:           player.ID,
		FirstName:    player.FirstName,
		LastName:     player.LastName,
		FullName:     player.FullName(),
		JerseyNumber: player.JerseyNumber,
		Position:     string(player.Position),
		DateOfBirth:  player.DateOfBirth,
		HeightCM:     player.HeightCM,
		WeightKG:     player.WeightKG,
		PhotoURL:     player.PhotoURL,
		IsActive:     player.IsActive,
		CreatedAt:    player.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    player.UpdatedAt.Format(time.RFC3339),
	}
}
