package service

import (
	"fmt"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchEventService handles business logic for in-match events
type MatchEventService struct {
	repo       repository.MatchEventRepositoryInterface
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewMatchEventService creates a new match event service
func NewMatchEventService(repo repository.MatchEventRepositoryInterface, matchRepo repository.MatchRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *MatchEventService {
	return &MatchEventService{
		repo:       repo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateMatchEventRequest represents the data needed to record a match event
type CreateMatchEventRequest struct {
	PlayerID *uuid.UUID `json:"player_id"`
	Type     string     `json:"type" validate:"required"`
	Minute   int        `json:"minute" validate:"min=0,max=120"`
	Detail   string     `json:"detail" validate:"max=300"`
}

// UpdateMatchEventRequest represents the data needed to update a match event
type UpdateMatchEventRequest struct {
	PlayerID *uuid.UUID `json:"player_id"`
	Type     *string    `json:"type"`
	Minute   *int       `json:"minute" validate:"omitempty,min=0,max=120"`
	Detail   *string    `json:"detail" validate:"omitempty,max=300"`
}

// MatchEventResponse represents the response data for a match event
type MatchEventResponse struct {
	ID         uuid.UUID  `json:"id"`
	MatchID    uuid.UUID  `json:"match_id"`
	PlayerID   *uuid.UUID `json:"player_id,omitempty"`
	PlayerName string     `json:"player_name,omitempty"`
	Type       string     `json:"type"`
	Minute     int        `json:"minute"`
	Detail     string     `json:"detail,omitempty"`
}

// ListEvents retrieves all events of a match in minute order
func (s *MatchEventService) ListEvents(matchID uuid.UUID) ([]MatchEventResponse, error) {
	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	events, err := s.repo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match events: %w", err)
	}

	responses := make([]MatchEventResponse, len(events))
	for i, event := range events {
		responses[i] = *convertEventToResponse(&event)
	}

	return responses, nil
}

// CreateEvent records a new match event
func (s *MatchEventService) CreateEvent(matchID uuid.UUID, req *CreateMatchEventRequest) (*MatchEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	eventType := models.MatchEventType(req.Type)
	if !eventType.IsValid() {
		return nil, apperrors.ErrInvalidEventType
	}

	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	if req.PlayerID != nil {
		if _, err := s.playerRepo.GetByID(*req.PlayerID); err != nil {
			return nil, apperrors.ErrPlayerNotFound
		}
	}

	event := &models.MatchEvent{
		MatchID:  matchID,
		PlayerID: req.PlayerID,
		Type:     eventType,
		Minute:   req.Minute,
		Detail:   req.Detail,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create match event: %w", err)
	}

	return convertEventToResponse(event), nil
}

// UpdateEvent updates an existing match event
func (s *MatchEventService) UpdateEvent(matchID, eventID uuid.UUID, req *UpdateMatchEventRequest) (*MatchEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event, err := s.repo.GetByID(eventID)
	if err != nil || event.MatchID != matchID {
		return nil, apperrors.ErrMatchEventNotFound
	}

	if req.Type != nil {
		eventType := models.MatchEventType(*req.Type)
		if !eventType.IsValid() {
			return nil, apperrors.ErrInvalidEventType
		}
		event.Type = eventType
	}
	if req.PlayerID != nil {
		if _, err := s.playerRepo.GetByID(*req.PlayerID); err != nil {
			return nil, apperrors.ErrPlayerNotFound
		}
		event.PlayerID = req.PlayerID
	}
	if req.Minute != nil {
		event.Minute = *req.Minute
	}
	if req.Detail != nil {
		event.Detail = *req.Detail
	}

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update match event: %w", err)
	}

	return convertEventToResponse(event), nil
}

// DeleteEvent deletes a match event
func (s *MatchEventService) DeleteEvent(matchID, eventID uuid.UUID) error {
	event, err := s.repo.GetByID(eventID)
	if err != nil || event.MatchID != matchID {
		return apperrors.ErrMatchEventNotFound
	}

	if err := s.repo.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete match event: %w", err)
	}

	return nil
}

func convertEventToResponse(event *models.MatchEvent) *MatchEventResponse {
	resp := &MatchEventResponse{
		ID:       event.ID,
		MatchID:  event.MatchID,
		PlayerID: event.PlayerID,
		Type:     string(event.Type),
		Minute:   event.Minute,
		Detail:   event.Detail,
	}
	if event.Player != nil {
		resp.PlayerName = event.Player.FullName()
	}
	return resp
}
