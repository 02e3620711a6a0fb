package service

import (
	"fmt"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// startingLineupSize is the maximum number of starting players per match
const startingLineupSize = 11

// LineupService handles business logic for match lineups
type LineupService struct {
	repo       repository.LineupEntryRepositoryInterface
	matchRepo  repository.MatchRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewLineupService creates a new lineup service
func NewLineupService(repo repository.LineupEntryRepositoryInterface, matchRepo repository.MatchRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *LineupService {
	return &LineupService{
		repo:       repo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// AddLineupEntryRequest represents the data needed to add a player to a lineup
type AddLineupEntryRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Role     string    `json:"role" example:"starting" default:"starting"` // Optional: defaults to "starting". Valid values: starting, substitute
}

// UpdateLineupEntryRequest represents the data needed to update a lineup entry
type UpdateLineupEntryRequest struct {
	Role *string `json:"role"`
}

// LineupEntryResponse represents the response data for a lineup entry
type LineupEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	MatchID     uuid.UUID `json:"match_id"`
	PlayerID    uuid.UUID `json:"player_id"`
	PlayerName  string    `json:"player_name,omitempty"`
	Position    string    `json:"position,omitempty"`
	Role        string    `json:"role"`
	ShirtNumber int       `json:"shirt_number"`
}

// GetLineup retrieves the lineup for a match, starters first
func (s *LineupService) GetLineup(matchID uuid.UUID) ([]LineupEntryResponse, error) {
	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	entries, err := s.repo.ListByMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineup: %w", err)
	}

	responses := make([]LineupEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *convertLineupEntryToResponse(&entry)
	}

	return responses, nil
}

// AddEntry adds a player to a match lineup
func (s *LineupService) AddEntry(matchID uuid.UUID, req *AddLineupEntryRequest) (*LineupEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.LineupRoleStarting
	if req.Role != "" {
		role = models.LineupRole(req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidLineupRole
		}
	}

	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	player, err := s.playerRepo.GetByID(req.PlayerID)
	if err != nil {
		return nil, apperrors.ErrPlayerNotFound
	}
	if !player.IsActive {
		return nil, apperrors.ErrPlayerInactive
	}

	// One entry per player per match
	if existing, err := s.repo.GetByMatchAndPlayer(matchID, req.PlayerID); err == nil && existing != nil {
		return nil, apperrors.ErrPlayerInLineup
	}

	if role == models.LineupRoleStarting {
		starting, err := s.repo.CountStarting(matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to count starting lineup: %w", err)
		}
		if starting >= startingLineupSize {
			return nil, apperrors.ErrStartingLineupFull
		}
	}

	entry := &models.LineupEntry{
		MatchID:     matchID,
		PlayerID:    req.PlayerID,
		Role:        role,
		ShirtNumber: player.JerseyNumber,
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to add lineup entry: %w", err)
	}

	entry.Player = *player
	return convertLineupEntryToResponse(entry), nil
}

// UpdateEntry changes a lineup entry's role
func (s *LineupService) UpdateEntry(matchID, entryID uuid.UUID, req *UpdateLineupEntryRequest) (*LineupEntryResponse, error) {
	entry, err := s.repo.GetByID(entryID)
	if err != nil || entry.MatchID != matchID {
		return nil, apperrors.ErrLineupEntryNotFound
	}

	if req.Role != nil {
		role := models.LineupRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidLineupRole
		}
		if role == models.LineupRoleStarting && entry.Role != models.LineupRoleStarting {
			starting, err := s.repo.CountStarting(matchID)
			if err != nil {
				return nil, fmt.Errorf("failed to count starting lineup: %w", err)
			}
			if starting >= startingLineupSize {
				return nil, apperrors.ErrStartingLineupFull
			}
		}
		entry.Role = role
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update lineup entry: %w", err)
	}

	return convertLineupEntryToResponse(entry), nil
}

// RemoveEntry removes a player from a match lineup
func (s *LineupService) RemoveEntry(matchID, entryID uuid.UUID) error {
	entry, err := s.repo.GetByID(entryID)
	if err != nil || entry.MatchID != matchID {
		return apperrors.ErrLineupEntryNotFound
	}

	if err := s.repo.Delete(entryID); err != nil {
		return fmt.Errorf("failed to remove lineup entry: %w", err)
	}

	return nil
}

func convertLineupEntryToResponse(entry *models.LineupEntry) *LineupEntryResponse {
	resp := &LineupEntryResponse{
		ID:          entry.ID,
		MatchID:     entry.MatchID,
		PlayerID:    entry.PlayerID,
		Role:        string(entry.Role),
		ShirtNumber: entry.ShirtNumber,
	}
	if entry.Player.ID != uuid.Nil {
		resp.PlayerName = entry.Player.FullName()
		resp.Position = string(entry.Player.Position)
	}
	return resp
}
