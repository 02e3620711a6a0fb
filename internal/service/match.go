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

// MatchService handles business logic for fixtures and results
type MatchService struct {
	repo      repository.MatchRepositoryInterface
	validator *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface, validator *validator.Validate) *MatchService {
	return &MatchService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMatchRequest represents the data needed to create a match
type CreateMatchRequest struct {
	Opponent    string    `json:"opponent" validate:"required,max=150"`
	KickoffAt   time.Time `json:"kickoff_at" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
	Competition string    `json:"competition" validate:"max=100"`
	Notes       string    `json:"notes" validate:"max=500"`
}

// UpdateMatchRequest represents the data needed to update a match
type UpdateMatchRequest struct {
	Opponent    *string    `json:"opponent" validate:"omitempty,max=150"`
	KickoffAt   *time.Time `json:"kickoff_at"`
	Venue       *string    `json:"venue"`
	Competition *string    `json:"competition" validate:"omitempty,max=100"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes" validate:"omitempty,max=500"`
}

// RecordResultRequest represents the data needed to record a match result
type RecordResultRequest struct {
	HomeGoals *int `json:"home_goals" validate:"required,min=0"`
	AwayGoals *int `json:"away_goals" validate:"required,min=0"`
}

// MatchResponse represents the response data for a match
type MatchResponse struct {
	ID          uuid.UUID `json:"id"`
	Opponent    string    `json:"opponent"`
	KickoffAt   time.Time `json:"kickoff_at"`
	Venue       string    `json:"venue"`
	Competition string    `json:"competition,omitempty"`
	Status      string    `json:"status"`
	HomeGoals   *int      `json:"home_goals,omitempty"`
	AwayGoals   *int      `json:"away_goals,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// MatchDetailResponse includes the lineup and events of a match
type MatchDetailResponse struct {
	MatchResponse
	Lineup []LineupEntryResponse `json:"lineup"`
	Events []MatchEventResponse  `json:"events"`
}

// ListMatchesQuery represents the supported fixture list filters
type ListMatchesQuery struct {
	Status string
	Venue  string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// CreateMatch creates a new match in scheduled status
func (s *MatchService) CreateMatch(req *CreateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	venue := models.Venue(req.Venue)
	if !venue.IsValid() {
		return nil, apperrors.ErrInvalidVenue
	}

	match := &models.Match{
		Opponent:    req.Opponent,
		KickoffAt:   req.KickoffAt,
		Venue:       venue,
		Competition: req.Competition,
		Status:      models.MatchStatusScheduled,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return convertMatchToResponse(match), nil
}

// GetMatchByID retrieves a match by ID
func (s *MatchService) GetMatchByID(id uuid.UUID) (*MatchResponse, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	return convertMatchToResponse(match), nil
}

// GetMatchWithDetails retrieves a match with its lineup and events
func (s *MatchService) GetMatchWithDetails(id uuid.UUID) (*MatchDetailResponse, error) {
	match, err := s.repo.GetWithDetails(id)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	detail := &MatchDetailResponse{
		MatchResponse: *convertMatchToResponse(match),
		Lineup:        make([]LineupEntryResponse, len(match.LineupEntries)),
		Events:        make([]MatchEventResponse, len(match.Events)),
	}
	for i, entry := range match.LineupEntries {
		detail.Lineup[i] = *convertLineupEntryToResponse(&entry)
	}
	for i, event := range match.Events {
		detail.Events[i] = *convertEventToResponse(&event)
	}

	return detail, nil
}

// ListMatches retrieves matches matching the query
func (s *MatchService) ListMatches(query *ListMatchesQuery) ([]MatchResponse, int64, error) {
	filter := repository.MatchFilter{
		From: query.From,
		To:   query.To,
	}
	if query.Status != "" {
		status := models.MatchStatus(query.Status)
		if !status.IsValid() {
			return nil, 0, apperrors.ErrInvalidMatchStatus
		}
		filter.Status = &status
	}
	if query.Venue != "" {
		venue := models.Venue(query.Venue)
		if !venue.IsValid() {
			return nil, 0, apperrors.ErrInvalidVenue
		}
		filter.Venue = &venue
	}

	matches, total, err := s.repo.List(filter, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i, match := range matches {
		responses[i] = *convertMatchToResponse(&match)
	}

	return responses, total, nil
}

// ListUpcomingMatches retrieves the next scheduled fixtures
func (s *MatchService) ListUpcomingMatches(limit int) ([]MatchResponse, error) {
	matches, err := s.repo.ListUpcoming(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i, match := range matches {
		responses[i] = *convertMatchToResponse(&match)
	}

	return responses, nil
}

// ListResults retrieves played matches, most recent first
func (s *MatchService) ListResults(limit, offset int) ([]MatchResponse, int64, error) {
	matches, total, err := s.repo.ListResults(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list results: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i, match := range matches {
		responses[i] = *convertMatchToResponse(&match)
	}

	return responses, total, nil
}

// UpdateMatch updates an existing match
func (s *MatchService) UpdateMatch(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	if req.Venue != nil {
		venue := models.Venue(*req.Venue)
		if !venue.IsValid() {
			return nil, apperrors.ErrInvalidVenue
		}
		match.Venue = venue
	}
	if req.Status != nil {
		status := models.MatchStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidMatchStatus
		}
		// Dropping back from played clears the recorded score
		if match.Status == models.MatchStatusPlayed && status != models.MatchStatusPlayed {
			match.HomeGoals = nil
			match.AwayGoals = nil
		}
		match.Status = status
	}
	if req.Opponent != nil {
		match.Opponent = *req.Opponent
	}
	if req.KickoffAt != nil {
		match.KickoffAt = *req.KickoffAt
	}
	if req.Competition != nil {
		match.Competition = *req.Competition
	}
	if req.Notes != nil {
		match.Notes = *req.Notes
	}

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return convertMatchToResponse(match), nil
}

// RecordResult sets both scores and marks the match as played
func (s *MatchService) RecordResult(id uuid.UUID, req *RecordResultRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.HomeGoals == nil || req.AwayGoals == nil {
		return nil, apperrors.ErrScoreRequired
	}

	match, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMatchNotFound
	}

	if match.Status == models.MatchStatusCancelled {
		return nil, apperrors.ErrMatchCancelled
	}

	match.HomeGoals = req.HomeGoals
	match.AwayGoals = req.AwayGoals
	match.Status = models.MatchStatusPlayed

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	return convertMatchToResponse(match), nil
}

// DeleteMatch deletes a match and fans out to its lineup and events
func (s *MatchService) DeleteMatch(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match: %w", err)
	}

	if err := s.repo.DeleteWithDependents(id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

func convertMatchToResponse(match *models.Match) *MatchResponse {
	return &MatchResponse{
		ID:          match.ID,
		Opponent:    match.Opponent,
		KickoffAt:   match.KickoffAt,
		Venue:       string(match.Venue),
		Competition: match.Competition,
		Status:      string(match.Status),
		HomeGoals:   match.HomeGoals,
		AwayGoals:   match.AwayGoals,
		Notes:       match.Notes,
		CreatedAt:   match.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   match.UpdatedAt.Format(time.RFC3339),
	}
}
