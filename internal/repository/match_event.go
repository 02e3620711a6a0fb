package repository

import (
	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchEventRepository handles database operations for match events
type MatchEventRepository struct {
	db *gorm.DB
}

// NewMatchEventRepository creates a new match event repository
func NewMatchEventRepository(db *gorm.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

// Create creates a new match event
func (r *MatchEventRepository) Create(event *models.MatchEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves a match event by ID
func (r *MatchEventRepository) GetByID(id uuid.UUID) (*models.MatchEvent, error) {
	var event models.MatchEvent
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByMatch retrieves all events of a match in minute order
func (r *MatchEventRepository) ListByMatch(matchID uuid.UUID) ([]models.MatchEvent, error) {
	var events []models.MatchEvent
	err := r.db.
		Preload("Player").
		Where("match_id = ?", matchID).
		Order("minute").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListByPlayer retrieves a player's events across matches with pagination
func (r *MatchEventRepository) ListByPlayer(playerID uuid.UUID, limit, offset int) ([]models.MatchEvent, int64, error) {
	var events []models.MatchEvent
	var total int64

	query := r.db.Model(&models.MatchEvent{}).Where("player_id = ?", playerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Match").Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Update updates a match event
func (r *MatchEventRepository) Update(event *models.MatchEvent) error {
	return r.db.Save(event).Error
}

// Delete deletes a match event
func (r *MatchEventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MatchEvent{}, "id = ?", id).Error
}
