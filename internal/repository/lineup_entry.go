package repository

import (
	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineupEntryRepository handles database operations for lineup entries
type LineupEntryRepository struct {
	db *gorm.DB
}

// NewLineupEntryRepository creates a new lineup entry repository
func NewLineupEntryRepository(db *gorm.DB) *LineupEntryRepository {
	return &LineupEntryRepository{db: db}
}

// Create creates a new lineup entry
func (r *LineupEntryRepository) Create(entry *models.LineupEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a lineup entry by ID
func (r *LineupEntryRepository) GetByID(id uuid.UUID) (*models.LineupEntry, error) {
	var entry models.LineupEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByMatchAndPlayer retrieves the entry for a player in a match, if any
func (r *LineupEntryRepository) GetByMatchAndPlayer(matchID, playerID uuid.UUID) (*models.LineupEntry, error) {
	var entry models.LineupEntry
	err := r.db.First(&entry, "match_id = ? AND player_id = ?", matchID, playerID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByMatch retrieves the full lineup for a match, starters first
func (r *LineupEntryRepository) ListByMatch(matchID uuid.UUID) ([]models.LineupEntry, error) {
	var entries []models.LineupEntry
	err := r.db.
		Preload("Player").
		Where("match_id = ?", matchID).
		Order("role, shirt_number").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CountStarting counts the starting entries for a match
func (r *LineupEntryRepository) CountStarting(matchID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.LineupEntry{}).
		Where("match_id = ? AND role = ?", matchID, models.LineupRoleStarting).
		Count(&total).Error
	return total, err
}

// Update updates a lineup entry
func (r *LineupEntryRepository) Update(entry *models.LineupEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a lineup entry
func (r *LineupEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LineupEntry{}, "id = ?", id).Error
}
