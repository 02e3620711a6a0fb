package repository

import (
	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// List retrieves players matching the filter with pagination
func (r *PlayerRepository) List(filter PlayerFilter, limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	query := r.db.Model(&models.Player{})
	if filter.Position != nil {
		query = query.Where("position = ?", *filter.Position)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case "jersey_number":
		query = query.Order("jersey_number")
	default:
		query = query.Order("last_name, first_name")
	}

	err := query.Limit(limit).Offset(offset).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// GetActiveByJerseyNumber retrieves the active player wearing the given number
func (r *PlayerRepository) GetActiveByJerseyNumber(number int) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "jersey_number = ? AND is_active = ?", number, true).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// DeleteWithDependents deletes a player together with their lineup entries
// and detaches them from recorded match events, all in one transaction.
func (r *PlayerRepository) DeleteWithDependents(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LineupEntry{}, "player_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MatchEvent{}).Where("player_id = ?", id).Update("player_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, "id = ?", id).Error
	})
}
