package repository

import (
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Create(match).Error
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetWithDetails retrieves a match with its lineup and events preloaded
func (r *MatchRepository) GetWithDetails(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.
		Preload("LineupEntries.Player").
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("minute") }).
		First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// List retrieves matches matching the filter, ordered by kickoff time
func (r *MatchRepository) List(filter MatchFilter, limit, offset int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	query := r.db.Model(&models.Match{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Venue != nil {
		query = query.Where("venue = ?", *filter.Venue)
	}
	if filter.From != nil {
		query = query.Where("kickoff_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("kickoff_at <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("kickoff_at").Limit(limit).Offset(offset).Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

// ListUpcoming retrieves scheduled matches with a kickoff in the future
func (r *MatchRepository) ListUpcoming(limit int) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.
		Where("status = ? AND kickoff_at > ?", models.MatchStatusScheduled, time.Now()).
		Order("kickoff_at").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ListResults retrieves played matches, most recent first
func (r *MatchRepository) ListResults(limit, offset int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	query := r.db.Model(&models.Match{}).Where("status = ?", models.MatchStatusPlayed)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("kickoff_at DESC").Limit(limit).Offset(offset).Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

// Update updates a match
func (r *MatchRepository) Update(match *models.Match) error {
	return r.db.Save(match).Error
}

// DeleteWithDependents deletes a match and fans out to its lineup entries
// and events in one transaction.
func (r *MatchRepository) DeleteWithDependents(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LineupEntry{}, "match_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.MatchEvent{}, "match_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Match{}, "id = ?", id).Error
	})
}
