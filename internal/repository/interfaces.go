package repository

import (
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(role *models.UserRole, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	CountActiveAdmins() (int64, error)
}

// PlayerFilter narrows player list queries
type PlayerFilter struct {
	Position *models.PlayerPosition
	Active   *bool
	Query    string
	SortBy   string // "name" or "jersey_number"
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	List(filter PlayerFilter, limit, offset int) ([]models.Player, int64, error)
	GetActiveByJerseyNumber(number int) (*models.Player, error)
	Update(player *models.Player) error
	DeleteWithDependents(id uuid.UUID) error
}

// MatchFilter narrows match list queries
type MatchFilter struct {
	Status *models.MatchStatus
	Venue  *models.Venue
	From   *time.Time
	To     *time.Time
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetWithDetails(id uuid.UUID) (*models.Match, error)
	List(filter MatchFilter, limit, offset int) ([]models.Match, int64, error)
	ListUpcoming(limit int) ([]models.Match, error)
	ListResults(limit, offset int) ([]models.Match, int64, error)
	Update(match *models.Match) error
	DeleteWithDependents(id uuid.UUID) error
}

// LineupEntryRepositoryInterface defines the interface for lineup repository operations
type LineupEntryRepositoryInterface interface {
	Create(entry *models.LineupEntry) error
	GetByID(id uuid.UUID) (*models.LineupEntry, error)
	GetByMatchAndPlayer(matchID, playerID uuid.UUID) (*models.LineupEntry, error)
	ListByMatch(matchID uuid.UUID) ([]models.LineupEntry, error)
	CountStarting(matchID uuid.UUID) (int64, error)
	Update(entry *models.LineupEntry) error
	Delete(id uuid.UUID) error
}

// MatchEventRepositoryInterface defines the interface for match event repository operations
type MatchEventRepositoryInterface interface {
	Create(event *models.MatchEvent) error
	GetByID(id uuid.UUID) (*models.MatchEvent, error)
	ListByMatch(matchID uuid.UUID) ([]models.MatchEvent, error)
	ListByPlayer(playerID uuid.UUID, limit, offset int) ([]models.MatchEvent, int64, error)
	Update(event *models.MatchEvent) error
	Delete(id uuid.UUID) error
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(announcement *models.Announcement) error
	GetByID(id uuid.UUID) (*models.Announcement, error)
	List(pinned *bool, limit, offset int) ([]models.Announcement, int64, error)
	Update(announcement *models.Announcement) error
	Delete(id uuid.UUID) error
}

// GalleryPhotoRepositoryInterface defines the interface for gallery repository operations
type GalleryPhotoRepositoryInterface interface {
	Create(photo *models.GalleryPhoto) error
	GetByID(id uuid.UUID) (*models.GalleryPhoto, error)
	List(limit, offset int) ([]models.GalleryPhoto, int64, error)
	Update(photo *models.GalleryPhoto) error
	Delete(id uuid.UUID) error
}
