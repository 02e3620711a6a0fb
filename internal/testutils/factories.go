package testutils

import (
	"fmt"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values.
// The account password is always "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique per instance so email uniqueness never collides across tests
		Email:        fmt.Sprintf("%s.%s@sanbitufc.test", gofakeit.FirstName(), id.String()[:8]),
		PasswordHash: string(hash),
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         models.UserRoleMember,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Admin creates an active administrator account
func (f *UserFactory) Admin() *models.User {
	return f.WithRole(models.UserRoleAdmin)
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct {
	nextNumber int
}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{nextNumber: 1}
}

// Create creates a test Player with default values.
// Jersey numbers increment so active-roster uniqueness holds within a factory.
func (f *PlayerFactory) Create() *models.Player {
	number := f.nextNumber
	f.nextNumber++
	if f.nextNumber > 99 {
		f.nextNumber = 1
	}

	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		JerseyNumber: number,
		Position:     models.PositionMidfielder,
		IsActive:     true,
	}
}

// WithPosition sets a custom position for the player
func (f *PlayerFactory) WithPosition(position models.PlayerPosition) *models.Player {
	player := f.Create()
	player.Position = position
	return player
}

// WithJerseyNumber sets a custom jersey number for the player
func (f *PlayerFactory) WithJerseyNumber(number int) *models.Player {
	player := f.Create()
	player.JerseyNumber = number
	return player
}

// Inactive creates a player who has left the active roster
func (f *PlayerFactory) Inactive() *models.Player {
	player := f.Create()
	player.IsActive = false
	return player
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a scheduled test Match kicking off in a week
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Opponent:    gofakeit.City() + " FC",
		KickoffAt:   time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second),
		Venue:       models.VenueHome,
		Competition: "League",
		Status:      models.MatchStatusScheduled,
	}
}

// WithKickoff sets a custom kickoff time for the match
func (f *MatchFactory) WithKickoff(kickoffAt time.Time) *models.Match {
	match := f.Create()
	match.KickoffAt = kickoffAt
	return match
}

// WithVenue sets a custom venue for the match
func (f *MatchFactory) WithVenue(venue models.Venue) *models.Match {
	match := f.Create()
	match.Venue = venue
	return match
}

// Played creates a match already played with the given score
func (f *MatchFactory) Played(homeGoals, awayGoals int) *models.Match {
	match := f.Create()
	match.KickoffAt = time.Now().Add(-7 * 24 * time.Hour).Truncate(time.Second)
	match.Status = models.MatchStatusPlayed
	match.HomeGoals = &homeGoals
	match.AwayGoals = &awayGoals
	return match
}

// LineupEntryFactory provides methods to create test LineupEntry data
type LineupEntryFactory struct{}

// NewLineupEntryFactory creates a new LineupEntryFactory
func NewLineupEntryFactory() *LineupEntryFactory {
	return &LineupEntryFactory{}
}

// Create creates a starting lineup entry linking the given match and player
func (f *LineupEntryFactory) Create(matchID, playerID uuid.UUID, shirtNumber int) *models.LineupEntry {
	return &models.LineupEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MatchID:     matchID,
		PlayerID:    playerID,
		Role:        models.LineupRoleStarting,
		ShirtNumber: shirtNumber,
	}
}

// Substitute creates a substitute lineup entry
func (f *LineupEntryFactory) Substitute(matchID, playerID uuid.UUID, shirtNumber int) *models.LineupEntry {
	entry := f.Create(matchID, playerID, shirtNumber)
	entry.Role = models.LineupRoleSubstitute
	return entry
}

// MatchEventFactory provides methods to create test MatchEvent data
type MatchEventFactory struct{}

// NewMatchEventFactory creates a new MatchEventFactory
func NewMatchEventFactory() *MatchEventFactory {
	return &MatchEventFactory{}
}

// Goal creates a goal event for the given match and player
func (f *MatchEventFactory) Goal(matchID uuid.UUID, playerID *uuid.UUID, minute int) *models.MatchEvent {
	return &models.MatchEvent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MatchID:  matchID,
		PlayerID: playerID,
		Type:     models.EventTypeGoal,
		Minute:   minute,
	}
}

// WithType creates an event of an arbitrary type
func (f *MatchEventFactory) WithType(matchID uuid.UUID, playerID *uuid.UUID, eventType models.MatchEventType, minute int) *models.MatchEvent {
	event := f.Goal(matchID, playerID, minute)
	event.Type = eventType
	return event
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a test Announcement with default values
func (f *AnnouncementFactory) Create() *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       gofakeit.Sentence(4),
		Body:        gofakeit.Paragraph(1, 3, 10, " "),
		Pinned:      false,
		PublishedAt: time.Now().Truncate(time.Second),
	}
}

// Pinned creates a pinned announcement
func (f *AnnouncementFactory) Pinned() *models.Announcement {
	announcement := f.Create()
	announcement.Pinned = true
	return announcement
}

// GalleryPhotoFactory provides methods to create test GalleryPhoto data
type GalleryPhotoFactory struct{}

// NewGalleryPhotoFactory creates a new GalleryPhotoFactory
func NewGalleryPhotoFactory() *GalleryPhotoFactory {
	return &GalleryPhotoFactory{}
}

// Create creates a test GalleryPhoto with default values
func (f *GalleryPhotoFactory) Create() *models.GalleryPhoto {
	id := uuid.New()
	return &models.GalleryPhoto{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:        gofakeit.Sentence(3),
		Caption:      gofakeit.Sentence(6),
		ImageURL:     "https://images.sanbitufc.test/" + id.String() + ".jpg",
		ThumbnailURL: "https://images.sanbitufc.test/" + id.String() + "_thumb.jpg",
		DeleteURL:    "https://images.sanbitufc.test/delete/" + id.String(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Player       *PlayerFactory
	Match        *MatchFactory
	LineupEntry  *LineupEntryFactory
	MatchEvent   *MatchEventFactory
	Announcement *AnnouncementFactory
	GalleryPhoto *GalleryPhotoFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Player:       NewPlayerFactory(),
		Match:        NewMatchFactory(),
		LineupEntry:  NewLineupEntryFactory(),
		MatchEvent:   NewMatchEventFactory(),
		Announcement: NewAnnouncementFactory(),
		GalleryPhoto: NewGalleryPhotoFactory(),
	}
}

// CreateMatchDay creates a played match with a starting player and a goal event
func (fs *FactorySet) CreateMatchDay() (*models.Match, *models.Player, *models.LineupEntry, *models.MatchEvent) {
	match := fs.Match.Played(2, 1)
	player := fs.Player.Create()
	entry := fs.LineupEntry.Create(match.ID, player.ID, player.JerseyNumber)
	event := fs.MatchEvent.Goal(match.ID, &player.ID, 27)
	return match, player, entry, event
}
