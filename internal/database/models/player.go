package models

import "time"

// Player represents a member of the club roster
type Player struct {
	BaseModel
	FirstName    string         `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string         `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	JerseyNumber int            `json:"jersey_number" gorm:"not null;index" validate:"required,min=1,max=99"`
	Position     PlayerPosition `json:"position" gorm:"type:varchar(20);not null" validate:"required"`
	DateOfBirth  *time.Time     `json:"date_of_birth,omitempty"`
	HeightCM     *int           `json:"height_cm,omitempty" validate:"omitempty,min=100,max=230"`
	WeightKG     *int           `json:"weight_kg,omitempty" validate:"omitempty,min=40,max=150"`
	PhotoURL     string         `json:"photo_url" gorm:"size:500"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`

	// Relationships
	LineupEntries []LineupEntry `json:"lineup_entries,omitempty" gorm:"foreignKey:PlayerID"`
	MatchEvents   []MatchEvent  `json:"match_events,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// FullName returns the player's display name
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
