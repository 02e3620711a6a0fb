package models

import "time"

// Match represents a fixture or played match of the club
type Match struct {
	BaseModel
	Opponent    string      `json:"opponent" gorm:"not null;size:150" validate:"required,max=150"`
	KickoffAt   time.Time   `json:"kickoff_at" gorm:"not null;index" validate:"required"`
	Venue       Venue       `json:"venue" gorm:"type:varchar(10);not null" validate:"required"`
	Competition string      `json:"competition" gorm:"size:100" validate:"max=100"`
	Status      MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	HomeGoals   *int        `json:"home_goals,omitempty" validate:"omitempty,min=0"`
	AwayGoals   *int        `json:"away_goals,omitempty" validate:"omitempty,min=0"`
	Notes       string      `json:"notes" gorm:"size:500" validate:"max=500"`

	// Relationships
	LineupEntries []LineupEntry `json:"lineup_entries,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Events        []MatchEvent  `json:"events,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// HasResult reports whether both scores have been recorded
func (m *Match) HasResult() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}
