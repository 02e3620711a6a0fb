package models

import "github.com/google/uuid"

// MatchEvent represents an in-match occurrence such as a goal or a card.
// PlayerID is optional so events without a club player (own goals,
// unattributed substitutions) can still be recorded.
type MatchEvent struct {
	BaseModel
	MatchID  uuid.UUID      `json:"match_id" gorm:"type:uuid;not null;index" validate:"required"`
	PlayerID *uuid.UUID     `json:"player_id,omitempty" gorm:"type:uuid;index"`
	Type     MatchEventType `json:"type" gorm:"type:varchar(20);not null"`
	Minute   int            `json:"minute" gorm:"not null" validate:"min=0,max=120"`
	Detail   string         `json:"detail" gorm:"size:300" validate:"max=300"`

	// Relationships
	Match  Match   `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for MatchEvent
func (MatchEvent) TableName() string {
	return "match_events"
}
