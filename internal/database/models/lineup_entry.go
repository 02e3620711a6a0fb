package models

import "github.com/google/uuid"

// LineupEntry represents a player's inclusion in a match lineup.
// The shirt number is snapshotted so historical lineups survive roster changes.
type LineupEntry struct {
	BaseModel
	MatchID     uuid.UUID  `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_lineup_match_player" validate:"required"`
	PlayerID    uuid.UUID  `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_lineup_match_player" validate:"required"`
	Role        LineupRole `json:"role" gorm:"type:varchar(20);not null;default:'starting'"`
	ShirtNumber int        `json:"shirt_number" gorm:"not null" validate:"required,min=1,max=99"`

	// Relationships
	Match  Match  `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Player Player `json:"player,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LineupEntry
func (LineupEntry) TableName() string {
	return "lineup_entries"
}
