package models

// UserRole represents the access tier of a user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember:
		return true
	}
	return false
}

// PlayerPosition represents the position a player covers on the pitch
type PlayerPosition string

const (
	PositionGoalkeeper PlayerPosition = "goalkeeper"
	PositionDefender   PlayerPosition = "defender"
	PositionMidfielder PlayerPosition = "midfielder"
	PositionForward    PlayerPosition = "forward"
)

// IsValid checks if the PlayerPosition is valid
func (p PlayerPosition) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusPlayed    MatchStatus = "played"
	MatchStatusPostponed MatchStatus = "postponed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// IsValid checks if the MatchStatus is valid
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusPlayed, MatchStatusPostponed, MatchStatusCancelled:
		return true
	}
	return false
}

// Venue represents where a match is played
type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// IsValid checks if the Venue is valid
func (v Venue) IsValid() bool {
	switch v {
	case VenueHome, VenueAway:
		return true
	}
	return false
}

// LineupRole represents a player's role in a match lineup
type LineupRole string

const (
	LineupRoleStarting   LineupRole = "starting"
	LineupRoleSubstitute LineupRole = "substitute"
)

// IsValid checks if the LineupRole is valid
func (r LineupRole) IsValid() bool {
	switch r {
	case LineupRoleStarting, LineupRoleSubstitute:
		return true
	}
	return false
}

// MatchEventType represents the kind of in-match event being recorded
type MatchEventType string

const (
	EventTypeGoal         MatchEventType = "goal"
	EventTypeAssist       MatchEventType = "assist"
	EventTypeYellowCard   MatchEventType = "yellow_card"
	EventTypeRedCard      MatchEventType = "red_card"
	EventTypeSubstitution MatchEventType = "substitution"
)

// IsValid checks if the MatchEventType is valid
func (t MatchEventType) IsValid() bool {
	switch t {
	case EventTypeGoal, EventTypeAssist, EventTypeYellowCard, EventTypeRedCard, EventTypeSubstitution:
		return true
	}
	return false
}
