package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a scheduled training or game event. One session can host several
// team formations (both sides of a game are formations of the same session).
type Session struct {
	BaseModel
	Type       SessionType   `json:"type" gorm:"type:varchar(10);not null" validate:"required,oneof=training game"`
	StartsAt   time.Time     `json:"starts_at" gorm:"not null;index" validate:"required"`
	Address    string        `json:"address" gorm:"size:200"`
	City       string        `json:"city" gorm:"size:100"`
	Province   string        `json:"province" gorm:"size:100"`
	PostalCode string        `json:"postal_code" gorm:"size:10"`
	Status     SessionStatus `json:"status" gorm:"type:varchar(10);not null;default:'scheduled'" validate:"required,oneof=scheduled completed cancelled"`

	Teams []SessionTeam `json:"teams,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// SessionTeam is one team formation fielded for a session: roster metadata,
// head coach and, for games, the final score.
type SessionTeam struct {
	BaseModel
	SessionID   uuid.UUID `json:"session_id" gorm:"type:uuid;not null;uniqueIndex:idx_session_team_number" validate:"required"`
	TeamNumber  int       `json:"team_number" gorm:"not null;uniqueIndex:idx_session_team_number" validate:"required,min=1"`
	TeamName    string    `json:"team_name" gorm:"not null;size:100" validate:"required,max=100"`
	LocationID  uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	HeadCoachID uuid.UUID `json:"head_coach_id" gorm:"type:uuid;not null;index" validate:"required"`
	Gender      Gender    `json:"gender" gorm:"type:varchar(1)" validate:"omitempty,oneof=M F"`
	Score       *int      `json:"score,omitempty"`

	Session   *Session           `json:"session,omitempty" gorm:"foreignKey:SessionID"`
	Location  *Location          `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	HeadCoach *Personnel         `json:"head_coach,omitempty" gorm:"foreignKey:HeadCoachID"`
	Players   []PlayerAssignment `json:"players,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SessionTeam
func (SessionTeam) TableName() string {
	return "session_teams"
}
