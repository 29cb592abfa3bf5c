package models

import "github.com/google/uuid"

// PlayerAssignment puts a club member on a team formation at a position.
// A member appears at most once per team.
type PlayerAssignment struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_member" validate:"required"`
	MemberID  uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_member" validate:"required"`
	Position  Position  `json:"position" gorm:"type:varchar(30);not null" validate:"required"`
	IsStarter bool      `json:"is_starter" gorm:"not null;default:false"`

	Team   *SessionTeam `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Member *ClubMember  `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for PlayerAssignment
func (PlayerAssignment) TableName() string {
	return "player_assignments"
}
