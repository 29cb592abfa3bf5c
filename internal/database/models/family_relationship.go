package models

import (
	"time"

	"github.com/google/uuid"
)

// FamilyRelationship links a minor club member to a guardian family member.
// The association is many-to-many: one guardian may sponsor several minors and
// a minor may have several guardians, but each pair appears once.
type FamilyRelationship struct {
	BaseModel
	MinorID          uuid.UUID `json:"minor_id" gorm:"type:uuid;not null;uniqueIndex:idx_minor_guardian" validate:"required"`
	GuardianID       uuid.UUID `json:"guardian_id" gorm:"type:uuid;not null;uniqueIndex:idx_minor_guardian" validate:"required"`
	RelationshipType string    `json:"relationship_type" gorm:"size:30;not null" validate:"required,max=30"`
	IsPrimary        bool      `json:"is_primary" gorm:"not null;default:false"`
	EmergencyContact bool      `json:"emergency_contact" gorm:"not null;default:false"`
	StartDate        time.Time `json:"start_date" gorm:"type:date"`

	Minor    *ClubMember   `json:"minor,omitempty" gorm:"foreignKey:MinorID"`
	Guardian *FamilyMember `json:"guardian,omitempty" gorm:"foreignKey:GuardianID"`
}

// TableName returns the table name for FamilyRelationship
func (FamilyRelationship) TableName() string {
	return "family_relationships"
}
