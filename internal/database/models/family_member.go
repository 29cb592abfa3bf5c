package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "club-registry-backend/internal/errors"
)

// FamilyMember is an adult contact associated with a location, typically the
// guardian of one or more minor club members.
type FamilyMember struct {
	BaseModel
	FirstName      string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Birthdate      time.Time `json:"birthdate" gorm:"type:date;not null" validate:"required"`
	SSN            string    `json:"ssn" gorm:"column:ssn;not null;size:20;uniqueIndex" validate:"required,max=20"`
	MedicareNumber string    `json:"medicare_number" gorm:"not null;size:20;uniqueIndex" validate:"required,max=20"`
	Email          string    `json:"email" gorm:"not null;size:255;uniqueIndex" validate:"required,email,max=255"`
	Phone          string    `json:"phone" gorm:"size:20"`
	Address        string    `json:"address" gorm:"size:200"`
	City           string    `json:"city" gorm:"size:100"`
	Province       string    `json:"province" gorm:"size:100"`
	PostalCode     string    `json:"postal_code" gorm:"size:10"`
	LocationID     uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`

	Location          *Location            `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	SecondaryContacts []SecondaryFamilyMember `json:"secondary_contacts,omitempty" gorm:"foreignKey:PrimaryFamilyMemberID;constraint:OnDelete:CASCADE"`
	Relationships     []FamilyRelationship    `json:"relationships,omitempty" gorm:"foreignKey:GuardianID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FamilyMember
func (FamilyMember) TableName() string {
	return "family_members"
}

// BeforeCreate validates the birthdate at the schema layer
func (f *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if err := f.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	return f.checkBirthdate(time.Now())
}

// BeforeUpdate re-validates the birthdate on edits
func (f *FamilyMember) BeforeUpdate(tx *gorm.DB) error {
	if f.Birthdate.IsZero() {
		return nil
	}
	return f.checkBirthdate(time.Now())
}

func (f *FamilyMember) checkBirthdate(ref time.Time) error {
	if f.Birthdate.After(ref) {
		return apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
	}
	return nil
}

// SecondaryFamilyMember is an emergency or secondary contact attached to a
// primary family member, for a specific minor club member.
type SecondaryFamilyMember struct {
	BaseModel
	PrimaryFamilyMemberID uuid.UUID `json:"primary_family_member_id" gorm:"type:uuid;not null;index" validate:"required"`
	MinorID               uuid.UUID `json:"minor_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName             string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName              string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone                 string    `json:"phone" gorm:"size:20"`
	RelationshipType      string    `json:"relationship_type" gorm:"size:30" validate:"max=30"`

	PrimaryFamilyMember *FamilyMember `json:"primary_family_member,omitempty" gorm:"foreignKey:PrimaryFamilyMemberID"`
	Minor               *ClubMember   `json:"minor,omitempty" gorm:"foreignKey:MinorID"`
}

// TableName returns the table name for SecondaryFamilyMember
func (SecondaryFamilyMember) TableName() string {
	return "secondary_family_members"
}
