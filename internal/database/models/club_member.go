package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"club-registry-backend/internal/eligibility"
	apperrors "club-registry-backend/internal/errors"
)

// ClubMember is the central entity of the registry. Identity fields are
// unique within the club-member table; the membership number is assigned once
// at creation and never reassigned.
type ClubMember struct {
	BaseModel
	FirstName        string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName         string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Birthdate        time.Time `json:"birthdate" gorm:"type:date;not null" validate:"required"`
	SSN              string    `json:"ssn" gorm:"column:ssn;not null;size:20;uniqueIndex" validate:"required,max=20"`
	MedicareNumber   string    `json:"medicare_number" gorm:"not null;size:20;uniqueIndex" validate:"required,max=20"`
	Email            string    `json:"email" gorm:"not null;size:255;uniqueIndex" validate:"required,email,max=255"`
	Phone            string    `json:"phone" gorm:"size:20"`
	Address          string    `json:"address" gorm:"size:200"`
	City             string    `json:"city" gorm:"size:100"`
	Province         string    `json:"province" gorm:"size:100"`
	PostalCode       string    `json:"postal_code" gorm:"size:10"`
	Height           int       `json:"height" validate:"omitempty,min=0"`
	Weight           int       `json:"weight" validate:"omitempty,min=0"`
	LocationID       uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	Active           bool      `json:"active" gorm:"not null;default:true"`
	Minor            bool      `json:"minor" gorm:"not null;default:false"`
	Gender           Gender    `json:"gender" gorm:"type:varchar(1)" validate:"omitempty,oneof=M F"`
	MembershipNumber int64     `json:"membership_number" gorm:"not null;uniqueIndex"`
	JoinedAt         time.Time `json:"joined_at" gorm:"not null"`

	// Dependent rows removed with the member in one transaction boundary.
	Location          *Location               `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Payments          []Payment               `json:"payments,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Assignments       []PlayerAssignment      `json:"player_assignments,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Relationships     []FamilyRelationship    `json:"relationships,omitempty" gorm:"foreignKey:MinorID;constraint:OnDelete:CASCADE"`
	Hobbies           []MemberHobby           `json:"hobbies,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	SecondaryContacts []SecondaryFamilyMember `json:"secondary_contacts,omitempty" gorm:"foreignKey:MinorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ClubMember
func (ClubMember) TableName() string {
	return "club_members"
}

// membershipNumberSeed is the floor below which membership numbers are never
// assigned; the first member gets seed+1.
const membershipNumberSeed = 100000

// BeforeCreate enforces the minimum-age rule at the schema layer and assigns
// the membership number. The rule also runs in the service layer so the
// offending field can be reported, but records built directly against the
// store are rejected here all the same.
func (m *ClubMember) BeforeCreate(tx *gorm.DB) error {
	if err := m.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if err := m.checkBirthdate(time.Now()); err != nil {
		return err
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	if m.MembershipNumber == 0 {
		var current int64
		err := tx.Model(&ClubMember{}).
			Select("COALESCE(MAX(membership_number), ?)", membershipNumberSeed).
			Scan(&current).Error
		if err != nil {
			return err
		}
		m.MembershipNumber = current + 1
	}
	return nil
}

// BeforeUpdate re-validates the birthdate on edits
func (m *ClubMember) BeforeUpdate(tx *gorm.DB) error {
	if m.Birthdate.IsZero() {
		return nil
	}
	return m.checkBirthdate(time.Now())
}

func (m *ClubMember) checkBirthdate(ref time.Time) error {
	if m.Birthdate.After(ref) {
		return apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
	}
	if eligibility.Age(m.Birthdate, ref) < eligibility.MinimumJoinAge {
		return apperrors.NewValidationError("birthdate", "club member must be at least 11 years old")
	}
	return nil
}

// Age returns the member's age in whole years at ref
func (m *ClubMember) Age(ref time.Time) int {
	return eligibility.Age(m.Birthdate, ref)
}

// FullName returns the member's display name
func (m *ClubMember) FullName() string {
	return m.FirstName + " " + m.LastName
}
