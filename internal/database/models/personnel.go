package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "club-registry-backend/internal/errors"
)

// Personnel represents an employee or volunteer of the club. Identity fields
// are unique within the personnel table.
type Personnel struct {
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

	// Role history. Head-coach references from session teams restrict deletion.
	Assignments []PersonnelAssignment `json:"assignments,omitempty" gorm:"foreignKey:PersonnelID;constraint:OnDelete:CASCADE"`
	Teams       []SessionTeam         `json:"teams,omitempty" gorm:"foreignKey:HeadCoachID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Personnel
func (Personnel) TableName() string {
	return "personnel"
}

// BeforeCreate validates the birthdate at the schema layer
func (p *Personnel) BeforeCreate(tx *gorm.DB) error {
	if err := p.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	return p.checkBirthdate(time.Now())
}

// BeforeUpdate re-validates the birthdate on edits
func (p *Personnel) BeforeUpdate(tx *gorm.DB) error {
	if p.Birthdate.IsZero() {
		return nil
	}
	return p.checkBirthdate(time.Now())
}

func (p *Personnel) checkBirthdate(ref time.Time) error {
	if p.Birthdate.After(ref) {
		return apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
	}
	return nil
}

// PersonnelAssignment is one entry in a personnel's role history at a
// location: role, mandate and the period it covers. A nil end date marks the
// current assignment.
type PersonnelAssignment struct {
	BaseModel
	PersonnelID uuid.UUID      `json:"personnel_id" gorm:"type:uuid;not null;index" validate:"required"`
	LocationID  uuid.UUID      `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	Role        AssignmentRole `json:"role" gorm:"type:varchar(30);not null" validate:"required"`
	Mandate     Mandate        `json:"mandate" gorm:"type:varchar(20);not null;default:'salaried'" validate:"required,oneof=salaried volunteer"`
	StartDate   time.Time      `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate     *time.Time     `json:"end_date,omitempty" gorm:"type:date"`

	Personnel *Personnel `json:"personnel,omitempty" gorm:"foreignKey:PersonnelID"`
	Location  *Location  `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName returns the table name for PersonnelAssignment
func (PersonnelAssignment) TableName() string {
	return "personnel_assignments"
}

// IsCurrent reports whether the assignment has no end date
func (a *PersonnelAssignment) IsCurrent() bool {
	return a.EndDate == nil
}
