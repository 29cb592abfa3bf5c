package models

// Location represents a club facility, either the head office or a branch.
// Personnel assignments, members, family members and session teams all hang
// off a location.
type Location struct {
	BaseModel
	Name       string       `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	Type       LocationType `json:"type" gorm:"type:varchar(10);not null;default:'branch'" validate:"required,oneof=head branch"`
	Address    string       `json:"address" gorm:"size:200"`
	City       string       `json:"city" gorm:"size:100;index"`
	Province   string       `json:"province" gorm:"size:100;index"`
	PostalCode string       `json:"postal_code" gorm:"size:10"`
	Phone      string       `json:"phone" gorm:"size:20"`
	WebAddress string       `json:"web_address" gorm:"size:200"`
	Capacity   int          `json:"capacity"`

	// Relationships. Members, family members and teams block deletion of the
	// location; assignment history goes with it.
	Assignments   []PersonnelAssignment `json:"assignments,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Members       []ClubMember          `json:"members,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
	FamilyMembers []FamilyMember        `json:"family_members,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
	Teams         []SessionTeam         `json:"teams,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
