package models

import "github.com/google/uuid"

// Hobby is a named activity members can be associated with
type Hobby struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:50;uniqueIndex" validate:"required,max=50"`

	Members []MemberHobby `json:"members,omitempty" gorm:"foreignKey:HobbyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Hobby
func (Hobby) TableName() string {
	return "hobbies"
}

// MemberHobby links a club member to a hobby; one link per pair
type MemberHobby struct {
	BaseModel
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_member_hobby" validate:"required"`
	HobbyID  uuid.UUID `json:"hobby_id" gorm:"type:uuid;not null;uniqueIndex:idx_member_hobby" validate:"required"`

	Member *ClubMember `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Hobby  *Hobby      `json:"hobby,omitempty" gorm:"foreignKey:HobbyID"`
}

// TableName returns the table name for MemberHobby
func (MemberHobby) TableName() string {
	return "member_hobbies"
}
