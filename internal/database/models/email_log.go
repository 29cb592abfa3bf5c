package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailLog records a communication sent from a location, optionally tied to a
// receiving member and a session.
type EmailLog struct {
	BaseModel
	SenderLocationID uuid.UUID   `json:"sender_location_id" gorm:"type:uuid;not null;index" validate:"required"`
	ReceiverMemberID *uuid.UUID  `json:"receiver_member_id,omitempty" gorm:"type:uuid;index"`
	ReceiverEmail    string      `json:"receiver_email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Subject          string      `json:"subject" gorm:"not null;size:200" validate:"required,max=200"`
	BodyPreview      string      `json:"body_preview" gorm:"size:100" validate:"max=100"`
	EmailType        EmailType   `json:"email_type" gorm:"type:varchar(25);not null;default:'general'" validate:"required,oneof=general session_notification payment_reminder"`
	Status           EmailStatus `json:"status" gorm:"type:varchar(10);not null;default:'sent'" validate:"required,oneof=sent failed"`
	SessionID        *uuid.UUID  `json:"session_id,omitempty" gorm:"type:uuid;index"`
	SentAt           time.Time   `json:"sent_at" gorm:"not null"`

	SenderLocation *Location   `json:"sender_location,omitempty" gorm:"foreignKey:SenderLocationID"`
	ReceiverMember *ClubMember `json:"receiver_member,omitempty" gorm:"foreignKey:ReceiverMemberID;constraint:OnDelete:SET NULL"`
	Session        *Session    `json:"session,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for EmailLog
func (EmailLog) TableName() string {
	return "email_logs"
}
