package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a fee installment or donation recorded against a club member.
// The expected fee is derived from the member's stored minor flag; any
// overpayment is reported as a donation, not stored separately.
type Payment struct {
	BaseModel
	MemberID          uuid.UUID     `json:"member_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount            float64       `json:"amount" gorm:"type:numeric(8,2);not null" validate:"required,gt=0"`
	PaymentDate       time.Time     `json:"payment_date" gorm:"type:date;not null" validate:"required"`
	Method            PaymentMethod `json:"method" gorm:"type:varchar(10);not null" validate:"required,oneof=cash credit debit cheque"`
	MembershipYear    int           `json:"membership_year" gorm:"not null;index" validate:"required,min=1900"`
	PaymentType       PaymentType   `json:"payment_type" gorm:"type:varchar(15);not null;default:'membership'" validate:"required,oneof=membership donation"`
	InstallmentNumber int           `json:"installment_number" gorm:"not null;default:1" validate:"min=1,max=4"`

	Member *ClubMember `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
