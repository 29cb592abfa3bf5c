package service

import (
	"errors"
	"fmt"
	"time"

	"club-registry-backend/internal/database/models"
	"club-registry-backend/internal/eligibility"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService handles business logic for membership payments and donations
type PaymentService struct {
	repo       repository.PaymentRepositoryInterface
	memberRepo repository.ClubMemberRepositoryInterface
	validator  *validator.Validate
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo repository.PaymentRepositoryInterface, memberRepo repository.ClubMemberRepositoryInterface, validator *validator.Validate) *PaymentService {
	return &PaymentService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	Amount            float64              `json:"amount" validate:"required,gt=0"`
	PaymentDate       time.Time            `json:"payment_date" validate:"required"`
	Method            models.PaymentMethod `json:"method" validate:"required,oneof=cash credit debit cheque"`
	MembershipYear    int                  `json:"membership_year" validate:"required,min=1900"`
	PaymentType       models.PaymentType   `json:"payment_type" validate:"omitempty,oneof=membership donation"`
	InstallmentNumber int                  `json:"installment_number" validate:"omitempty,min=1,max=4"`
}

// UpdatePaymentRequest represents the request to correct a payment record
type UpdatePaymentRequest struct {
	Amount            *float64              `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentDate       *time.Time            `json:"payment_date,omitempty"`
	Method            *models.PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=cash credit debit cheque"`
	MembershipYear    *int                  `json:"membership_year,omitempty" validate:"omitempty,min=1900"`
	PaymentType       *models.PaymentType   `json:"payment_type,omitempty" validate:"omitempty,oneof=membership donation"`
	InstallmentNumber *int                  `json:"installment_number,omitempty" validate:"omitempty,min=1,max=4"`
}

// PaymentResponse represents the response for payment operations
type PaymentResponse struct {
	ID                uuid.UUID            `json:"id"`
	MemberID          uuid.UUID            `json:"member_id"`
	Amount            float64              `json:"amount"`
	PaymentDate       string               `json:"payment_date"`
	Method            models.PaymentMethod `json:"method"`
	MembershipYear    int                  `json:"membership_year"`
	PaymentType       models.PaymentType   `json:"payment_type"`
	InstallmentNumber int                  `json:"installment_number"`
	CreatedAt         string               `json:"created_at"`
}

// PaymentSummaryResponse is a member's fee position for one membership year.
// The donation is the overpaid portion of the expected annual fee, derived on
// the fly, never stored.
type PaymentSummaryResponse struct {
	MemberID       uuid.UUID         `json:"member_id"`
	MembershipYear int               `json:"membership_year"`
	AnnualFee      float64           `json:"annual_fee"`
	TotalPaid      float64           `json:"total_paid"`
	Balance        float64           `json:"balance"`
	Donation       float64           `json:"donation"`
	Payments       []PaymentResponse `json:"payments"`
}

// Create records a payment against a club member
func (s *PaymentService) Create(memberID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypeMembership
	}
	installment := req.InstallmentNumber
	if installment == 0 {
		installment = 1
	}

	payment := &models.Payment{
		MemberID:          memberID,
		Amount:            req.Amount,
		PaymentDate:       req.PaymentDate,
		Method:            req.Method,
		MembershipYear:    req.MembershipYear,
		PaymentType:       paymentType,
		InstallmentNumber: installment,
	}

	if err := s.repo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return paymentToResponse(payment), nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return paymentToResponse(payment), nil
}

// GetByMember retrieves a member's payments, newest first
func (s *PaymentService) GetByMember(memberID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}

	payments, err := s.repo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = *paymentToResponse(&p)
	}
	return responses, nil
}

// GetSummary computes a member's fee position for a membership year. The
// expected fee is keyed by the stored minor flag; a negative balance never
// shows, overpayment shows as donation instead.
func (s *PaymentService) GetSummary(memberID uuid.UUID, year int) (*PaymentSummaryResponse, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}

	payments, err := s.repo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	fee := eligibility.AnnualFee(member.Minor)

	var totalPaid float64
	var yearPayments []PaymentResponse
	for _, p := range payments {
		if p.MembershipYear != year {
			continue
		}
		totalPaid += p.Amount
		yearPayments = append(yearPayments, *paymentToResponse(&p))
	}

	balance := fee - totalPaid
	if balance < 0 {
		balance = 0
	}

	return &PaymentSummaryResponse{
		MemberID:       memberID,
		MembershipYear: year,
		AnnualFee:      fee,
		TotalPaid:      totalPaid,
		Balance:        balance,
		Donation:       eligibility.Donation(totalPaid, fee),
		Payments:       yearPayments,
	}, nil
}

// Update corrects a payment record
func (s *PaymentService) Update(id uuid.UUID, req *UpdatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	payment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.MembershipYear != nil {
		payment.MembershipYear = *req.MembershipYear
	}
	if req.PaymentType != nil {
		payment.PaymentType = *req.PaymentType
	}
	if req.InstallmentNumber != nil {
		payment.InstallmentNumber = *req.InstallmentNumber
	}

	if err := s.repo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return paymentToResponse(payment), nil
}

// Delete deletes a payment record
func (s *PaymentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to get payment: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}

func paymentToResponse(payment *models.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:                payment.ID,
		MemberID:          payment.MemberID,
		Amount:            payment.Amount,
		PaymentDate:       payment.PaymentDate.Format("2006-01-02"),
		Method:            payment.Method,
		MembershipYear:    payment.MembershipYear,
		PaymentType:       payment.PaymentType,
		InstallmentNumber: payment.InstallmentNumber,
		CreatedAt:         payment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
