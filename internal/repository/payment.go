package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByMember retrieves a member's payments, newest first
func (r *PaymentRepository) GetByMember(memberID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("member_id = ?", memberID).
		Order("payment_date DESC, installment_number DESC").
		Find(&payments).Error
	return payments, err
}

// TotalPaidForYear sums a member's payments recorded against a membership year
func (r *PaymentRepository) TotalPaidForYear(memberID uuid.UUID, year int) (float64, error) {
	var total float64
	err := r.db.Model(&models.Payment{}).
		Where("member_id = ? AND membership_year = ?", memberID, year).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// Update updates a payment
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// Delete deletes a payment
func (r *PaymentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Payment{}, "id = ?", id).Error
}
