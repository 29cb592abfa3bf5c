package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailLogRepository handles database operations for logged communications
type EmailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository creates a new email log repository
func NewEmailLogRepository(db *gorm.DB) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

// Create creates a new email log entry
func (r *EmailLogRepository) Create(log *models.EmailLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves an email log entry by ID
func (r *EmailLogRepository) GetByID(id uuid.UUID) (*models.EmailLog, error) {
	var log models.EmailLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetAll retrieves email log entries, newest first
func (r *EmailLogRepository) GetAll(limit, offset int) ([]models.EmailLog, int64, error) {
	var logs []models.EmailLog
	var total int64

	if err := r.db.Model(&models.EmailLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("sent_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Delete deletes an email log entry
func (r *EmailLogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EmailLog{}, "id = ?", id).Error
}
