package service

import (
	"errors"
	"fmt"
	"time"

	"club-registry-backend/internal/database/models"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailLogService handles business logic for logged communications
type EmailLogService struct {
	repo         repository.EmailLogRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	validator    *validator.Validate
}

// NewEmailLogService creates a new email log service
func NewEmailLogService(repo repository.EmailLogRepositoryInterface, locationRepo repository.LocationRepositoryInterface, validator *validator.Validate) *EmailLogService {
	return &EmailLogService{
		repo:         repo,
		locationRepo: locationRepo,
		validator:    validator,
	}
}

// CreateEmailLogRequest represents the request to log a sent communication
type CreateEmailLogRequest struct {
	SenderLocationID uuid.UUID          `json:"sender_location_id" validate:"required"`
	ReceiverMemberID *uuid.UUID         `json:"receiver_member_id,omitempty"`
	ReceiverEmail    string             `json:"receiver_email" validate:"required,email,max=255"`
	Subject          string             `json:"subject" validate:"required,max=200"`
	BodyPreview      string             `json:"body_preview" validate:"max=100"`
	EmailType        models.EmailType   `json:"email_type" validate:"omitempty,oneof=general session_notification payment_reminder"`
	Status           models.EmailStatus `json:"status" validate:"omitempty,oneof=sent failed"`
	SessionID        *uuid.UUID         `json:"session_id,omitempty"`
	SentAt           *time.Time         `json:"sent_at,omitempty"`
}

// EmailLogResponse represents the response for email log operations
type EmailLogResponse struct {
	ID               uuid.UUID          `json:"id"`
	SenderLocationID uuid.UUID          `json:"sender_location_id"`
	ReceiverMemberID *uuid.UUID         `json:"receiver_member_id,omitempty"`
	ReceiverEmail    string             `json:"receiver_email"`
	Subject          string             `json:"subject"`
	BodyPreview      string             `json:"body_preview"`
	EmailType        models.EmailType   `json:"email_type"`
	Status           models.EmailStatus `json:"status"`
	SessionID        *uuid.UUID         `json:"session_id,omitempty"`
	SentAt           string             `json:"sent_at"`
}

// EmailLogListResponse represents a paginated list of email log entries
type EmailLogListResponse struct {
	Logs     []EmailLogResponse `json:"logs"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create logs a sent communication. The body is truncated to the preview
// column width so the log never stores full message content.
func (s *EmailLogService) Create(req *CreateEmailLogRequest) (*EmailLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.locationRepo.GetByID(req.SenderLocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to verify sender location: %w", err)
	}

	emailType := req.EmailType
	if emailType == "" {
		emailType = models.EmailTypeGeneral
	}
	status := req.Status
	if status == "" {
		status = models.EmailStatusSent
	}
	sentAt := time.Now()
	if req.SentAt != nil {
		sentAt = *req.SentAt
	}

	log := &models.EmailLog{
		SenderLocationID: req.SenderLocationID,
		ReceiverMemberID: req.ReceiverMemberID,
		ReceiverEmail:    req.ReceiverEmail,
		Subject:          req.Subject,
		BodyPreview:      req.BodyPreview,
		EmailType:        emailType,
		Status:           status,
		SessionID:        req.SessionID,
		SentAt:           sentAt,
	}

	if err := s.repo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create email log: %w", err)
	}

	return s.toResponse(log), nil
}

// GetByID retrieves an email log entry
func (s *EmailLogService) GetByID(id uuid.UUID) (*EmailLogResponse, error) {
	log, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailLogNotFound
		}
		return nil, fmt.Errorf("failed to get email log: %w", err)
	}

	return s.toResponse(log), nil
}

// GetAll retrieves email log entries with pagination, newest first
func (s *EmailLogService) GetAll(page, pageSize int) (*EmailLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	logs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get email logs: %w", err)
	}

	responses := make([]EmailLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = *s.toResponse(&l)
	}

	return &EmailLogListResponse{
		Logs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete deletes an email log entry
func (s *EmailLogService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailLogNotFound
		}
		return fmt.Errorf("failed to get email log: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete email log: %w", err)
	}

	return nil
}

func (s *EmailLogService) toResponse(log *models.EmailLog) *EmailLogResponse {
	return &EmailLogResponse{
		ID:               log.ID,
		SenderLocationID: log.SenderLocationID,
		ReceiverMemberID: log.ReceiverMemberID,
		ReceiverEmail:    log.ReceiverEmail,
		Subject:          log.Subject,
		BodyPreview:      log.BodyPreview,
		EmailType:        log.EmailType,
		Status:           log.Status,
		SessionID:        log.SessionID,
		SentAt:           log.SentAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
