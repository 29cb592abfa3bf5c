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

// ClubMemberService handles business logic for club members
type ClubMemberService struct {
	repo         repository.ClubMemberRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	validator    *validator.Validate
}

// NewClubMemberService creates a new club member service
func NewClubMemberService(repo repository.ClubMemberRepositoryInterface, locationRepo repository.LocationRepositoryInterface, validator *validator.Validate) *ClubMemberService {
	return &ClubMemberService{
		repo:         repo,
		locationRepo: locationRepo,
		validator:    validator,
	}
}

// CreateClubMemberRequest represents the request to register a club member
type CreateClubMemberRequest struct {
	FirstName      string        `json:"first_name" validate:"required,max=100"`
	LastName       string        `json:"last_name" validate:"required,max=100"`
	Birthdate      time.Time     `json:"birthdate" validate:"required"`
	SSN            string        `json:"ssn" validate:"required,max=20"`
	MedicareNumber string        `json:"medicare_number" validate:"required,max=20"`
	Email          string        `json:"email" validate:"required,email,max=255"`
	Phone          string        `json:"phone" validate:"max=20"`
	Address        string        `json:"address" validate:"max=200"`
	City           string        `json:"city" validate:"max=100"`
	Province       string        `json:"province" validate:"max=100"`
	PostalCode     string        `json:"postal_code" validate:"max=10"`
	Height         int           `json:"height" validate:"omitempty,min=0"`
	Weight         int           `json:"weight" validate:"omitempty,min=0"`
	LocationID     uuid.UUID     `json:"location_id" validate:"required"`
	Gender         models.Gender `json:"gender" validate:"omitempty,oneof=M F"`
	Minor          *bool         `json:"minor,omitempty"`
}

// UpdateClubMemberRequest represents the request to update a club member
type UpdateClubMemberRequest struct {
	FirstName      *string        `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName       *string        `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Birthdate      *time.Time     `json:"birthdate,omitempty"`
	SSN            *string        `json:"ssn,omitempty" validate:"omitempty,max=20"`
	MedicareNumber *string        `json:"medicare_number,omitempty" validate:"omitempty,max=20"`
	Email          *string        `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string        `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address        *string        `json:"address,omitempty" validate:"omitempty,max=200"`
	City           *string        `json:"city,omitempty" validate:"omitempty,max=100"`
	Province       *string        `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode     *string        `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	Height         *int           `json:"height,omitempty" validate:"omitempty,min=0"`
	Weight         *int           `json:"weight,omitempty" validate:"omitempty,min=0"`
	LocationID     *uuid.UUID     `json:"location_id,omitempty"`
	Gender         *models.Gender `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
}

// ClubMemberResponse represents the response for club member operations
type ClubMemberResponse struct {
	ID               uuid.UUID         `json:"id"`
	MembershipNumber int64             `json:"membership_number"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Birthdate        string            `json:"birthdate"`
	Age              int               `json:"age"`
	SSN              string            `json:"ssn"`
	MedicareNumber   string            `json:"medicare_number"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Address          string            `json:"address"`
	City             string            `json:"city"`
	Province         string            `json:"province"`
	PostalCode       string            `json:"postal_code"`
	Height           int               `json:"height"`
	Weight           int               `json:"weight"`
	LocationID       uuid.UUID         `json:"location_id"`
	LocationName     string            `json:"location_name,omitempty"`
	Active           bool              `json:"active"`
	Minor            bool              `json:"minor"`
	Gender           models.Gender     `json:"gender,omitempty"`
	AnnualFee        float64           `json:"annual_fee"`
	JoinedAt         string            `json:"joined_at"`
	Payments         []PaymentResponse `json:"payments,omitempty"`
	Hobbies          []string          `json:"hobbies,omitempty"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

// ClubMemberListResponse represents a paginated list of club members
type ClubMemberListResponse struct {
	Members  []ClubMemberResponse `json:"members"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// Create registers a new club member. The minor classification defaults to
// the age at registration but an explicit value wins; the membership number
// is assigned by the store.
func (s *ClubMemberService) Create(req *CreateClubMemberRequest) (*ClubMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	if req.Birthdate.After(now) {
		return nil, apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
	}
	age := eligibility.Age(req.Birthdate, now)
	if age < eligibility.MinimumJoinAge {
		return nil, apperrors.NewValidationError("birthdate",
			fmt.Sprintf("club member must be at least %d years old", eligibility.MinimumJoinAge))
	}

	if _, err := s.locationRepo.GetByID(req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}

	existing, err := s.repo.GetByIdentity(req.SSN, req.MedicareNumber, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing club member: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrClubMemberExists
	}

	minor := eligibility.IsMinorAge(age)
	if req.Minor != nil {
		minor = *req.Minor
	}

	member := &models.ClubMember{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Birthdate:      req.Birthdate,
		SSN:            req.SSN,
		MedicareNumber: req.MedicareNumber,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		Province:       req.Province,
		PostalCode:     req.PostalCode,
		Height:         req.Height,
		Weight:         req.Weight,
		LocationID:     req.LocationID,
		Active:         true,
		Minor:          minor,
		Gender:         req.Gender,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create club member: %w", err)
	}

	return s.toResponse(member), nil
}

// GetByID retrieves a club member with payments, hobbies and guardian links
func (s *ClubMemberService) GetByID(id uuid.UUID) (*ClubMemberResponse, error) {
	member, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to get club member: %w", err)
	}

	return s.toResponse(member), nil
}

// GetByMembershipNumber retrieves a club member by membership number
func (s *ClubMemberService) GetByMembershipNumber(number int64) (*ClubMemberResponse, error) {
	member, err := s.repo.GetByMembershipNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to get club member: %w", err)
	}

	return s.toResponse(member), nil
}

// GetAll retrieves club members with pagination
func (s *ClubMemberService) GetAll(page, pageSize int) (*ClubMemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	members, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get club members: %w", err)
	}

	responses := make([]ClubMemberResponse, len(members))
	for i, m := range members {
		responses[i] = *s.toResponse(&m)
	}

	return &ClubMemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a club member. The minor classification and membership number
// are never touched here.
func (s *ClubMemberService) Update(id uuid.UUID, req *UpdateClubMemberRequest) (*ClubMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to get club member: %w", err)
	}

	if req.SSN != nil || req.MedicareNumber != nil || req.Email != nil {
		ssn := member.SSN
		medicare := member.MedicareNumber
		email := member.Email
		if req.SSN != nil {
			ssn = *req.SSN
		}
		if req.MedicareNumber != nil {
			medicare = *req.MedicareNumber
		}
		if req.Email != nil {
			email = *req.Email
		}
		existing, err := s.repo.GetByIdentity(ssn, medicare, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing club member: %w", err)
		}
		if existing != nil && existing.ID != member.ID {
			return nil, apperrors.ErrClubMemberExists
		}
		member.SSN = ssn
		member.MedicareNumber = medicare
		member.Email = email
	}

	if req.Birthdate != nil {
		now := time.Now()
		if req.Birthdate.After(now) {
			return nil, apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
		}
		if eligibility.Age(*req.Birthdate, now) < eligibility.MinimumJoinAge {
			return nil, apperrors.NewValidationError("birthdate",
				fmt.Sprintf("club member must be at least %d years old", eligibility.MinimumJoinAge))
		}
		member.Birthdate = *req.Birthdate
	}
	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(*req.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLocationNotFound
			}
			return nil, fmt.Errorf("failed to verify location: %w", err)
		}
		member.LocationID = *req.LocationID
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.City != nil {
		member.City = *req.City
	}
	if req.Province != nil {
		member.Province = *req.Province
	}
	if req.PostalCode != nil {
		member.PostalCode = *req.PostalCode
	}
	if req.Height != nil {
		member.Height = *req.Height
	}
	if req.Weight != nil {
		member.Weight = *req.Weight
	}
	if req.Gender != nil {
		member.Gender = *req.Gender
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update club member: %w", err)
	}

	return s.toResponse(member), nil
}

// SetActiveStatus flips a member's activity flag
func (s *ClubMemberService) SetActiveStatus(id uuid.UUID, active bool) (*ClubMemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to get club member: %w", err)
	}

	if member.Active != active {
		if err := s.repo.SetActiveStatus(id, active); err != nil {
			return nil, fmt.Errorf("failed to update activity status: %w", err)
		}
		member.Active = active
	}

	return s.toResponse(member), nil
}

// Delete deletes a club member and all dependent rows
func (s *ClubMemberService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubMemberNotFound
		}
		return fmt.Errorf("failed to get club member: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete club member: %w", err)
	}

	return nil
}

func (s *ClubMemberService) toResponse(member *models.ClubMember) *ClubMemberResponse {
	resp := &ClubMemberResponse{
		ID:               member.ID,
		MembershipNumber: member.MembershipNumber,
		FirstName:        member.FirstName,
		LastName:         member.LastName,
		Birthdate:        member.Birthdate.Format("2006-01-02"),
		Age:              member.Age(time.Now()),
		SSN:              member.SSN,
		MedicareNumber:   member.MedicareNumber,
		Email:            member.Email,
		Phone:            member.Phone,
		Address:          member.Address,
		City:             member.City,
		Province:         member.Province,
		PostalCode:       member.PostalCode,
		Height:           member.Height,
		Weight:           member.Weight,
		LocationID:       member.LocationID,
		Active:           member.Active,
		Minor:            member.Minor,
		Gender:           member.Gender,
		AnnualFee:        eligibility.AnnualFee(member.Minor),
		JoinedAt:         member.JoinedAt.Format("2006-01-02"),
		CreatedAt:        member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        member.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if member.Location != nil {
		resp.LocationName = member.Location.Name
	}
	for _, p := range member.Payments {
		resp.Payments = append(resp.Payments, *paymentToResponse(&p))
	}
	for _, h := range member.Hobbies {
		if h.Hobby != nil {
			resp.Hobbies = append(resp.Hobbies, h.Hobby.Name)
		}
	}
	return resp
}
