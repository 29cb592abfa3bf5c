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

// FamilyMemberService handles business logic for family members, secondary
// contacts and guardian relationships
type FamilyMemberService struct {
	repo         repository.FamilyMemberRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	memberRepo   repository.ClubMemberRepositoryInterface
	validator    *validator.Validate
}

// NewFamilyMemberService creates a new family member service
func NewFamilyMemberService(repo repository.FamilyMemberRepositoryInterface, locationRepo repository.LocationRepositoryInterface, memberRepo repository.ClubMemberRepositoryInterface, validator *validator.Validate) *FamilyMemberService {
	return &FamilyMemberService{
		repo:         repo,
		locationRepo: locationRepo,
		memberRepo:   memberRepo,
		validator:    validator,
	}
}

// CreateFamilyMemberRequest represents the request to create a family member
type CreateFamilyMemberRequest struct {
	FirstName      string    `json:"first_name" validate:"required,max=100"`
	LastName       string    `json:"last_name" validate:"required,max=100"`
	Birthdate      time.Time `json:"birthdate" validate:"required"`
	SSN            string    `json:"ssn" validate:"required,max=20"`
	MedicareNumber string    `json:"medicare_number" validate:"required,max=20"`
	Email          string    `json:"email" validate:"required,email,max=255"`
	Phone          string    `json:"phone" validate:"max=20"`
	Address        string    `json:"address" validate:"max=200"`
	City           string    `json:"city" validate:"max=100"`
	Province       string    `json:"province" validate:"max=100"`
	PostalCode     string    `json:"postal_code" validate:"max=10"`
	LocationID     uuid.UUID `json:"location_id" validate:"required"`
}

// UpdateFamilyMemberRequest represents the request to update a family member
type UpdateFamilyMemberRequest struct {
	FirstName      *string    `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName       *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Birthdate      *time.Time `json:"birthdate,omitempty"`
	SSN            *string    `json:"ssn,omitempty" validate:"omitempty,max=20"`
	MedicareNumber *string    `json:"medicare_number,omitempty" validate:"omitempty,max=20"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address        *string    `json:"address,omitempty" validate:"omitempty,max=200"`
	City           *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	Province       *string    `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode     *string    `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}

// CreateSecondaryContactRequest represents the request to add a secondary
// contact under a family member, for a specific minor
type CreateSecondaryContactRequest struct {
	MinorID          uuid.UUID `json:"minor_id" validate:"required"`
	FirstName        string    `json:"first_name" validate:"required,max=100"`
	LastName         string    `json:"last_name" validate:"required,max=100"`
	Phone            string    `json:"phone" validate:"max=20"`
	RelationshipType string    `json:"relationship_type" validate:"max=30"`
}

// UpdateSecondaryContactRequest represents the request to update a secondary contact
type UpdateSecondaryContactRequest struct {
	FirstName        *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName         *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Phone            *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	RelationshipType *string `json:"relationship_type,omitempty" validate:"omitempty,max=30"`
}

// CreateRelationshipRequest represents the request to link a minor member to a
// guardian family member
type CreateRelationshipRequest struct {
	MinorID          uuid.UUID  `json:"minor_id" validate:"required"`
	RelationshipType string     `json:"relationship_type" validate:"required,max=30"`
	IsPrimary        bool       `json:"is_primary"`
	EmergencyContact bool       `json:"emergency_contact"`
	StartDate        *time.Time `json:"start_date,omitempty"`
}

// FamilyMemberResponse represents the response for family member operations
type FamilyMemberResponse struct {
	ID                uuid.UUID                  `json:"id"`
	FirstName         string                     `json:"first_name"`
	LastName          string                     `json:"last_name"`
	Birthdate         string                     `json:"birthdate"`
	SSN               string                     `json:"ssn"`
	MedicareNumber    string                     `json:"medicare_number"`
	Email             string                     `json:"email"`
	Phone             string                     `json:"phone"`
	Address           string                     `json:"address"`
	City              string                     `json:"city"`
	Province          string                     `json:"province"`
	PostalCode        string                     `json:"postal_code"`
	LocationID        uuid.UUID                  `json:"location_id"`
	LocationName      string                     `json:"location_name,omitempty"`
	SecondaryContacts []SecondaryContactResponse `json:"secondary_contacts,omitempty"`
	Relationships     []RelationshipResponse     `json:"relationships,omitempty"`
	CreatedAt         string                     `json:"created_at"`
	UpdatedAt         string                     `json:"updated_at"`
}

// SecondaryContactResponse represents a secondary contact
type SecondaryContactResponse struct {
	ID                    uuid.UUID `json:"id"`
	PrimaryFamilyMemberID uuid.UUID `json:"primary_family_member_id"`
	MinorID               uuid.UUID `json:"minor_id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Phone                 string    `json:"phone"`
	RelationshipType      string    `json:"relationship_type"`
}

// RelationshipResponse represents a guardian relationship
type RelationshipResponse struct {
	ID               uuid.UUID `json:"id"`
	MinorID          uuid.UUID `json:"minor_id"`
	GuardianID       uuid.UUID `json:"guardian_id"`
	MinorName        string    `json:"minor_name,omitempty"`
	RelationshipType string    `json:"relationship_type"`
	IsPrimary        bool      `json:"is_primary"`
	EmergencyContact bool      `json:"emergency_contact"`
	StartDate        string    `json:"start_date,omitempty"`
}

// FamilyMemberListResponse represents a paginated list of family members
type FamilyMemberListResponse struct {
	FamilyMembers []FamilyMemberResponse `json:"family_members"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new family member
func (s *FamilyMemberService) Create(req *CreateFamilyMemberRequest) (*FamilyMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Birthdate.After(time.Now()) {
		return nil, apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
	}

	if _, err := s.locationRepo.GetByID(req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}

	existing, err := s.repo.GetByIdentity(req.SSN, req.MedicareNumber, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing family member: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrFamilyMemberExists
	}

	familyMember := &models.FamilyMember{
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
		LocationID:     req.LocationID,
	}

	if err := s.repo.Create(familyMember); err != nil {
		return nil, fmt.Errorf("failed to create family member: %w", err)
	}

	return s.toResponse(familyMember), nil
}

// GetByID retrieves a family member with secondary contacts and sponsored minors
func (s *FamilyMemberService) GetByID(id uuid.UUID) (*FamilyMemberResponse, error) {
	familyMember, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFamilyMemberNotFound
		}
		return nil, fmt.Errorf("failed to get family member: %w", err)
	}

	return s.toResponse(familyMember), nil
}

// GetAll retrieves family members with pagination
func (s *FamilyMemberService) GetAll(page, pageSize int) (*FamilyMemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	familyMembers, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get family members: %w", err)
	}

	responses := make([]FamilyMemberResponse, len(familyMembers))
	for i, fm := range familyMembers {
		responses[i] = *s.toResponse(&fm)
	}

	return &FamilyMemberListResponse{
		FamilyMembers: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates a family member
func (s *FamilyMemberService) Update(id uuid.UUID, req *UpdateFamilyMemberRequest) (*FamilyMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	familyMember, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFamilyMemberNotFound
		}
		return nil, fmt.Errorf("failed to get family member: %w", err)
	}

	if req.SSN != nil || req.MedicareNumber != nil || req.Email != nil {
		ssn := familyMember.SSN
		medicare := familyMember.MedicareNumber
		email := familyMember.Email
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
			return nil, fmt.Errorf("failed to check existing family member: %w", err)
		}
		if existing != nil && existing.ID != familyMember.ID {
			return nil, apperrors.ErrFamilyMemberExists
		}
		familyMember.SSN = ssn
		familyMember.MedicareNumber = medicare
		familyMember.Email = email
	}

	if req.Birthdate != nil {
		if req.Birthdate.After(time.Now()) {
			return nil, apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
		}
		familyMember.Birthdate = *req.Birthdate
	}
	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(*req.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLocationNotFound
			}
			return nil, fmt.Errorf("failed to verify location: %w", err)
		}
		familyMember.LocationID = *req.LocationID
	}
	if req.FirstName != nil {
		familyMember.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		familyMember.LastName = *req.LastName
	}
	if req.Phone != nil {
		familyMember.Phone = *req.Phone
	}
	if req.Address != nil {
		familyMember.Address = *req.Address
	}
	if req.City != nil {
		familyMember.City = *req.City
	}
	if req.Province != nil {
		familyMember.Province = *req.Province
	}
	if req.PostalCode != nil {
		familyMember.PostalCode = *req.PostalCode
	}

	if err := s.repo.Update(familyMember); err != nil {
		return nil, fmt.Errorf("failed to update family member: %w", err)
	}

	return s.toResponse(familyMember), nil
}

// Delete deletes a family member along with its secondary contacts and
// guardian relationships
func (s *FamilyMemberService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFamilyMemberNotFound
		}
		return fmt.Errorf("failed to get family member: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete family member: %w", err)
	}

	return nil
}

// CreateSecondaryContact adds a secondary contact under a family member
func (s *FamilyMemberService) CreateSecondaryContact(familyMemberID uuid.UUID, req *CreateSecondaryContactRequest) (*SecondaryContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(familyMemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFamilyMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify family member: %w", err)
	}

	if _, err := s.memberRepo.GetByID(req.MinorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}

	contact := &models.SecondaryFamilyMember{
		PrimaryFamilyMemberID: familyMemberID,
		MinorID:               req.MinorID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Phone:                 req.Phone,
		RelationshipType:      req.RelationshipType,
	}

	if err := s.repo.CreateSecondary(contact); err != nil {
		return nil, fmt.Errorf("failed to create secondary contact: %w", err)
	}

	return s.toSecondaryResponse(contact), nil
}

// UpdateSecondaryContact updates a secondary contact
func (s *FamilyMemberService) UpdateSecondaryContact(id uuid.UUID, req *UpdateSecondaryContactRequest) (*SecondaryContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetSecondaryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSecondaryContactNotFound
		}
		return nil, fmt.Errorf("failed to get secondary contact: %w", err)
	}

	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = *req.LastName
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.RelationshipType != nil {
		contact.RelationshipType = *req.RelationshipType
	}

	if err := s.repo.UpdateSecondary(contact); err != nil {
		return nil, fmt.Errorf("failed to update secondary contact: %w", err)
	}

	return s.toSecondaryResponse(contact), nil
}

// DeleteSecondaryContact deletes a secondary contact
func (s *FamilyMemberService) DeleteSecondaryContact(id uuid.UUID) error {
	if _, err := s.repo.GetSecondaryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSecondaryContactNotFound
		}
		return fmt.Errorf("failed to get secondary contact: %w", err)
	}

	if err := s.repo.DeleteSecondary(id); err != nil {
		return fmt.Errorf("failed to delete secondary contact: %w", err)
	}

	return nil
}

// CreateRelationship links a minor club member to a guardian family member.
// The linked member must carry the minor classification and each
// (minor, guardian) pair appears once.
func (s *FamilyMemberService) CreateRelationship(guardianID uuid.UUID, req *CreateRelationshipRequest) (*RelationshipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(guardianID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFamilyMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify family member: %w", err)
	}

	minor, err := s.memberRepo.GetByID(req.MinorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}
	if !minor.Minor {
		return nil, apperrors.NewValidationError("minor_id", "club member is not classified as a minor")
	}

	existing, err := s.repo.GetRelationshipByPair(req.MinorID, guardianID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing relationship: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRelationshipExists
	}

	rel := &models.FamilyRelationship{
		MinorID:          req.MinorID,
		GuardianID:       guardianID,
		RelationshipType: req.RelationshipType,
		IsPrimary:        req.IsPrimary,
		EmergencyContact: req.EmergencyContact,
	}
	if req.StartDate != nil {
		rel.StartDate = *req.StartDate
	} else {
		rel.StartDate = time.Now()
	}

	if err := s.repo.CreateRelationship(rel); err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}

	return s.toRelationshipResponse(rel), nil
}

// DeleteRelationship unlinks a minor from a guardian
func (s *FamilyMemberService) DeleteRelationship(id uuid.UUID) error {
	if _, err := s.repo.GetRelationshipByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelationshipNotFound
		}
		return fmt.Errorf("failed to get relationship: %w", err)
	}

	if err := s.repo.DeleteRelationship(id); err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}

	return nil
}

func (s *FamilyMemberService) toResponse(familyMember *models.FamilyMember) *FamilyMemberResponse {
	resp := &FamilyMemberResponse{
		ID:             familyMember.ID,
		FirstName:      familyMember.FirstName,
		LastName:       familyMember.LastName,
		Birthdate:      familyMember.Birthdate.Format("2006-01-02"),
		SSN:            familyMember.SSN,
		MedicareNumber: familyMember.MedicareNumber,
		Email:          familyMember.Email,
		Phone:          familyMember.Phone,
		Address:        familyMember.Address,
		City:           familyMember.City,
		Province:       familyMember.Province,
		PostalCode:     familyMember.PostalCode,
		LocationID:     familyMember.LocationID,
		CreatedAt:      familyMember.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      familyMember.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if familyMember.Location != nil {
		resp.LocationName = familyMember.Location.Name
	}
	for _, c := range familyMember.SecondaryContacts {
		resp.SecondaryContacts = append(resp.SecondaryContacts, *s.toSecondaryResponse(&c))
	}
	for _, r := range familyMember.Relationships {
		resp.Relationships = append(resp.Relationships, *s.toRelationshipResponse(&r))
	}
	return resp
}

func (s *FamilyMemberService) toSecondaryResponse(contact *models.SecondaryFamilyMember) *SecondaryContactResponse {
	return &SecondaryContactResponse{
		ID:                    contact.ID,
		PrimaryFamilyMemberID: contact.PrimaryFamilyMemberID,
		MinorID:               contact.MinorID,
		FirstName:             contact.FirstName,
		LastName:              contact.LastName,
		Phone:                 contact.Phone,
		RelationshipType:      contact.RelationshipType,
	}
}

func (s *FamilyMemberService) toRelationshipResponse(rel *models.FamilyRelationship) *RelationshipResponse {
	resp := &RelationshipResponse{
		ID:               rel.ID,
		MinorID:          rel.MinorID,
		GuardianID:       rel.GuardianID,
		RelationshipType: rel.RelationshipType,
		IsPrimary:        rel.IsPrimary,
		EmergencyContact: rel.EmergencyContact,
	}
	if rel.Minor != nil {
		resp.MinorName = rel.Minor.FullName()
	}
	if !rel.StartDate.IsZero() {
		resp.StartDate = rel.StartDate.Format("2006-01-02")
	}
	return resp
}
