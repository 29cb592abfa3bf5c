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

// PersonnelService handles business logic for personnel and role assignments
type PersonnelService struct {
	repo         repository.PersonnelRepositoryInterface
	locationRepo repository.LocationRepositoryInterface
	validator    *validator.Validate
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(repo repository.PersonnelRepositoryInterface, locationRepo repository.LocationRepositoryInterface, validator *validator.Validate) *PersonnelService {
	return &PersonnelService{
		repo:         repo,
		locationRepo: locationRepo,
		validator:    validator,
	}
}

// CreatePersonnelRequest represents the request to create a personnel record
type CreatePersonnelRequest struct {
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
}

// UpdatePersonnelRequest represents the request to update a personnel record
type UpdatePersonnelRequest struct {
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
}

// CreateAssignmentRequest represents the request to create a role assignment
type CreateAssignmentRequest struct {
	LocationID uuid.UUID             `json:"location_id" validate:"required"`
	Role       models.AssignmentRole `json:"role" validate:"required"`
	Mandate    models.Mandate        `json:"mandate" validate:"required,oneof=salaried volunteer"`
	StartDate  time.Time             `json:"start_date" validate:"required"`
	EndDate    *time.Time            `json:"end_date,omitempty"`
}

// UpdateAssignmentRequest represents the request to update a role assignment
type UpdateAssignmentRequest struct {
	Role    *models.AssignmentRole `json:"role,omitempty"`
	Mandate *models.Mandate        `json:"mandate,omitempty" validate:"omitempty,oneof=salaried volunteer"`
	EndDate *time.Time             `json:"end_date,omitempty"`
}

// PersonnelResponse represents the response for personnel operations
type PersonnelResponse struct {
	ID             uuid.UUID            `json:"id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Birthdate      string               `json:"birthdate"`
	SSN            string               `json:"ssn"`
	MedicareNumber string               `json:"medicare_number"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Address        string               `json:"address"`
	City           string               `json:"city"`
	Province       string               `json:"province"`
	PostalCode     string               `json:"postal_code"`
	Assignments    []AssignmentResponse `json:"assignments,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// AssignmentResponse represents one role assignment in a personnel's history
type AssignmentResponse struct {
	ID           uuid.UUID             `json:"id"`
	PersonnelID  uuid.UUID             `json:"personnel_id"`
	LocationID   uuid.UUID             `json:"location_id"`
	LocationName string                `json:"location_name,omitempty"`
	Role         models.AssignmentRole `json:"role"`
	Mandate      models.Mandate        `json:"mandate"`
	StartDate    string                `json:"start_date"`
	EndDate      *string               `json:"end_date,omitempty"`
	Current      bool                  `json:"current"`
}

// PersonnelListResponse represents a paginated list of personnel
type PersonnelListResponse struct {
	Personnel []PersonnelResponse `json:"personnel"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// Create creates a new personnel record
func (s *PersonnelService) Create(req *CreatePersonnelRequest) (*PersonnelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Birthdate.After(time.Now()) {
		return nil, apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
	}

	existing, err := s.repo.GetByIdentity(req.SSN, req.MedicareNumber, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing personnel: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPersonnelExists
	}

	personnel := &models.Personnel{
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
	}

	if err := s.repo.Create(personnel); err != nil {
		return nil, fmt.Errorf("failed to create personnel: %w", err)
	}

	return s.toResponse(personnel), nil
}

// GetByID retrieves a personnel record with its role history
func (s *PersonnelService) GetByID(id uuid.UUID) (*PersonnelResponse, error) {
	personnel, err := s.repo.GetWithAssignments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}

	return s.toResponse(personnel), nil
}

// GetAll retrieves personnel with pagination
func (s *PersonnelService) GetAll(page, pageSize int) (*PersonnelListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	personnel, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}

	responses := make([]PersonnelResponse, len(personnel))
	for i, p := range personnel {
		responses[i] = *s.toResponse(&p)
	}

	return &PersonnelListResponse{
		Personnel: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a personnel record
func (s *PersonnelService) Update(id uuid.UUID, req *UpdatePersonnelRequest) (*PersonnelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	personnel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}

	if req.SSN != nil || req.MedicareNumber != nil || req.Email != nil {
		ssn := personnel.SSN
		medicare := personnel.MedicareNumber
		email := personnel.Email
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
			return nil, fmt.Errorf("failed to check existing personnel: %w", err)
		}
		if existing != nil && existing.ID != personnel.ID {
			return nil, apperrors.ErrPersonnelExists
		}
		personnel.SSN = ssn
		personnel.MedicareNumber = medicare
		personnel.Email = email
	}

	if req.Birthdate != nil {
		if req.Birthdate.After(time.Now()) {
			return nil, apperrors.NewValidationError("birthdate", "date of birth cannot be in the future")
		}
		personnel.Birthdate = *req.Birthdate
	}
	if req.FirstName != nil {
		personnel.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		personnel.LastName = *req.LastName
	}
	if req.Phone != nil {
		personnel.Phone = *req.Phone
	}
	if req.Address != nil {
		personnel.Address = *req.Address
	}
	if req.City != nil {
		personnel.City = *req.City
	}
	if req.Province != nil {
		personnel.Province = *req.Province
	}
	if req.PostalCode != nil {
		personnel.PostalCode = *req.PostalCode
	}

	if err := s.repo.Update(personnel); err != nil {
		return nil, fmt.Errorf("failed to update personnel: %w", err)
	}

	return s.toResponse(personnel), nil
}

// Delete deletes a personnel record. Head-coach references from session teams
// block the delete.
func (s *PersonnelService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonnelNotFound
		}
		return fmt.Errorf("failed to get personnel: %w", err)
	}

	coached, err := s.repo.CountCoachedTeams(id)
	if err != nil {
		return fmt.Errorf("failed to check coached teams: %w", err)
	}
	if coached > 0 {
		return apperrors.NewReferentialConflictError("personnel",
			fmt.Sprintf("%d session teams coached", coached))
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}

	return nil
}

// CreateAssignment adds a role assignment to a personnel's history
func (s *PersonnelService) CreateAssignment(personnelID uuid.UUID, req *CreateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(personnelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to verify personnel: %w", err)
	}

	if _, err := s.locationRepo.GetByID(req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "end date cannot precede start date")
	}

	assignment := &models.PersonnelAssignment{
		PersonnelID: personnelID,
		LocationID:  req.LocationID,
		Role:        req.Role,
		Mandate:     req.Mandate,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.repo.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.toAssignmentResponse(assignment), nil
}

// GetAssignments retrieves a personnel's role history
func (s *PersonnelService) GetAssignments(personnelID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.repo.GetByID(personnelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to verify personnel: %w", err)
	}

	assignments, err := s.repo.GetAssignmentsByPersonnel(personnelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = *s.toAssignmentResponse(&a)
	}
	return responses, nil
}

// UpdateAssignment updates a role assignment
func (s *PersonnelService) UpdateAssignment(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.repo.GetAssignmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if req.Role != nil {
		assignment.Role = *req.Role
	}
	if req.Mandate != nil {
		assignment.Mandate = *req.Mandate
	}
	if req.EndDate != nil {
		if req.EndDate.Before(assignment.StartDate) {
			return nil, apperrors.NewValidationError("end_date", "end date cannot precede start date")
		}
		assignment.EndDate = req.EndDate
	}

	if err := s.repo.UpdateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return s.toAssignmentResponse(assignment), nil
}

// DeleteAssignment deletes a role assignment
func (s *PersonnelService) DeleteAssignment(id uuid.UUID) error {
	if _, err := s.repo.GetAssignmentByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.repo.DeleteAssignment(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

func (s *PersonnelService) toResponse(personnel *models.Personnel) *PersonnelResponse {
	resp := &PersonnelResponse{
		ID:             personnel.ID,
		FirstName:      personnel.FirstName,
		LastName:       personnel.LastName,
		Birthdate:      personnel.Birthdate.Format("2006-01-02"),
		SSN:            personnel.SSN,
		MedicareNumber: personnel.MedicareNumber,
		Email:          personnel.Email,
		Phone:          personnel.Phone,
		Address:        personnel.Address,
		City:           personnel.City,
		Province:       personnel.Province,
		PostalCode:     personnel.PostalCode,
		CreatedAt:      personnel.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      personnel.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, a := range personnel.Assignments {
		resp.Assignments = append(resp.Assignments, *s.toAssignmentResponse(&a))
	}
	return resp
}

func (s *PersonnelService) toAssignmentResponse(assignment *models.PersonnelAssignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:          assignment.ID,
		PersonnelID: assignment.PersonnelID,
		LocationID:  assignment.LocationID,
		Role:        assignment.Role,
		Mandate:     assignment.Mandate,
		StartDate:   assignment.StartDate.Format("2006-01-02"),
		Current:     assignment.IsCurrent(),
	}
	if assignment.Location != nil {
		resp.LocationName = assignment.Location.Name
	}
	if assignment.EndDate != nil {
		end := assignment.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
