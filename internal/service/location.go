package service

import (
	"errors"
	"fmt"

	"club-registry-backend/internal/database/models"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationService handles business logic for club locations
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name       string              `json:"name" validate:"required,max=100"`
	Type       models.LocationType `json:"type" validate:"required,oneof=head branch"`
	Address    string              `json:"address" validate:"max=200"`
	City       string              `json:"city" validate:"max=100"`
	Province   string              `json:"province" validate:"max=100"`
	PostalCode string              `json:"postal_code" validate:"max=10"`
	Phone      string              `json:"phone" validate:"max=20"`
	WebAddress string              `json:"web_address" validate:"omitempty,url,max=200"`
	Capacity   int                 `json:"capacity" validate:"omitempty,min=0"`
}

// UpdateLocationRequest represents the request to update a location
type UpdateLocationRequest struct {
	Name       *string              `json:"name,omitempty" validate:"omitempty,max=100"`
	Type       *models.LocationType `json:"type,omitempty" validate:"omitempty,oneof=head branch"`
	Address    *string              `json:"address,omitempty" validate:"omitempty,max=200"`
	City       *string              `json:"city,omitempty" validate:"omitempty,max=100"`
	Province   *string              `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode *string              `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	Phone      *string              `json:"phone,omitempty" validate:"omitempty,max=20"`
	WebAddress *string              `json:"web_address,omitempty" validate:"omitempty,url,max=200"`
	Capacity   *int                 `json:"capacity,omitempty" validate:"omitempty,min=0"`
}

// LocationResponse represents the response for location operations
type LocationResponse struct {
	ID         uuid.UUID           `json:"id"`
	Name       string              `json:"name"`
	Type       models.LocationType `json:"type"`
	Address    string              `json:"address"`
	City       string              `json:"city"`
	Province   string              `json:"province"`
	PostalCode string              `json:"postal_code"`
	Phone      string              `json:"phone"`
	WebAddress string              `json:"web_address,omitempty"`
	Capacity   int                 `json:"capacity"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// LocationListResponse represents a paginated list of locations
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new location
func (s *LocationService) Create(req *CreateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLocationExists
	}

	location := &models.Location{
		Name:       req.Name,
		Type:       req.Type,
		Address:    req.Address,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		WebAddress: req.WebAddress,
		Capacity:   req.Capacity,
	}

	if err := s.repo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return s.toResponse(location), nil
}

// GetByID retrieves a location by ID
func (s *LocationService) GetByID(id uuid.UUID) (*LocationResponse, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return s.toResponse(location), nil
}

// GetAll retrieves locations with pagination
func (s *LocationService) GetAll(page, pageSize int) (*LocationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	locations, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	responses := make([]LocationResponse, len(locations))
	for i, location := range locations {
		responses[i] = *s.toResponse(&location)
	}

	return &LocationListResponse{
		Locations: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a location
func (s *LocationService) Update(id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	location, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if req.Name != nil && *req.Name != location.Name {
		existing, err := s.repo.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing location: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrLocationExists
		}
		location.Name = *req.Name
	}
	if req.Type != nil {
		location.Type = *req.Type
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Province != nil {
		location.Province = *req.Province
	}
	if req.PostalCode != nil {
		location.PostalCode = *req.PostalCode
	}
	if req.Phone != nil {
		location.Phone = *req.Phone
	}
	if req.WebAddress != nil {
		location.WebAddress = *req.WebAddress
	}
	if req.Capacity != nil {
		location.Capacity = *req.Capacity
	}

	if err := s.repo.Update(location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return s.toResponse(location), nil
}

// Delete deletes a location. Members, family members and team formations
// block the delete; the caller is told which dependents are in the way.
func (s *LocationService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location: %w", err)
	}

	members, familyMembers, teams, err := s.repo.DependentCounts(id)
	if err != nil {
		return fmt.Errorf("failed to check location dependents: %w", err)
	}

	var dependents []string
	if members > 0 {
		dependents = append(dependents, fmt.Sprintf("%d club members", members))
	}
	if familyMembers > 0 {
		dependents = append(dependents, fmt.Sprintf("%d family members", familyMembers))
	}
	if teams > 0 {
		dependents = append(dependents, fmt.Sprintf("%d session teams", teams))
	}
	if len(dependents) > 0 {
		return apperrors.NewReferentialConflictError("location", dependents...)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

func (s *LocationService) toResponse(location *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:         location.ID,
		Name:       location.Name,
		Type:       location.Type,
		Address:    location.Address,
		City:       location.City,
		Province:   location.Province,
		PostalCode: location.PostalCode,
		Phone:      location.Phone,
		WebAddress: location.WebAddress,
		Capacity:   location.Capacity,
		CreatedAt:  location.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  location.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
