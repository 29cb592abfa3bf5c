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

// HobbyService handles business logic for hobbies and member associations
type HobbyService struct {
	repo       repository.HobbyRepositoryInterface
	memberRepo repository.ClubMemberRepositoryInterface
	validator  *validator.Validate
}

// NewHobbyService creates a new hobby service
func NewHobbyService(repo repository.HobbyRepositoryInterface, memberRepo repository.ClubMemberRepositoryInterface, validator *validator.Validate) *HobbyService {
	return &HobbyService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateHobbyRequest represents the request to create a hobby
type CreateHobbyRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// HobbyResponse represents the response for hobby operations
type HobbyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Create creates a new hobby
func (s *HobbyService) Create(req *CreateHobbyRequest) (*HobbyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing hobby: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrHobbyExists
	}

	hobby := &models.Hobby{Name: req.Name}
	if err := s.repo.Create(hobby); err != nil {
		return nil, fmt.Errorf("failed to create hobby: %w", err)
	}

	return &HobbyResponse{ID: hobby.ID, Name: hobby.Name}, nil
}

// GetAll retrieves all hobbies
func (s *HobbyService) GetAll() ([]HobbyResponse, error) {
	hobbies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get hobbies: %w", err)
	}

	responses := make([]HobbyResponse, len(hobbies))
	for i, h := range hobbies {
		responses[i] = HobbyResponse{ID: h.ID, Name: h.Name}
	}
	return responses, nil
}

// Delete deletes a hobby and its member associations
func (s *HobbyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHobbyNotFound
		}
		return fmt.Errorf("failed to get hobby: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hobby: %w", err)
	}

	return nil
}

// Attach associates a hobby with a club member; one link per pair
func (s *HobbyService) Attach(memberID, hobbyID uuid.UUID) error {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubMemberNotFound
		}
		return fmt.Errorf("failed to verify club member: %w", err)
	}
	if _, err := s.repo.GetByID(hobbyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHobbyNotFound
		}
		return fmt.Errorf("failed to verify hobby: %w", err)
	}

	memberHobbies, err := s.repo.GetMemberHobbies(memberID)
	if err != nil {
		return fmt.Errorf("failed to check existing member hobbies: %w", err)
	}
	for _, mh := range memberHobbies {
		if mh.HobbyID == hobbyID {
			return apperrors.ErrMemberHobbyExists
		}
	}

	if err := s.repo.Attach(memberID, hobbyID); err != nil {
		return fmt.Errorf("failed to attach hobby: %w", err)
	}

	return nil
}

// Detach removes a hobby association from a club member
func (s *HobbyService) Detach(memberID, hobbyID uuid.UUID) error {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubMemberNotFound
		}
		return fmt.Errorf("failed to verify club member: %w", err)
	}

	if err := s.repo.Detach(memberID, hobbyID); err != nil {
		return fmt.Errorf("failed to detach hobby: %w", err)
	}

	return nil
}

// GetMemberHobbies retrieves a member's hobbies
func (s *HobbyService) GetMemberHobbies(memberID uuid.UUID) ([]HobbyResponse, error) {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}

	memberHobbies, err := s.repo.GetMemberHobbies(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member hobbies: %w", err)
	}

	var responses []HobbyResponse
	for _, mh := range memberHobbies {
		if mh.Hobby != nil {
			responses = append(responses, HobbyResponse{ID: mh.Hobby.ID, Name: mh.Hobby.Name})
		}
	}
	return responses, nil
}
