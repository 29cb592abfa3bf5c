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

// PlayerAssignmentService handles business logic for putting members on team
// formations
type PlayerAssignmentService struct {
	repo        repository.PlayerAssignmentRepositoryInterface
	sessionRepo repository.SessionRepositoryInterface
	memberRepo  repository.ClubMemberRepositoryInterface
	validator   *validator.Validate
}

// NewPlayerAssignmentService creates a new player assignment service
func NewPlayerAssignmentService(repo repository.PlayerAssignmentRepositoryInterface, sessionRepo repository.SessionRepositoryInterface, memberRepo repository.ClubMemberRepositoryInterface, validator *validator.Validate) *PlayerAssignmentService {
	return &PlayerAssignmentService{
		repo:        repo,
		sessionRepo: sessionRepo,
		memberRepo:  memberRepo,
		validator:   validator,
	}
}

// CreatePlayerAssignmentRequest represents the request to add a player to a team
type CreatePlayerAssignmentRequest struct {
	MemberID  uuid.UUID       `json:"member_id" validate:"required"`
	Position  models.Position `json:"position" validate:"required"`
	IsStarter bool            `json:"is_starter"`
}

// UpdatePlayerAssignmentRequest represents the request to update an assignment
type UpdatePlayerAssignmentRequest struct {
	Position  *models.Position `json:"position,omitempty"`
	IsStarter *bool            `json:"is_starter,omitempty"`
}

// PlayerAssignmentResponse represents the response for assignment operations
type PlayerAssignmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	TeamID           uuid.UUID       `json:"team_id"`
	MemberID         uuid.UUID       `json:"member_id"`
	MemberName       string          `json:"member_name,omitempty"`
	MembershipNumber int64           `json:"membership_number,omitempty"`
	Position         models.Position `json:"position"`
	IsStarter        bool            `json:"is_starter"`
}

// Create puts an active club member on a team formation at a position. Only
// active members can be fielded, and a member appears once per team.
func (s *PlayerAssignmentService) Create(teamID uuid.UUID, req *CreatePlayerAssignmentRequest) (*PlayerAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.sessionRepo.GetTeamByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify session team: %w", err)
	}

	member, err := s.memberRepo.GetByID(req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}
	if !member.Active {
		return nil, apperrors.ErrMemberNotActive
	}

	existing, err := s.repo.GetByTeamAndMember(teamID, req.MemberID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPlayerAssignmentExists
	}

	assignment := &models.PlayerAssignment{
		TeamID:    teamID,
		MemberID:  req.MemberID,
		Position:  req.Position,
		IsStarter: req.IsStarter,
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create player assignment: %w", err)
	}

	assignment.Member = member
	return playerAssignmentToResponse(assignment), nil
}

// GetByTeam retrieves a team's roster
func (s *PlayerAssignmentService) GetByTeam(teamID uuid.UUID) ([]PlayerAssignmentResponse, error) {
	if _, err := s.sessionRepo.GetTeamByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify session team: %w", err)
	}

	assignments, err := s.repo.GetByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player assignments: %w", err)
	}

	responses := make([]PlayerAssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = *playerAssignmentToResponse(&a)
	}
	return responses, nil
}

// GetByMember retrieves a member's assignment history
func (s *PlayerAssignmentService) GetByMember(memberID uuid.UUID) ([]PlayerAssignmentResponse, error) {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify club member: %w", err)
	}

	assignments, err := s.repo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player assignments: %w", err)
	}

	responses := make([]PlayerAssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = *playerAssignmentToResponse(&a)
	}
	return responses, nil
}

// Update changes an assignment's position or starter flag
func (s *PlayerAssignmentService) Update(id uuid.UUID, req *UpdatePlayerAssignmentRequest) (*PlayerAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get player assignment: %w", err)
	}

	if req.Position != nil {
		assignment.Position = *req.Position
	}
	if req.IsStarter != nil {
		assignment.IsStarter = *req.IsStarter
	}

	if err := s.repo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to update player assignment: %w", err)
	}

	return playerAssignmentToResponse(assignment), nil
}

// Delete removes a player from a team formation
func (s *PlayerAssignmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerAssignmentNotFound
		}
		return fmt.Errorf("failed to get player assignment: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player assignment: %w", err)
	}

	return nil
}

func playerAssignmentToResponse(assignment *models.PlayerAssignment) *PlayerAssignmentResponse {
	resp := &PlayerAssignmentResponse{
		ID:        assignment.ID,
		TeamID:    assignment.TeamID,
		MemberID:  assignment.MemberID,
		Position:  assignment.Position,
		IsStarter: assignment.IsStarter,
	}
	if assignment.Member != nil {
		resp.MemberName = assignment.Member.FullName()
		resp.MembershipNumber = assignment.Member.MembershipNumber
	}
	return resp
}
