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

// SessionService handles business logic for sessions and team formations
type SessionService struct {
	repo          repository.SessionRepositoryInterface
	locationRepo  repository.LocationRepositoryInterface
	personnelRepo repository.PersonnelRepositoryInterface
	validator     *validator.Validate
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionRepositoryInterface, locationRepo repository.LocationRepositoryInterface, personnelRepo repository.PersonnelRepositoryInterface, validator *validator.Validate) *SessionService {
	return &SessionService{
		repo:          repo,
		locationRepo:  locationRepo,
		personnelRepo: personnelRepo,
		validator:     validator,
	}
}

// CreateSessionRequest represents the request to schedule a session
type CreateSessionRequest struct {
	Type       models.SessionType `json:"type" validate:"required,oneof=training game"`
	StartsAt   time.Time          `json:"starts_at" validate:"required"`
	Address    string             `json:"address" validate:"max=200"`
	City       string             `json:"city" validate:"max=100"`
	Province   string             `json:"province" validate:"max=100"`
	PostalCode string             `json:"postal_code" validate:"max=10"`
}

// UpdateSessionRequest represents the request to update a session
type UpdateSessionRequest struct {
	Type       *models.SessionType   `json:"type,omitempty" validate:"omitempty,oneof=training game"`
	StartsAt   *time.Time            `json:"starts_at,omitempty"`
	Address    *string               `json:"address,omitempty" validate:"omitempty,max=200"`
	City       *string               `json:"city,omitempty" validate:"omitempty,max=100"`
	Province   *string               `json:"province,omitempty" validate:"omitempty,max=100"`
	PostalCode *string               `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	Status     *models.SessionStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// CreateSessionTeamRequest represents the request to field a team formation
type CreateSessionTeamRequest struct {
	TeamNumber  int           `json:"team_number" validate:"required,min=1"`
	TeamName    string        `json:"team_name" validate:"required,max=100"`
	LocationID  uuid.UUID     `json:"location_id" validate:"required"`
	HeadCoachID uuid.UUID     `json:"head_coach_id" validate:"required"`
	Gender      models.Gender `json:"gender" validate:"omitempty,oneof=M F"`
}

// UpdateSessionTeamRequest represents the request to update a team formation
type UpdateSessionTeamRequest struct {
	TeamName    *string        `json:"team_name,omitempty" validate:"omitempty,max=100"`
	HeadCoachID *uuid.UUID     `json:"head_coach_id,omitempty"`
	Gender      *models.Gender `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
	Score       *int           `json:"score,omitempty" validate:"omitempty,min=0"`
}

// SessionResponse represents the response for session operations
type SessionResponse struct {
	ID         uuid.UUID             `json:"id"`
	Type       models.SessionType    `json:"type"`
	StartsAt   string                `json:"starts_at"`
	Address    string                `json:"address"`
	City       string                `json:"city"`
	Province   string                `json:"province"`
	PostalCode string                `json:"postal_code"`
	Status     models.SessionStatus  `json:"status"`
	Teams      []SessionTeamResponse `json:"teams,omitempty"`
	CreatedAt  string                `json:"created_at"`
	UpdatedAt  string                `json:"updated_at"`
}

// SessionTeamResponse represents a team formation
type SessionTeamResponse struct {
	ID            uuid.UUID                  `json:"id"`
	SessionID     uuid.UUID                  `json:"session_id"`
	TeamNumber    int                        `json:"team_number"`
	TeamName      string                     `json:"team_name"`
	LocationID    uuid.UUID                  `json:"location_id"`
	LocationName  string                     `json:"location_name,omitempty"`
	HeadCoachID   uuid.UUID                  `json:"head_coach_id"`
	HeadCoachName string                     `json:"head_coach_name,omitempty"`
	Gender        models.Gender              `json:"gender,omitempty"`
	Score         *int                       `json:"score,omitempty"`
	Players       []PlayerAssignmentResponse `json:"players,omitempty"`
}

// SessionListResponse represents a paginated list of sessions
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// SessionTeamListResponse represents a paginated list of team formations
type SessionTeamListResponse struct {
	Teams    []SessionTeamResponse `json:"teams"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Create schedules a new session. Sessions cannot be scheduled in the past.
func (s *SessionService) Create(req *CreateSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.StartsAt.Before(time.Now()) {
		return nil, apperrors.ErrSessionDateInPast
	}

	session := &models.Session{
		Type:       req.Type,
		StartsAt:   req.StartsAt,
		Address:    req.Address,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Status:     models.SessionStatusScheduled,
	}

	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.toResponse(session), nil
}

// GetByID retrieves a session with its team formations and rosters
func (s *SessionService) GetByID(id uuid.UUID) (*SessionResponse, error) {
	session, err := s.repo.GetWithTeams(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return s.toResponse(session), nil
}

// GetAll retrieves sessions with pagination
func (s *SessionService) GetAll(page, pageSize int) (*SessionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	sessions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	responses := make([]SessionResponse, len(sessions))
	for i, sess := range sessions {
		responses[i] = *s.toResponse(&sess)
	}

	return &SessionListResponse{
		Sessions: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a session. Rescheduling into the past is rejected; completed
// sessions may carry a past start since they already happened.
func (s *SessionService) Update(id uuid.UUID, req *UpdateSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if req.StartsAt != nil {
		if req.StartsAt.Before(time.Now()) && session.Status == models.SessionStatusScheduled {
			return nil, apperrors.ErrSessionDateInPast
		}
		session.StartsAt = *req.StartsAt
	}
	if req.Type != nil {
		session.Type = *req.Type
	}
	if req.Address != nil {
		session.Address = *req.Address
	}
	if req.City != nil {
		session.City = *req.City
	}
	if req.Province != nil {
		session.Province = *req.Province
	}
	if req.PostalCode != nil {
		session.PostalCode = *req.PostalCode
	}
	if req.Status != nil {
		session.Status = *req.Status
	}

	if err := s.repo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return s.toResponse(session), nil
}

// Delete deletes a session, its team formations and their player assignments
func (s *SessionService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSessionNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// CreateTeam fields a team formation for a session
func (s *SessionService) CreateTeam(sessionID uuid.UUID, req *CreateSessionTeamRequest) (*SessionTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to verify session: %w", err)
	}

	if _, err := s.locationRepo.GetByID(req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to verify location: %w", err)
	}

	if _, err := s.personnelRepo.GetByID(req.HeadCoachID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to verify head coach: %w", err)
	}

	team := &models.SessionTeam{
		SessionID:   sessionID,
		TeamNumber:  req.TeamNumber,
		TeamName:    req.TeamName,
		LocationID:  req.LocationID,
		HeadCoachID: req.HeadCoachID,
		Gender:      req.Gender,
	}

	if err := s.repo.CreateTeam(team); err != nil {
		return nil, fmt.Errorf("failed to create session team: %w", err)
	}

	return s.toTeamResponse(team), nil
}

// GetTeamByID retrieves a team formation with its roster
func (s *SessionService) GetTeamByID(id uuid.UUID) (*SessionTeamResponse, error) {
	team, err := s.repo.GetTeamWithPlayers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionTeamNotFound
		}
		return nil, fmt.Errorf("failed to get session team: %w", err)
	}

	return s.toTeamResponse(team), nil
}

// GetAllTeams retrieves team formations with pagination
func (s *SessionService) GetAllTeams(page, pageSize int) (*SessionTeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetAllTeams(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get session teams: %w", err)
	}

	responses := make([]SessionTeamResponse, len(teams))
	for i, t := range teams {
		responses[i] = *s.toTeamResponse(&t)
	}

	return &SessionTeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateTeam updates a team formation, including recording a game score
func (s *SessionService) UpdateTeam(id uuid.UUID, req *UpdateSessionTeamRequest) (*SessionTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetTeamByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionTeamNotFound
		}
		return nil, fmt.Errorf("failed to get session team: %w", err)
	}

	if req.HeadCoachID != nil {
		if _, err := s.personnelRepo.GetByID(*req.HeadCoachID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonnelNotFound
			}
			return nil, fmt.Errorf("failed to verify head coach: %w", err)
		}
		team.HeadCoachID = *req.HeadCoachID
	}
	if req.TeamName != nil {
		team.TeamName = *req.TeamName
	}
	if req.Gender != nil {
		team.Gender = *req.Gender
	}
	if req.Score != nil {
		team.Score = req.Score
	}

	if err := s.repo.UpdateTeam(team); err != nil {
		return nil, fmt.Errorf("failed to update session team: %w", err)
	}

	return s.toTeamResponse(team), nil
}

// DeleteTeam deletes a team formation and its player assignments
func (s *SessionService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.repo.GetTeamByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSessionTeamNotFound
		}
		return fmt.Errorf("failed to get session team: %w", err)
	}

	if err := s.repo.DeleteTeam(id); err != nil {
		return fmt.Errorf("failed to delete session team: %w", err)
	}

	return nil
}

func (s *SessionService) toResponse(session *models.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:         session.ID,
		Type:       session.Type,
		StartsAt:   session.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
		Address:    session.Address,
		City:       session.City,
		Province:   session.Province,
		PostalCode: session.PostalCode,
		Status:     session.Status,
		CreatedAt:  session.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  session.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, t := range session.Teams {
		resp.Teams = append(resp.Teams, *s.toTeamResponse(&t))
	}
	return resp
}

func (s *SessionService) toTeamResponse(team *models.SessionTeam) *SessionTeamResponse {
	resp := &SessionTeamResponse{
		ID:          team.ID,
		SessionID:   team.SessionID,
		TeamNumber:  team.TeamNumber,
		TeamName:    team.TeamName,
		LocationID:  team.LocationID,
		HeadCoachID: team.HeadCoachID,
		Gender:      team.Gender,
		Score:       team.Score,
	}
	if team.Location != nil {
		resp.LocationName = team.Location.Name
	}
	if team.HeadCoach != nil {
		resp.HeadCoachName = team.HeadCoach.FirstName + " " + team.HeadCoach.LastName
	}
	for _, p := range team.Players {
		resp.Players = append(resp.Players, *playerAssignmentToResponse(&p))
	}
	return resp
}
