package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions and their team
// formations
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAll retrieves all sessions in chronological order
func (r *SessionRepository) GetAll(limit, offset int) ([]models.Session, int64, error) {
	var sessions []models.Session
	var total int64

	if err := r.db.Model(&models.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("starts_at").Limit(limit).Offset(offset).Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// GetWithTeams retrieves a session with its team formations, coaches and
// player rosters
func (r *SessionRepository) GetWithTeams(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_number")
		}).
		Preload("Teams.HeadCoach").
		Preload("Teams.Location").
		Preload("Teams.Players.Member").
		First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update updates a session
func (r *SessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

// Delete deletes a session and its team formations
func (r *SessionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var teamIDs []uuid.UUID
		err := tx.Model(&models.SessionTeam{}).
			Where("session_id = ?", id).
			Pluck("id", &teamIDs).Error
		if err != nil {
			return err
		}
		if len(teamIDs) > 0 {
			if err := tx.Delete(&models.PlayerAssignment{}, "team_id IN ?", teamIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.SessionTeam{}, "session_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Session{}, "id = ?", id).Error
	})
}

// CreateTeam creates a team formation
func (r *SessionRepository) CreateTeam(team *models.SessionTeam) error {
	return r.db.Create(team).Error
}

// GetTeamByID retrieves a team formation by ID
func (r *SessionRepository) GetTeamByID(id uuid.UUID) (*models.SessionTeam, error) {
	var team models.SessionTeam
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetTeamWithPlayers retrieves a team formation with its session, coach and
// player roster
func (r *SessionRepository) GetTeamWithPlayers(id uuid.UUID) (*models.SessionTeam, error) {
	var team models.SessionTeam
	err := r.db.
		Preload("Session").
		Preload("Location").
		Preload("HeadCoach").
		Preload("Players.Member").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllTeams retrieves all team formations
func (r *SessionRepository) GetAllTeams(limit, offset int) ([]models.SessionTeam, int64, error) {
	var teams []models.SessionTeam
	var total int64

	if err := r.db.Model(&models.SessionTeam{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Session").Order("team_name").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// UpdateTeam updates a team formation
func (r *SessionRepository) UpdateTeam(team *models.SessionTeam) error {
	return r.db.Save(team).Error
}

// DeleteTeam deletes a team formation and its player assignments
func (r *SessionRepository) DeleteTeam(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PlayerAssignment{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SessionTeam{}, "id = ?", id).Error
	})
}
