package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerAssignmentRepository handles database operations for player
// assignments
type PlayerAssignmentRepository struct {
	db *gorm.DB
}

// NewPlayerAssignmentRepository creates a new player assignment repository
func NewPlayerAssignmentRepository(db *gorm.DB) *PlayerAssignmentRepository {
	return &PlayerAssignmentRepository{db: db}
}

// Create creates a new player assignment
func (r *PlayerAssignmentRepository) Create(assignment *models.PlayerAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a player assignment by ID
func (r *PlayerAssignmentRepository) GetByID(id uuid.UUID) (*models.PlayerAssignment, error) {
	var assignment models.PlayerAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByTeamAndMember retrieves the assignment for a (team, member) pair,
// if any
func (r *PlayerAssignmentRepository) GetByTeamAndMember(teamID, memberID uuid.UUID) (*models.PlayerAssignment, error) {
	var assignment models.PlayerAssignment
	err := r.db.First(&assignment, "team_id = ? AND member_id = ?", teamID, memberID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByTeam retrieves a team's roster with members preloaded
func (r *PlayerAssignmentRepository) GetByTeam(teamID uuid.UUID) ([]models.PlayerAssignment, error) {
	var assignments []models.PlayerAssignment
	err := r.db.Preload("Member").Where("team_id = ?", teamID).Find(&assignments).Error
	return assignments, err
}

// GetByMember retrieves a member's assignments with teams preloaded
func (r *PlayerAssignmentRepository) GetByMember(memberID uuid.UUID) ([]models.PlayerAssignment, error) {
	var assignments []models.PlayerAssignment
	err := r.db.Preload("Team").Preload("Team.Session").Where("member_id = ?", memberID).Find(&assignments).Error
	return assignments, err
}

// Update updates a player assignment
func (r *PlayerAssignmentRepository) Update(assignment *models.PlayerAssignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes a player assignment
func (r *PlayerAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PlayerAssignment{}, "id = ?", id).Error
}
