package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonnelRepository handles database operations for personnel and their
// role assignments
type PersonnelRepository struct {
	db *gorm.DB
}

// NewPersonnelRepository creates a new personnel repository
func NewPersonnelRepository(db *gorm.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

// Create creates a new personnel record
func (r *PersonnelRepository) Create(personnel *models.Personnel) error {
	return r.db.Create(personnel).Error
}

// GetByID retrieves a personnel record by ID
func (r *PersonnelRepository) GetByID(id uuid.UUID) (*models.Personnel, error) {
	var personnel models.Personnel
	err := r.db.First(&personnel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &personnel, nil
}

// GetByIdentity retrieves a personnel record matching any of the unique
// identity fields. Used for duplicate checks before create/edit.
func (r *PersonnelRepository) GetByIdentity(ssn, medicareNumber, email string) (*models.Personnel, error) {
	var personnel models.Personnel
	err := r.db.First(&personnel, "ssn = ? OR medicare_number = ? OR email = ?", ssn, medicareNumber, email).Error
	if err != nil {
		return nil, err
	}
	return &personnel, nil
}

// GetAll retrieves all personnel ordered by last then first name
func (r *PersonnelRepository) GetAll(limit, offset int) ([]models.Personnel, int64, error) {
	var personnel []models.Personnel
	var total int64

	if err := r.db.Model(&models.Personnel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&personnel).Error
	if err != nil {
		return nil, 0, err
	}

	return personnel, total, nil
}

// GetWithAssignments retrieves a personnel record with its role history
func (r *PersonnelRepository) GetWithAssignments(id uuid.UUID) (*models.Personnel, error) {
	var personnel models.Personnel
	err := r.db.Preload("Assignments", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date DESC")
	}).Preload("Assignments.Location").First(&personnel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &personnel, nil
}

// Update updates a personnel record
func (r *PersonnelRepository) Update(personnel *models.Personnel) error {
	return r.db.Save(personnel).Error
}

// Delete deletes a personnel record
func (r *PersonnelRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Personnel{}, "id = ?", id).Error
}

// CountCoachedTeams counts session teams that reference the personnel as head coach
func (r *PersonnelRepository) CountCoachedTeams(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SessionTeam{}).Where("head_coach_id = ?", id).Count(&count).Error
	return count, err
}

// CreateAssignment creates a personnel assignment
func (r *PersonnelRepository) CreateAssignment(assignment *models.PersonnelAssignment) error {
	return r.db.Create(assignment).Error
}

// GetAssignmentByID retrieves a personnel assignment by ID
func (r *PersonnelRepository) GetAssignmentByID(id uuid.UUID) (*models.PersonnelAssignment, error) {
	var assignment models.PersonnelAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAssignmentsByPersonnel retrieves a personnel's assignments, newest first
func (r *PersonnelRepository) GetAssignmentsByPersonnel(personnelID uuid.UUID) ([]models.PersonnelAssignment, error) {
	var assignments []models.PersonnelAssignment
	err := r.db.Where("personnel_id = ?", personnelID).Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

// UpdateAssignment updates a personnel assignment
func (r *PersonnelRepository) UpdateAssignment(assignment *models.PersonnelAssignment) error {
	return r.db.Save(assignment).Error
}

// DeleteAssignment deletes a personnel assignment
func (r *PersonnelRepository) DeleteAssignment(id uuid.UUID) error {
	return r.db.Delete(&models.PersonnelAssignment{}, "id = ?", id).Error
}
