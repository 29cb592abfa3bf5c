package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubMemberRepository handles database operations for club members
type ClubMemberRepository struct {
	db *gorm.DB
}

// NewClubMemberRepository creates a new club member repository
func NewClubMemberRepository(db *gorm.DB) *ClubMemberRepository {
	return &ClubMemberRepository{db: db}
}

// Create creates a new club member. The membership number is assigned by the
// model hook inside the insert transaction.
func (r *ClubMemberRepository) Create(member *models.ClubMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a club member by ID
func (r *ClubMemberRepository) GetByID(id uuid.UUID) (*models.ClubMember, error) {
	var member models.ClubMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIdentity retrieves a club member matching any of the unique identity
// fields
func (r *ClubMemberRepository) GetByIdentity(ssn, medicareNumber, email string) (*models.ClubMember, error) {
	var member models.ClubMember
	err := r.db.First(&member, "ssn = ? OR medicare_number = ? OR email = ?", ssn, medicareNumber, email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByMembershipNumber retrieves a club member by membership number
func (r *ClubMemberRepository) GetByMembershipNumber(number int64) (*models.ClubMember, error) {
	var member models.ClubMember
	err := r.db.First(&member, "membership_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all club members ordered by membership number
func (r *ClubMemberRepository) GetAll(limit, offset int) ([]models.ClubMember, int64, error) {
	var members []models.ClubMember
	var total int64

	if err := r.db.Model(&models.ClubMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("membership_number").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetWithDetails retrieves a club member with location, payments, hobbies,
// guardian links and secondary contacts
func (r *ClubMemberRepository) GetWithDetails(id uuid.UUID) (*models.ClubMember, error) {
	var member models.ClubMember
	err := r.db.
		Preload("Location").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_date DESC")
		}).
		Preload("Hobbies.Hobby").
		Preload("Relationships.Guardian").
		Preload("SecondaryContacts").
		First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates a club member
func (r *ClubMemberRepository) Update(member *models.ClubMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a club member and its dependent rows
func (r *ClubMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Select(
		"Payments", "Assignments", "Relationships", "Hobbies", "SecondaryContacts",
	).Delete(&models.ClubMember{BaseModel: models.BaseModel{ID: id}}).Error
}

// SetActiveStatus flips a member's activity flag without touching other fields
func (r *ClubMemberRepository) SetActiveStatus(id uuid.UUID, active bool) error {
	return r.db.Model(&models.ClubMember{}).Where("id = ?", id).Update("active", active).Error
}
