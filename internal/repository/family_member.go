package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMemberRepository handles database operations for family members,
// their secondary contacts and guardian relationships
type FamilyMemberRepository struct {
	db *gorm.DB
}

// NewFamilyMemberRepository creates a new family member repository
func NewFamilyMemberRepository(db *gorm.DB) *FamilyMemberRepository {
	return &FamilyMemberRepository{db: db}
}

// Create creates a new family member
func (r *FamilyMemberRepository) Create(familyMember *models.FamilyMember) error {
	return r.db.Create(familyMember).Error
}

// GetByID retrieves a family member by ID
func (r *FamilyMemberRepository) GetByID(id uuid.UUID) (*models.FamilyMember, error) {
	var familyMember models.FamilyMember
	err := r.db.First(&familyMember, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &familyMember, nil
}

// GetByIdentity retrieves a family member matching any of the unique identity
// fields
func (r *FamilyMemberRepository) GetByIdentity(ssn, medicareNumber, email string) (*models.FamilyMember, error) {
	var familyMember models.FamilyMember
	err := r.db.First(&familyMember, "ssn = ? OR medicare_number = ? OR email = ?", ssn, medicareNumber, email).Error
	if err != nil {
		return nil, err
	}
	return &familyMember, nil
}

// GetAll retrieves all family members ordered by last then first name
func (r *FamilyMemberRepository) GetAll(limit, offset int) ([]models.FamilyMember, int64, error) {
	var familyMembers []models.FamilyMember
	var total int64

	if err := r.db.Model(&models.FamilyMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&familyMembers).Error
	if err != nil {
		return nil, 0, err
	}

	return familyMembers, total, nil
}

// GetWithDetails retrieves a family member with location, secondary contacts
// and sponsored minors
func (r *FamilyMemberRepository) GetWithDetails(id uuid.UUID) (*models.FamilyMember, error) {
	var familyMember models.FamilyMember
	err := r.db.
		Preload("Location").
		Preload("SecondaryContacts").
		Preload("Relationships").
		Preload("Relationships.Minor").
		First(&familyMember, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &familyMember, nil
}

// Update updates a family member
func (r *FamilyMemberRepository) Update(familyMember *models.FamilyMember) error {
	return r.db.Save(familyMember).Error
}

// Delete deletes a family member
func (r *FamilyMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FamilyMember{}, "id = ?", id).Error
}

// CreateSecondary creates a secondary contact
func (r *FamilyMemberRepository) CreateSecondary(contact *models.SecondaryFamilyMember) error {
	return r.db.Create(contact).Error
}

// GetSecondaryByID retrieves a secondary contact by ID
func (r *FamilyMemberRepository) GetSecondaryByID(id uuid.UUID) (*models.SecondaryFamilyMember, error) {
	var contact models.SecondaryFamilyMember
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateSecondary updates a secondary contact
func (r *FamilyMemberRepository) UpdateSecondary(contact *models.SecondaryFamilyMember) error {
	return r.db.Save(contact).Error
}

// DeleteSecondary deletes a secondary contact
func (r *FamilyMemberRepository) DeleteSecondary(id uuid.UUID) error {
	return r.db.Delete(&models.SecondaryFamilyMember{}, "id = ?", id).Error
}

// CreateRelationship creates a guardian relationship
func (r *FamilyMemberRepository) CreateRelationship(rel *models.FamilyRelationship) error {
	return r.db.Create(rel).Error
}

// GetRelationshipByID retrieves a guardian relationship by ID
func (r *FamilyMemberRepository) GetRelationshipByID(id uuid.UUID) (*models.FamilyRelationship, error) {
	var rel models.FamilyRelationship
	err := r.db.First(&rel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// GetRelationshipByPair retrieves the relationship between a minor and a
// guardian, if any
func (r *FamilyMemberRepository) GetRelationshipByPair(minorID, guardianID uuid.UUID) (*models.FamilyRelationship, error) {
	var rel models.FamilyRelationship
	err := r.db.First(&rel, "minor_id = ? AND guardian_id = ?", minorID, guardianID).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// DeleteRelationship deletes a guardian relationship
func (r *FamilyMemberRepository) DeleteRelationship(id uuid.UUID) error {
	return r.db.Delete(&models.FamilyRelationship{}, "id = ?", id).Error
}
