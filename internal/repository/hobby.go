package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HobbyRepository handles database operations for hobbies and their
// member associations
type HobbyRepository struct {
	db *gorm.DB
}

// NewHobbyRepository creates a new hobby repository
func NewHobbyRepository(db *gorm.DB) *HobbyRepository {
	return &HobbyRepository{db: db}
}

// Create creates a new hobby
func (r *HobbyRepository) Create(hobby *models.Hobby) error {
	return r.db.Create(hobby).Error
}

// GetByID retrieves a hobby by ID
func (r *HobbyRepository) GetByID(id uuid.UUID) (*models.Hobby, error) {
	var hobby models.Hobby
	err := r.db.First(&hobby, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hobby, nil
}

// GetByName retrieves a hobby by name
func (r *HobbyRepository) GetByName(name string) (*models.Hobby, error) {
	var hobby models.Hobby
	err := r.db.First(&hobby, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &hobby, nil
}

// GetAll retrieves all hobbies ordered by name
func (r *HobbyRepository) GetAll() ([]models.Hobby, error) {
	var hobbies []models.Hobby
	err := r.db.Order("name").Find(&hobbies).Error
	return hobbies, err
}

// Delete deletes a hobby and its member associations
func (r *HobbyRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MemberHobby{}, "hobby_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hobby{}, "id = ?", id).Error
	})
}

// Attach associates a hobby with a member
func (r *HobbyRepository) Attach(memberID, hobbyID uuid.UUID) error {
	return r.db.Create(&models.MemberHobby{MemberID: memberID, HobbyID: hobbyID}).Error
}

// Detach removes a hobby association from a member
func (r *HobbyRepository) Detach(memberID, hobbyID uuid.UUID) error {
	return r.db.Delete(&models.MemberHobby{}, "member_id = ? AND hobby_id = ?", memberID, hobbyID).Error
}

// GetMemberHobbies retrieves a member's hobby associations with the hobby
// preloaded
func (r *HobbyRepository) GetMemberHobbies(memberID uuid.UUID) ([]models.MemberHobby, error) {
	var memberHobbies []models.MemberHobby
	err := r.db.Preload("Hobby").Where("member_id = ?", memberID).Find(&memberHobbies).Error
	return memberHobbies, err
}
