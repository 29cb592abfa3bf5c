package repository

import (
	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByName retrieves a location by name
func (r *LocationRepository) GetByName(name string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetAll retrieves all locations ordered by province then city
func (r *LocationRepository) GetAll(limit, offset int) ([]models.Location, int64, error) {
	var locations []models.Location
	var total int64

	if err := r.db.Model(&models.Location{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("province, city, name").Limit(limit).Offset(offset).Find(&locations).Error
	if err != nil {
		return nil, 0, err
	}

	return locations, total, nil
}

// Update updates a location
func (r *LocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// Delete deletes a location
func (r *LocationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Location{}, "id = ?", id).Error
}

// DependentCounts counts the records that block deletion of a location
func (r *LocationRepository) DependentCounts(id uuid.UUID) (members, familyMembers, teams int64, err error) {
	if err = r.db.Model(&models.ClubMember{}).Where("location_id = ?", id).Count(&members).Error; err != nil {
		return
	}
	if err = r.db.Model(&models.FamilyMember{}).Where("location_id = ?", id).Count(&familyMembers).Error; err != nil {
		return
	}
	err = r.db.Model(&models.SessionTeam{}).Where("location_id = ?", id).Count(&teams).Error
	return
}
