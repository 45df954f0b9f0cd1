package repositories

import (
	"fmt"
	"time"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ProfileRepository implements data access for user profiles and the pilgrim
// registry used for survey eligibility checks
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// GetProfile returns the profile for one user
func (r *ProfileRepository) GetProfile(userID string) (*entities.Profile, error) {
	var profile entities.Profile

	if err := r.db.Where("id = ?", userID).First(&profile).Error; err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}

	return &profile, nil
}

// MarkSurveyCompleted flips the survey_completed flag for one user
func (r *ProfileRepository) MarkSurveyCompleted(userID string) error {
	result := r.db.Model(&entities.Profile{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"survey_completed": true,
			"updated_at":       time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark survey completed: %w", result.Error)
	}

	return nil
}

// GetTakerByIDNumber looks up a registered pilgrim by ID number
func (r *ProfileRepository) GetTakerByIDNumber(idNumber string) (*entities.UmraTaker, error) {
	var taker entities.UmraTaker

	if err := r.db.Where("id_number = ?", idNumber).First(&taker).Error; err != nil {
		return nil, fmt.Errorf("id number not registered: %w", err)
	}

	return &taker, nil
}

// CountProfilesWithIDNumber returns how many profiles already claim an ID number
func (r *ProfileRepository) CountProfilesWithIDNumber(idNumber string) (int64, error) {
	var total int64

	if err := r.db.Model(&entities.Profile{}).Where("id_number = ?", idNumber).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to check id number usage: %w", err)
	}

	return total, nil
}

// LinkIDNumber attaches a verified ID number to a user profile
func (r *ProfileRepository) LinkIDNumber(userID, idNumber string) error {
	result := r.db.Model(&entities.Profile{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"id_number":  idNumber,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to link id number: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("profile not found for user %s", userID)
	}

	return nil
}
