package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/umrah-feedback/insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// SurveyRepository implements data access for submitted surveys
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new SurveyRepository instance
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

// CreateSurvey stores one submitted questionnaire
func (r *SurveyRepository) CreateSurvey(survey *entities.Survey) error {
	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}

	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = time.Now().UTC()
	}

	if err := r.db.Create(survey).Error; err != nil {
		return fmt.Errorf("failed to store survey: %w", err)
	}

	return nil
}

// GetSurveys returns all surveys, newest first, with pagination
func (r *SurveyRepository) GetSurveys(params map[string]interface{}) ([]entities.Survey, int64, error) {
	var surveys []entities.Survey
	var total int64

	query := r.db.Model(&entities.Survey{})

	// Optional owner filter
	if userID, ok := params["user_id"].(string); ok && userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 10
	}

	// Count total records before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count surveys: %w", err)
	}

	offset := (page - 1) * limit
	query = query.Order("created_at desc").Offset(offset).Limit(limit)

	if err := query.Find(&surveys).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch surveys: %w", err)
	}

	return surveys, total, nil
}

// GetSurveyByID returns a single survey by its id
func (r *SurveyRepository) GetSurveyByID(id string) (*entities.Survey, error) {
	var survey entities.Survey

	if err := r.db.Where("id = ?", id).First(&survey).Error; err != nil {
		return nil, fmt.Errorf("survey not found: %w", err)
	}

	return &survey, nil
}

// GetSurveysByUser returns every survey submitted by one user, newest first
func (r *SurveyRepository) GetSurveysByUser(userID string) ([]entities.Survey, error) {
	var surveys []entities.Survey

	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user surveys: %w", err)
	}

	return surveys, nil
}

// GetSurveysSince returns every survey submitted at or after the cutoff, in
// submission order. This is the corpus source for the trend analysis.
func (r *SurveyRepository) GetSurveysSince(cutoff time.Time) ([]entities.Survey, error) {
	var surveys []entities.Survey

	if err := r.db.Where("created_at >= ?", cutoff).Order("created_at asc").Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch surveys since %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return surveys, nil
}
