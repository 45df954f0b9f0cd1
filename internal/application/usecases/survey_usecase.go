package usecases

import (
	"fmt"
	"log"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
)

// SurveyStore persists and serves submitted questionnaires
type SurveyStore interface {
	CreateSurvey(survey *entities.Survey) error
	GetSurveys(params map[string]interface{}) ([]entities.Survey, int64, error)
	GetSurveyByID(id string) (*entities.Survey, error)
	GetSurveysByUser(userID string) ([]entities.Survey, error)
}

// ProfileStore tracks per-user survey state
type ProfileStore interface {
	GetProfile(userID string) (*entities.Profile, error)
	MarkSurveyCompleted(userID string) error
}

// ErrSurveyAlreadySubmitted rejects a second submission by the same user.
var ErrSurveyAlreadySubmitted = fmt.Errorf("you have already submitted a survey")

// SurveyUseCase implements the survey submission and read use cases
type SurveyUseCase struct {
	surveys  SurveyStore
	profiles ProfileStore
}

// NewSurveyUseCase creates a new SurveyUseCase instance
func NewSurveyUseCase(surveys SurveyStore, profiles ProfileStore) *SurveyUseCase {
	return &SurveyUseCase{
		surveys:  surveys,
		profiles: profiles,
	}
}

// SubmitSurvey stores one questionnaire after checking the user has not
// already submitted, then marks the profile completed. The mark step failing
// is logged but not fatal: the survey itself is already stored.
func (u *SurveyUseCase) SubmitSurvey(survey *entities.Survey) (*entities.Survey, error) {
	profile, err := u.profiles.GetProfile(survey.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}

	if profile.SurveyCompleted {
		return nil, ErrSurveyAlreadySubmitted
	}

	if err := u.surveys.CreateSurvey(survey); err != nil {
		return nil, err
	}

	if err := u.profiles.MarkSurveyCompleted(survey.UserID); err != nil {
		log.Printf("⚠️ Error marking survey completed for user %s: %v", survey.UserID, err)
	}

	return survey, nil
}

// GetSurveys returns all surveys with pagination, newest first
func (u *SurveyUseCase) GetSurveys(page, limit int, userID string) ([]entities.Survey, int64, error) {
	params := map[string]interface{}{
		"page":  page,
		"limit": limit,
	}

	if userID != "" {
		params["user_id"] = userID
	}

	return u.surveys.GetSurveys(params)
}

// GetSurveyByID returns a single survey
func (u *SurveyUseCase) GetSurveyByID(id string) (*entities.Survey, error) {
	return u.surveys.GetSurveyByID(id)
}

// GetUserSurveys returns every survey submitted by one user
func (u *SurveyUseCase) GetUserSurveys(userID string) ([]entities.Survey, error) {
	return u.surveys.GetSurveysByUser(userID)
}
