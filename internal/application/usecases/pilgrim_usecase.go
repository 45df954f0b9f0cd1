package usecases

import (
	"fmt"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
)

// PilgrimRegistry verifies ID numbers against the pilgrim registry and links
// them to user profiles
type PilgrimRegistry interface {
	GetTakerByIDNumber(idNumber string) (*entities.UmraTaker, error)
	CountProfilesWithIDNumber(idNumber string) (int64, error)
	LinkIDNumber(userID, idNumber string) error
}

// VerificationResult reports whether an ID number can be used for the survey
type VerificationResult struct {
	Valid bool                `json:"valid"`
	Taker *entities.UmraTaker `json:"taker,omitempty"`
}

// PilgrimUseCase implements survey eligibility checks for registered pilgrims
type PilgrimUseCase struct {
	registry PilgrimRegistry
}

// NewPilgrimUseCase creates a new PilgrimUseCase instance
func NewPilgrimUseCase(registry PilgrimRegistry) *PilgrimUseCase {
	return &PilgrimUseCase{
		registry: registry,
	}
}

// VerifyIDNumber checks that an ID number exists in the registry and is not
// already claimed by another profile
func (u *PilgrimUseCase) VerifyIDNumber(idNumber string) (*VerificationResult, error) {
	taker, err := u.registry.GetTakerByIDNumber(idNumber)
	if err != nil {
		// Unregistered IDs are a normal outcome, not a failure
		return &VerificationResult{Valid: false}, nil
	}

	claimed, err := u.registry.CountProfilesWithIDNumber(idNumber)
	if err != nil {
		return nil, err
	}

	if claimed > 0 {
		return &VerificationResult{Valid: false}, nil
	}

	return &VerificationResult{Valid: true, Taker: taker}, nil
}

// LinkIDNumber attaches a verified ID number to a user profile
func (u *PilgrimUseCase) LinkIDNumber(userID, idNumber string) error {
	if _, err := u.registry.GetTakerByIDNumber(idNumber); err != nil {
		return fmt.Errorf("id number not found in registry: %w", err)
	}

	return u.registry.LinkIDNumber(userID, idNumber)
}
