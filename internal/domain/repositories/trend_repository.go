package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/umrah-feedback/insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// TrendRepository implements data access for trend analysis snapshots
type TrendRepository struct {
	db *gorm.DB
}

// NewTrendRepository creates a new TrendRepository instance
func NewTrendRepository(db *gorm.DB) *TrendRepository {
	return &TrendRepository{
		db: db,
	}
}

// DeleteByRange removes every snapshot stored for the given range. Used to
// clear old rows before inserting a fresh analysis result.
func (r *TrendRepository) DeleteByRange(trendRange string) error {
	if err := r.db.Where(`"range" = ?`, trendRange).Delete(&entities.TrendHistory{}).Error; err != nil {
		return fmt.Errorf("failed to clear trend history for range %s: %w", trendRange, err)
	}

	return nil
}

// Insert stores a new snapshot
func (r *TrendRepository) Insert(snapshot *entities.TrendHistory) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}

	if err := r.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to save trend history: %w", err)
	}

	return nil
}

// GetLatest returns the most recently generated snapshot across all ranges
func (r *TrendRepository) GetLatest() (*entities.TrendHistory, error) {
	var snapshot entities.TrendHistory

	if err := r.db.Order("analysed_at desc").First(&snapshot).Error; err != nil {
		return nil, fmt.Errorf("no trend history available: %w", err)
	}

	return &snapshot, nil
}

// GetByRange returns the most recent snapshot for one range
func (r *TrendRepository) GetByRange(trendRange string) (*entities.TrendHistory, error) {
	var snapshot entities.TrendHistory

	if err := r.db.Where(`"range" = ?`, trendRange).Order("analysed_at desc").First(&snapshot).Error; err != nil {
		return nil, fmt.Errorf("no trend history for range %s: %w", trendRange, err)
	}

	return &snapshot, nil
}
