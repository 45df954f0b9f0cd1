package migrations

import (
	"github.com/umrah-feedback/insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables used by the API
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Survey{},
		&entities.TrendHistory{},
		&entities.Profile{},
		&entities.UmraTaker{},
	)
}
