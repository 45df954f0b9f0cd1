package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Corpus extraction filters surveys by submission time
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_created_at ON surveys (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_user_id ON surveys (user_id)").Error; err != nil {
		return err
	}

	// Snapshot replacement deletes by range; dashboard reads order by analysed_at
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trend_history_range ON trend_history (\"range\")").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trend_history_analysed_at ON trend_history (analysed_at)").Error; err != nil {
		return err
	}

	// ID verification looks up takers and profiles by id_number
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_umra_takers_id_number ON umra_takers (id_number)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_profiles_id_number ON profiles (id_number)").Error; err != nil {
		return err
	}

	return nil
}
