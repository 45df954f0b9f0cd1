package entities

import "time"

// Profile represents an authenticated user's survey state. The row itself is
// owned by the auth system; this API only reads survey_completed and id_number
// and flips survey_completed after a submission.
type Profile struct {
	ID              string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	IDNumber        string    `json:"id_number" gorm:"column:id_number"`
	SurveyCompleted bool      `json:"survey_completed" gorm:"column:survey_completed"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName sets the table name
func (Profile) TableName() string {
	return "profiles"
}

// UmraTaker is one registered pilgrim, keyed by national/passport ID number.
// Survey eligibility is verified against this table.
type UmraTaker struct {
	ID       string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	IDNumber string    `json:"id_number" gorm:"column:id_number"`
	UmraDate time.Time `json:"umra_date" gorm:"column:umra_date"`
}

// TableName sets the table name
func (UmraTaker) TableName() string {
	return "umra_takers"
}
