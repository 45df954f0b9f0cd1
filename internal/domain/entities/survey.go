package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ResponseTypeText is the only response type consumed by the trend analysis.
const ResponseTypeText = "text"

// Survey represents one submitted questionnaire
type Survey struct {
	ID        string        `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Title     string        `json:"title" gorm:"column:title"`
	UserID    string        `json:"user_id" gorm:"column:user_id;type:uuid"`
	Answers   SurveyAnswers `json:"answers" gorm:"column:answers;type:jsonb"`
	CreatedAt time.Time     `json:"created_at" gorm:"column:created_at"`
}

// TableName sets the table name
func (Survey) TableName() string {
	return "surveys"
}

// SurveyAnswers is the denormalized answers blob stored in the surveys.answers
// JSONB column
type SurveyAnswers struct {
	Responses []ResponseItem `json:"responses"`
}

// ResponseItem is one answer to one question. Value is loosely typed: a string
// for text answers, a number for ratings and sliders, an array for checkboxes.
type ResponseItem struct {
	QuestionID string      `json:"question_id,omitempty"`
	Section    string      `json:"section,omitempty"`
	Type       string      `json:"type"`
	Value      interface{} `json:"value"`
}

// Value implements driver.Valuer so GORM writes the blob as JSONB
func (a SurveyAnswers) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for reading the JSONB column
func (a *SurveyAnswers) Scan(value interface{}) error {
	if value == nil {
		*a = SurveyAnswers{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for answers column: %T", value)
	}

	return json.Unmarshal(data, a)
}
