package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Reporting ranges accepted by the trend analysis.
const (
	TrendRangeMonth    = "1m"
	TrendRangeHalfYear = "6m"
	TrendRangeYear     = "1y"
)

// ProblemCount is one ranked problem phrase with its occurrence count
type ProblemCount struct {
	Problem string `json:"problem"`
	Count   int    `json:"count"`
	Rank    int    `json:"rank"`
}

// TrendProblems is the denormalized result blob stored in trend_history.problems
type TrendProblems struct {
	List   []string       `json:"list"`
	Counts []ProblemCount `json:"counts"`
}

// TrendHistory represents one persisted analysis snapshot. Only one live row
// per range is intended; the analyzer deletes prior rows for a range before
// inserting the new one.
type TrendHistory struct {
	ID         string        `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Range      string        `json:"range" gorm:"column:range"`
	Problems   TrendProblems `json:"problems" gorm:"column:problems;type:jsonb"`
	AnalysedAt time.Time     `json:"analysed_at" gorm:"column:analysed_at"`
}

// TableName sets the table name
func (TrendHistory) TableName() string {
	return "trend_history"
}

// Value implements driver.Valuer so GORM writes the blob as JSONB
func (p TrendProblems) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for reading the JSONB column
func (p *TrendProblems) Scan(value interface{}) error {
	if value == nil {
		*p = TrendProblems{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for problems column: %T", value)
	}

	return json.Unmarshal(data, p)
}
