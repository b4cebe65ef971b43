package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type CandidateHistory struct {
	BaseModel
	CandidateID string           `gorm:"type:varchar(36);index"`
	UserID      *string          `gorm:"type:varchar(36)"`
	UserName    string           `gorm:"type:varchar(255)"`
	ActionType  ActionType       `gorm:"type:varchar(255)"`
	Changes     CandidateChanges `gorm:"type:jsonb"`
}

func (j CandidateChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *CandidateChanges) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	}
	return errors.Errorf("unsupported changes value %T", value)
}

type CandidateChanges struct {
	Description string            `json:"description"`
	Data        []CandidateChange `json:"data"`
}

type CandidateChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

type ActionType string

const (
	HistoryTypeAdded       ActionType = "added"        // candidate created
	HistoryTypeComment     ActionType = "comment"      // note appended
	HistoryTypeStageChange ActionType = "stage_change" // status changed
	HistoryTypeRating      ActionType = "rating"
	HistoryTypeDocument    ActionType = "document"
	HistoryTypeInterview   ActionType = "interview"
	HistoryTypeFeedback    ActionType = "feedback"
)
