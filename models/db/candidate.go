package dbmodels

import (
	"ats-backend/models"
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Candidate struct {
	BaseModel
	Name              string                 `gorm:"type:varchar(255)"`
	Email             string                 `gorm:"type:varchar(255);index"`
	Phone             string                 `gorm:"type:varchar(100)"`
	Position          string                 `gorm:"type:varchar(255)"`
	Experience        int                    // years
	Skills            pq.StringArray         `gorm:"type:text[]"`
	Location          string                 `gorm:"type:varchar(255)"`
	SalaryExpectation float64
	Status            models.CandidateStatus `gorm:"type:varchar(50);index"`
	Source            string                 `gorm:"type:varchar(255)"`
	Rating            float64
	ResumeUrl         string
	AppliedDate       time.Time `gorm:"type:date"`
	LastActivity      time.Time
	Version           int64
	Notes             []CandidateNote     `gorm:"foreignKey:CandidateID"`
	Documents         []CandidateDocument `gorm:"foreignKey:CandidateID"`
	Interviews        []Interview         `gorm:"foreignKey:CandidateID"`
}

// Clone returns a copy that shares no slices with the receiver.
func (c Candidate) Clone() Candidate {
	out := c
	out.Skills = append(pq.StringArray(nil), c.Skills...)
	out.Notes = make([]CandidateNote, 0, len(c.Notes))
	for _, note := range c.Notes {
		out.Notes = append(out.Notes, note.Clone())
	}
	out.Documents = append(make([]CandidateDocument, 0, len(c.Documents)), c.Documents...)
	out.Interviews = make([]Interview, 0, len(c.Interviews))
	for _, interview := range c.Interviews {
		out.Interviews = append(out.Interviews, interview.Clone())
	}
	return out
}

func (c Candidate) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func (c *Candidate) FindInterview(interviewID string) *Interview {
	for idx := range c.Interviews {
		if c.Interviews[idx].ID == interviewID {
			return &c.Interviews[idx]
		}
	}
	return nil
}

type CandidateNote struct {
	BaseModel
	CandidateID string         `gorm:"type:varchar(36);index"`
	Author      string         `gorm:"type:varchar(255)"`
	AuthorID    string         `gorm:"type:varchar(36)"`
	Content     string
	Mentions    pq.StringArray `gorm:"type:text[]"`
	IsPrivate   bool
}

func (n CandidateNote) Clone() CandidateNote {
	out := n
	out.Mentions = append(pq.StringArray(nil), n.Mentions...)
	return out
}

type CandidateDocument struct {
	BaseModel
	CandidateID  string              `gorm:"type:varchar(36);index"`
	Name         string              `gorm:"type:varchar(255)"`
	Type         models.DocumentType `gorm:"type:varchar(50)"`
	Url          string
	UploadedDate time.Time
	Size         int64
}

type Interview struct {
	BaseModel
	CandidateID     string                 `gorm:"type:varchar(36);index"`
	CandidateName   string                 `gorm:"type:varchar(255)"`
	InterviewerID   string                 `gorm:"type:varchar(36);index"`
	InterviewerName string                 `gorm:"type:varchar(255)"`
	Title           string                 `gorm:"type:varchar(255)"`
	Date            time.Time              `gorm:"type:date"`
	Time            string                 `gorm:"type:varchar(5)"` // HH:MM
	Duration        int                    // minutes
	Type            models.InterviewType   `gorm:"type:varchar(50)"`
	Status          models.InterviewStatus `gorm:"type:varchar(50);index"`
	Location        string
	MeetingLink     string
	Notes           string
	Feedback        *InterviewFeedback `gorm:"type:jsonb"`
	RemindersSent   bool
}

func (i Interview) Clone() Interview {
	out := i
	if i.Feedback != nil {
		feedback := *i.Feedback
		out.Feedback = &feedback
	}
	return out
}

// StartsAt combines the calendar date with the time of day in loc.
func (i Interview) StartsAt(loc *time.Location) (time.Time, error) {
	clock, err := time.Parse("15:04", i.Time)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid interview time %q", i.Time)
	}
	return time.Date(i.Date.Year(), i.Date.Month(), i.Date.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

type InterviewFeedback struct {
	TechnicalSkills float64               `json:"technical_skills"`
	Communication   float64               `json:"communication"`
	CulturalFit     float64               `json:"cultural_fit"`
	OverallRating   float64               `json:"overall_rating"`
	Comments        string                `json:"comments"`
	Recommendation  models.Recommendation `json:"recommendation"`
}

func (j InterviewFeedback) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *InterviewFeedback) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	case nil:
		return nil
	}
	return errors.Errorf("unsupported feedback value %T", value)
}
