package candidateapimodels

import (
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

type IntRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type FloatRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type DateRange struct {
	Start string `json:"start"` // YYYY-MM-DD, inclusive
	End   string `json:"end"`   // YYYY-MM-DD, inclusive
}

// FilterOptions is the structured part of the candidate search. Absent fields impose no constraint.
type FilterOptions struct {
	Skills     []string                 `json:"skills"`     // at least one in common
	Experience *IntRange                `json:"experience"` // years
	Location   []string                 `json:"location"`   // exact match
	Salary     *FloatRange              `json:"salary"`
	Status     []models.CandidateStatus `json:"status"`
	Source     []string                 `json:"source"`
	Rating     *FloatRange              `json:"rating"`
	DateRange  *DateRange               `json:"date_range"` // applied date
}

func (f FilterOptions) IsEmpty() bool {
	return len(f.Skills) == 0 &&
		f.Experience == nil &&
		len(f.Location) == 0 &&
		f.Salary == nil &&
		len(f.Status) == 0 &&
		len(f.Source) == 0 &&
		f.Rating == nil &&
		f.DateRange == nil
}

func (f FilterOptions) Validate() error {
	verr := &models.ValidationError{}
	for _, status := range f.Status {
		if !status.IsValid() {
			verr.Add("status", "Unknown candidate status")
			break
		}
	}
	if _, _, err := f.GetDateRange(); err != nil {
		verr.Add("date_range", "Invalid date range format, expected YYYY-MM-DD")
	}
	return verr.OrNil()
}

// GetDateRange parses the applied date bounds. Zero values mean unbounded.
func (f FilterOptions) GetDateRange() (start, end time.Time, err error) {
	if f.DateRange == nil {
		return time.Time{}, time.Time{}, nil
	}
	if f.DateRange.Start != "" {
		start, err = time.Parse(DateLayout, f.DateRange.Start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if f.DateRange.End != "" {
		end, err = time.Parse(DateLayout, f.DateRange.End)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

type CandidateFilter struct {
	apimodels.Pagination
	Search  string        `json:"search"` // name/position/skill, case-insensitive
	Filters FilterOptions `json:"filters"`
}

func (c CandidateFilter) Validate() error {
	return c.Filters.Validate()
}

func (c CandidateFilter) GetSearch() string {
	return strings.TrimSpace(c.Search)
}

type InterviewFilter struct {
	Status string `json:"status"` // interview status or "all"
	Date   string `json:"date"`   // YYYY-MM-DD
	Search string `json:"search"` // candidate name or title
}

func (f InterviewFilter) Validate() error {
	verr := &models.ValidationError{}
	if f.Status != "" && f.Status != "all" && !models.InterviewStatus(f.Status).IsValid() {
		verr.Add("status", "Unknown interview status")
	}
	if f.Date != "" {
		if _, err := time.Parse(DateLayout, f.Date); err != nil {
			verr.Add("date", "Invalid date format, expected YYYY-MM-DD")
		}
	}
	return verr.OrNil()
}

type InterviewBoard struct {
	Upcoming []InterviewView `json:"upcoming"`
	Past     []InterviewView `json:"past"`
}

type HistoryFilter struct {
	apimodels.Pagination
	CommentsOnly bool `json:"comments_only"`
}

type HistoryView struct {
	ID         string                    `json:"id"`
	Date       string                    `json:"date"`
	UserID     string                    `json:"user_id"`
	UserName   string                    `json:"user_name"`
	ActionType dbmodels.ActionType       `json:"action_type"`
	Changes    dbmodels.CandidateChanges `json:"changes"`
}

func HistoryConvert(rec dbmodels.CandidateHistory) HistoryView {
	result := HistoryView{
		ID:         rec.ID,
		Date:       rec.CreatedAt.Format(DateTimeLayout),
		UserName:   rec.UserName,
		ActionType: rec.ActionType,
		Changes:    rec.Changes,
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}

type PipelineColumnView struct {
	Status     models.CandidateStatus `json:"status"`
	StatusName string                 `json:"status_name"`
	Count      int                    `json:"count"`
	Candidates []CandidateView        `json:"candidates"`
}
