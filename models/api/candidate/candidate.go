package candidateapimodels

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = time.RFC3339
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

type CandidateData struct {
	Name              string   `json:"name"`               // Full name
	Email             string   `json:"email"`              // Email
	Phone             string   `json:"phone"`              // Phone
	Position          string   `json:"position"`           // Position applied for
	Experience        int      `json:"experience"`         // Years of experience
	Skills            []string `json:"skills"`             // Skill tags, order kept
	Location          string   `json:"location"`           // Location
	SalaryExpectation float64  `json:"salary_expectation"` // Expected salary
	Source            string   `json:"source"`             // Source channel
	ResumeUrl         string   `json:"resume_url"`         // Resume link
	Notes             string   `json:"notes"`              // Initial note
}

// Validate checks every field and reports all problems at once.
// Field order follows the add-candidate form.
func (a CandidateData) Validate() error {
	verr := &models.ValidationError{}
	if strings.TrimSpace(a.Name) == "" {
		verr.Add("name", "Name is required")
	}
	if strings.TrimSpace(a.Email) == "" || !emailRe.MatchString(a.Email) {
		verr.Add("email", "Valid email is required")
	}
	if strings.TrimSpace(a.Phone) == "" {
		verr.Add("phone", "Phone number is required")
	}
	if strings.TrimSpace(a.Position) == "" {
		verr.Add("position", "Position is required")
	}
	if strings.TrimSpace(a.Location) == "" {
		verr.Add("location", "Location is required")
	}
	if len(a.NormalizedSkills()) == 0 {
		verr.Add("skills", "At least one skill is required")
	}
	if a.Experience < 0 {
		verr.Add("experience", "Experience cannot be negative")
	}
	if a.SalaryExpectation < 0 || math.IsNaN(a.SalaryExpectation) {
		verr.Add("salary_expectation", "Salary expectation cannot be negative")
	}
	return verr.OrNil()
}

// NormalizedSkills trims tags and drops blanks and repeats, keeping first occurrence order.
func (a CandidateData) NormalizedSkills() []string {
	result := make([]string, 0, len(a.Skills))
	seen := make(map[string]struct{}, len(a.Skills))
	for _, skill := range a.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		result = append(result, skill)
	}
	return result
}

func (a CandidateData) GetSource() string {
	if strings.TrimSpace(a.Source) == "" {
		return models.DefaultCandidateSource
	}
	return strings.TrimSpace(a.Source)
}

type CandidateView struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Phone             string                 `json:"phone"`
	Position          string                 `json:"position"`
	Experience        int                    `json:"experience"`
	Skills            []string               `json:"skills"`
	Location          string                 `json:"location"`
	SalaryExpectation float64                `json:"salary_expectation"`
	Status            models.CandidateStatus `json:"status"`
	StatusName        string                 `json:"status_name"`
	Source            string                 `json:"source"`
	Rating            float64                `json:"rating"`
	ResumeUrl         string                 `json:"resume_url,omitempty"`
	AppliedDate       string                 `json:"applied_date"`  // YYYY-MM-DD
	LastActivity      string                 `json:"last_activity"` // RFC3339
	Version           int64                  `json:"version"`
	Notes             []NoteView             `json:"notes"`
	Documents         []DocumentView         `json:"documents"`
	Interviews        []InterviewView        `json:"interviews"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		ID:                rec.ID,
		Name:              rec.Name,
		Email:             rec.Email,
		Phone:             rec.Phone,
		Position:          rec.Position,
		Experience:        rec.Experience,
		Skills:            append([]string{}, rec.Skills...),
		Location:          rec.Location,
		SalaryExpectation: rec.SalaryExpectation,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		Source:            rec.Source,
		Rating:            rec.Rating,
		ResumeUrl:         rec.ResumeUrl,
		Version:           rec.Version,
		Notes:             make([]NoteView, 0, len(rec.Notes)),
		Documents:         make([]DocumentView, 0, len(rec.Documents)),
		Interviews:        make([]InterviewView, 0, len(rec.Interviews)),
	}
	if !rec.AppliedDate.IsZero() {
		result.AppliedDate = rec.AppliedDate.Format(DateLayout)
	}
	if !rec.LastActivity.IsZero() {
		result.LastActivity = rec.LastActivity.Format(DateTimeLayout)
	}
	for _, note := range rec.Notes {
		result.Notes = append(result.Notes, NoteConvert(note))
	}
	for _, doc := range rec.Documents {
		result.Documents = append(result.Documents, DocumentConvert(doc))
	}
	for _, interview := range rec.Interviews {
		result.Interviews = append(result.Interviews, InterviewConvert(interview))
	}
	return result
}

func CandidateListConvert(list []dbmodels.Candidate) []CandidateView {
	result := make([]CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, CandidateConvert(rec))
	}
	return result
}

type StatusRequest struct {
	Status  models.CandidateStatus `json:"status"`  // New pipeline status
	Version *int64                 `json:"version"` // Expected version, optional
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return models.NewValidationError("status", "Unknown candidate status")
	}
	return nil
}

type RatingRequest struct {
	Rating float64 `json:"rating"` // 0..5
}

func (r RatingRequest) Validate() error {
	return ValidateRating("rating", r.Rating)
}

func ValidateRating(field string, value float64) error {
	if math.IsNaN(value) || value < 0 || value > 5 {
		return models.NewValidationError(field, "Rating must be between 0 and 5")
	}
	return nil
}
