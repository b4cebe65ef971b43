package candidateapimodels

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

type NoteData struct {
	Content   string   `json:"content"`    // Note text
	Mentions  []string `json:"mentions"`   // Mentioned user ids
	IsPrivate bool     `json:"is_private"` // Visible to the author only
}

func (n NoteData) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return models.NewValidationError("content", "Note content is required")
	}
	return nil
}

type NoteView struct {
	ID        string   `json:"id"`
	Author    string   `json:"author"`
	AuthorID  string   `json:"author_id"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Mentions  []string `json:"mentions"`
	IsPrivate bool     `json:"is_private"`
}

func NoteConvert(rec dbmodels.CandidateNote) NoteView {
	return NoteView{
		ID:        rec.ID,
		Author:    rec.Author,
		AuthorID:  rec.AuthorID,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt.Format(DateTimeLayout),
		Mentions:  append([]string{}, rec.Mentions...),
		IsPrivate: rec.IsPrivate,
	}
}

type DocumentData struct {
	Name         string              `json:"name"`          // File name
	Type         models.DocumentType `json:"type"`          // resume/cover_letter/portfolio/certificate/other
	Url          string              `json:"url"`           // Storage reference, not interpreted
	Size         int64               `json:"size"`          // Bytes
	UploadedDate string              `json:"uploaded_date"` // RFC3339, optional
}

func (d DocumentData) Validate() error {
	verr := &models.ValidationError{}
	if strings.TrimSpace(d.Name) == "" {
		verr.Add("name", "Document name is required")
	}
	if !d.Type.IsValid() {
		verr.Add("type", "Unknown document type")
	}
	if strings.TrimSpace(d.Url) == "" {
		verr.Add("url", "Document location is required")
	}
	if d.Size < 0 {
		verr.Add("size", "Document size cannot be negative")
	}
	if _, err := d.GetUploadedDate(); err != nil {
		verr.Add("uploaded_date", "Invalid upload date format")
	}
	return verr.OrNil()
}

func (d DocumentData) GetUploadedDate() (time.Time, error) {
	if d.UploadedDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateTimeLayout, d.UploadedDate)
}

type DocumentView struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Type         models.DocumentType `json:"type"`
	Url          string              `json:"url"`
	UploadedDate string              `json:"uploaded_date"`
	Size         int64               `json:"size"`
}

func DocumentConvert(rec dbmodels.CandidateDocument) DocumentView {
	return DocumentView{
		ID:           rec.ID,
		Name:         rec.Name,
		Type:         rec.Type,
		Url:          rec.Url,
		UploadedDate: rec.UploadedDate.Format(DateTimeLayout),
		Size:         rec.Size,
	}
}

type InterviewData struct {
	Title           string                 `json:"title"`
	InterviewerID   string                 `json:"interviewer_id"`
	InterviewerName string                 `json:"interviewer_name"`
	Date            string                 `json:"date"`     // YYYY-MM-DD
	Time            string                 `json:"time"`     // HH:MM
	Duration        int                    `json:"duration"` // minutes
	Type            models.InterviewType   `json:"type"`
	Status          models.InterviewStatus `json:"status"` // defaults to scheduled
	Location        string                 `json:"location"`
	MeetingLink     string                 `json:"meeting_link"`
	Notes           string                 `json:"notes"`
}

func (i InterviewData) Validate() error {
	verr := &models.ValidationError{}
	if strings.TrimSpace(i.Title) == "" {
		verr.Add("title", "Interview title is required")
	}
	if strings.TrimSpace(i.InterviewerID) == "" {
		verr.Add("interviewer_id", "Interviewer is required")
	}
	if _, err := i.GetDate(); err != nil || i.Date == "" {
		verr.Add("date", "Valid interview date is required")
	}
	if _, err := time.Parse(TimeLayout, i.Time); err != nil {
		verr.Add("time", "Valid interview time is required")
	}
	if i.Duration <= 0 {
		verr.Add("duration", "Duration must be positive")
	}
	if !i.Type.IsValid() {
		verr.Add("type", "Unknown interview type")
	}
	if i.Status != "" && !i.Status.IsValid() {
		verr.Add("status", "Unknown interview status")
	}
	return verr.OrNil()
}

func (i InterviewData) GetDate() (time.Time, error) {
	return time.Parse(DateLayout, i.Date)
}

func (i InterviewData) GetStatus() models.InterviewStatus {
	if i.Status == "" {
		return models.InterviewStatusScheduled
	}
	return i.Status
}

// InterviewUpdate is a patch: nil fields stay as they are.
type InterviewUpdate struct {
	Status      *models.InterviewStatus `json:"status"`
	Date        *string                 `json:"date"`
	Time        *string                 `json:"time"`
	Duration    *int                    `json:"duration"`
	Location    *string                 `json:"location"`
	MeetingLink *string                 `json:"meeting_link"`
	Notes       *string                 `json:"notes"`
}

func (u InterviewUpdate) Validate() error {
	verr := &models.ValidationError{}
	if u.Status != nil && !u.Status.IsValid() {
		verr.Add("status", "Unknown interview status")
	}
	if u.Date != nil {
		if _, err := time.Parse(DateLayout, *u.Date); err != nil {
			verr.Add("date", "Valid interview date is required")
		}
	}
	if u.Time != nil {
		if _, err := time.Parse(TimeLayout, *u.Time); err != nil {
			verr.Add("time", "Valid interview time is required")
		}
	}
	if u.Duration != nil && *u.Duration <= 0 {
		verr.Add("duration", "Duration must be positive")
	}
	return verr.OrNil()
}

type FeedbackData struct {
	TechnicalSkills float64               `json:"technical_skills"`
	Communication   float64               `json:"communication"`
	CulturalFit     float64               `json:"cultural_fit"`
	OverallRating   float64               `json:"overall_rating"`
	Comments        string                `json:"comments"`
	Recommendation  models.Recommendation `json:"recommendation"`
}

func (f FeedbackData) Validate() error {
	verr := &models.ValidationError{}
	scores := []struct {
		field string
		value float64
	}{
		{"technical_skills", f.TechnicalSkills},
		{"communication", f.Communication},
		{"cultural_fit", f.CulturalFit},
		{"overall_rating", f.OverallRating},
	}
	for _, score := range scores {
		if err := ValidateRating(score.field, score.value); err != nil {
			verr.Add(score.field, "Score must be between 0 and 5")
		}
	}
	if !f.Recommendation.IsValid() {
		verr.Add("recommendation", "Recommendation must be hire, reject or maybe")
	}
	return verr.OrNil()
}

func (f FeedbackData) ToModel() dbmodels.InterviewFeedback {
	return dbmodels.InterviewFeedback{
		TechnicalSkills: f.TechnicalSkills,
		Communication:   f.Communication,
		CulturalFit:     f.CulturalFit,
		OverallRating:   f.OverallRating,
		Comments:        f.Comments,
		Recommendation:  f.Recommendation,
	}
}

type InterviewView struct {
	ID              string                 `json:"id"`
	CandidateID     string                 `json:"candidate_id"`
	CandidateName   string                 `json:"candidate_name"`
	InterviewerID   string                 `json:"interviewer_id"`
	InterviewerName string                 `json:"interviewer_name"`
	Title           string                 `json:"title"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	Duration        int                    `json:"duration"`
	Type            models.InterviewType   `json:"type"`
	Status          models.InterviewStatus `json:"status"`
	Location        string                 `json:"location,omitempty"`
	MeetingLink     string                 `json:"meeting_link,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Feedback        *FeedbackData          `json:"feedback,omitempty"`
	RemindersSent   bool                   `json:"reminders_sent"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	result := InterviewView{
		ID:              rec.ID,
		CandidateID:     rec.CandidateID,
		CandidateName:   rec.CandidateName,
		InterviewerID:   rec.InterviewerID,
		InterviewerName: rec.InterviewerName,
		Title:           rec.Title,
		Date:            rec.Date.Format(DateLayout),
		Time:            rec.Time,
		Duration:        rec.Duration,
		Type:            rec.Type,
		Status:          rec.Status,
		Location:        rec.Location,
		MeetingLink:     rec.MeetingLink,
		Notes:           rec.Notes,
		RemindersSent:   rec.RemindersSent,
	}
	if rec.Feedback != nil {
		result.Feedback = &FeedbackData{
			TechnicalSkills: rec.Feedback.TechnicalSkills,
			Communication:   rec.Feedback.Communication,
			CulturalFit:     rec.Feedback.CulturalFit,
			OverallRating:   rec.Feedback.OverallRating,
			Comments:        rec.Feedback.Comments,
			Recommendation:  rec.Feedback.Recommendation,
		}
	}
	return result
}

func InterviewListConvert(list []dbmodels.Interview) []InterviewView {
	result := make([]InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, InterviewConvert(rec))
	}
	return result
}
