package candidate

import (
	candidatehistoryhandler "ats-backend/lib/candidate-history"
	candidatestore "ats-backend/lib/candidate/store"
	"ats-backend/lib/event"
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Load(ctx context.Context) error
	CreateCandidate(ctx context.Context, actor models.Actor, data candidateapimodels.CandidateData) (dbmodels.Candidate, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.CandidateStatus, expectedVersion *int64) (dbmodels.Candidate, error)
	AppendNote(ctx context.Context, actor models.Actor, id string, data candidateapimodels.NoteData) (dbmodels.CandidateNote, error)
	AppendDocument(ctx context.Context, actor models.Actor, id string, data candidateapimodels.DocumentData) (dbmodels.CandidateDocument, error)
	AppendInterview(ctx context.Context, actor models.Actor, id string, data candidateapimodels.InterviewData) (dbmodels.Interview, error)
	UpdateInterview(ctx context.Context, actor models.Actor, id, interviewID string, patch candidateapimodels.InterviewUpdate) (dbmodels.Interview, error)
	SetInterviewFeedback(ctx context.Context, actor models.Actor, id, interviewID string, data candidateapimodels.FeedbackData) (dbmodels.Interview, error)
	MarkRemindersSent(ctx context.Context, id, interviewID string) error
	SetRating(ctx context.Context, actor models.Actor, id string, value float64) (dbmodels.Candidate, error)
	Get(id string) (dbmodels.Candidate, error)
	List() []dbmodels.Candidate
	Interviews() []dbmodels.Interview
	Len() int
	// Revision changes after every successful mutation.
	Revision() int64
	// CacheScope pairs the revision with a generation that is new for every handler and every Load,
	// so shared caches never mix states of different processes.
	CacheScope() string
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type Option func(*impl)

func WithClock(clock Clock) Option {
	return func(i *impl) {
		i.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(i *impl) {
		i.newID = newID
	}
}

func WithStore(store candidatestore.Provider) Option {
	return func(i *impl) {
		i.store = store
	}
}

func WithHistory(history candidatehistoryhandler.Provider) Option {
	return func(i *impl) {
		i.history = history
	}
}

func WithEvents(events event.Publisher) Option {
	return func(i *impl) {
		i.events = events
	}
}

// NewHandler builds an empty store. Without options it keeps everything in memory,
// uses the wall clock and uuid identifiers.
func NewHandler(opts ...Option) Provider {
	instance := &impl{
		index:      map[string]int{},
		generation: uuid.NewString(),
		clock:      SystemClock{},
		newID:      uuid.NewString,
		store:      candidatestore.NewNoop(),
	}
	for _, opt := range opts {
		opt(instance)
	}
	return instance
}

type impl struct {
	mu         sync.RWMutex
	candidates []dbmodels.Candidate
	index      map[string]int
	revision   int64
	generation string

	clock   Clock
	newID   func() string
	store   candidatestore.Provider
	history candidatehistoryhandler.Provider
	events  event.Publisher
}

func (i *impl) Load(ctx context.Context) error {
	list, err := i.store.LoadAll(ctx)
	if err != nil {
		return errors.Wrap(err, "error loading candidates")
	}
	index := make(map[string]int, len(list))
	for idx, rec := range list {
		index[rec.ID] = idx
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.candidates = list
	i.index = index
	i.generation = uuid.NewString()
	i.revision++
	log.WithField("count", len(list)).Info("candidates loaded")
	return nil
}

func (i *impl) CreateCandidate(ctx context.Context, actor models.Actor, data candidateapimodels.CandidateData) (dbmodels.Candidate, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Candidate{}, err
	}
	now := i.clock.Now()
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{
			ID:        i.newID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              strings.TrimSpace(data.Name),
		Email:             strings.TrimSpace(data.Email),
		Phone:             strings.TrimSpace(data.Phone),
		Position:          strings.TrimSpace(data.Position),
		Experience:        data.Experience,
		Skills:            data.NormalizedSkills(),
		Location:          strings.TrimSpace(data.Location),
		SalaryExpectation: data.SalaryExpectation,
		Status:            models.CandidateStatusApplied,
		Source:            data.GetSource(),
		ResumeUrl:         strings.TrimSpace(data.ResumeUrl),
		AppliedDate:       startOfDay(now),
		LastActivity:      now,
		Version:           1,
		Notes:             []dbmodels.CandidateNote{},
		Documents:         []dbmodels.CandidateDocument{},
		Interviews:        []dbmodels.Interview{},
	}
	if note := strings.TrimSpace(data.Notes); note != "" {
		rec.Notes = append(rec.Notes, i.newNote(rec.ID, actor, candidateapimodels.NoteData{Content: note}, now))
	}

	i.mu.Lock()
	if _, ok := i.index[rec.ID]; ok {
		i.mu.Unlock()
		return dbmodels.Candidate{}, errors.Errorf("duplicate candidate id %q", rec.ID)
	}
	if err := i.store.Save(ctx, rec); err != nil {
		i.mu.Unlock()
		return dbmodels.Candidate{}, errors.Wrap(err, "error saving candidate")
	}
	i.candidates = append(i.candidates, rec)
	i.index[rec.ID] = len(i.candidates) - 1
	i.revision++
	result := rec.Clone()
	i.mu.Unlock()

	i.afterChange(ctx, actor, result, dbmodels.HistoryTypeAdded, dbmodels.CandidateChanges{
		Description: "Candidate added",
	}, event.TypeCandidateCreated, map[string]any{"position": result.Position, "source": result.Source})
	return result, nil
}

func (i *impl) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.CandidateStatus, expectedVersion *int64) (dbmodels.Candidate, error) {
	if !status.IsValid() {
		return dbmodels.Candidate{}, models.NewValidationError("status", "Unknown candidate status")
	}
	var oldStatus models.CandidateStatus
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, _ time.Time) error {
		if expectedVersion != nil && *expectedVersion != rec.Version {
			return &models.ConflictError{ID: rec.ID, Expected: *expectedVersion, Actual: rec.Version}
		}
		oldStatus = rec.Status
		rec.Status = status
		return nil
	})
	if err != nil {
		return dbmodels.Candidate{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeStageChange, dbmodels.CandidateChanges{
		Description: "Status changed to " + status.ToHuman(),
		Data: []dbmodels.CandidateChange{
			{Field: "status", OldValue: oldStatus, NewValue: status},
		},
	}, event.TypeStatusChanged, map[string]any{"old_status": oldStatus, "new_status": status})
	return rec, nil
}

func (i *impl) AppendNote(ctx context.Context, actor models.Actor, id string, data candidateapimodels.NoteData) (dbmodels.CandidateNote, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.CandidateNote{}, err
	}
	var note dbmodels.CandidateNote
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, now time.Time) error {
		note = i.newNote(rec.ID, actor, data, now)
		rec.Notes = append(rec.Notes, note)
		return nil
	})
	if err != nil {
		return dbmodels.CandidateNote{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeComment, dbmodels.CandidateChanges{
		Description: note.Content,
	}, event.TypeNoteAdded, map[string]any{"note_id": note.ID, "mentions": note.Mentions})
	return note.Clone(), nil
}

func (i *impl) AppendDocument(ctx context.Context, actor models.Actor, id string, data candidateapimodels.DocumentData) (dbmodels.CandidateDocument, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.CandidateDocument{}, err
	}
	uploaded, _ := data.GetUploadedDate()
	var doc dbmodels.CandidateDocument
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, now time.Time) error {
		doc = dbmodels.CandidateDocument{
			BaseModel: dbmodels.BaseModel{
				ID:        i.newID(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			CandidateID:  rec.ID,
			Name:         strings.TrimSpace(data.Name),
			Type:         data.Type,
			Url:          strings.TrimSpace(data.Url),
			UploadedDate: uploaded,
			Size:         data.Size,
		}
		if doc.UploadedDate.IsZero() {
			doc.UploadedDate = now
		}
		rec.Documents = append(rec.Documents, doc)
		return nil
	})
	if err != nil {
		return dbmodels.CandidateDocument{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeDocument, dbmodels.CandidateChanges{
		Description: "Document uploaded: " + doc.Name,
	}, event.TypeDocumentAdded, map[string]any{"document_id": doc.ID, "type": doc.Type})
	return doc, nil
}

func (i *impl) AppendInterview(ctx context.Context, actor models.Actor, id string, data candidateapimodels.InterviewData) (dbmodels.Interview, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Interview{}, err
	}
	date, _ := data.GetDate()
	var interview dbmodels.Interview
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, now time.Time) error {
		interview = dbmodels.Interview{
			BaseModel: dbmodels.BaseModel{
				ID:        i.newID(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			CandidateID:     rec.ID,
			CandidateName:   rec.Name,
			InterviewerID:   strings.TrimSpace(data.InterviewerID),
			InterviewerName: strings.TrimSpace(data.InterviewerName),
			Title:           strings.TrimSpace(data.Title),
			Date:            date,
			Time:            data.Time,
			Duration:        data.Duration,
			Type:            data.Type,
			Status:          data.GetStatus(),
			Location:        strings.TrimSpace(data.Location),
			MeetingLink:     strings.TrimSpace(data.MeetingLink),
			Notes:           data.Notes,
		}
		rec.Interviews = append(rec.Interviews, interview)
		return nil
	})
	if err != nil {
		return dbmodels.Interview{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeInterview, dbmodels.CandidateChanges{
		Description: "Interview scheduled: " + interview.Title,
		Data: []dbmodels.CandidateChange{
			{Field: "date", NewValue: data.Date},
			{Field: "time", NewValue: interview.Time},
		},
	}, event.TypeInterviewScheduled, map[string]any{"interview_id": interview.ID, "date": data.Date, "time": interview.Time})
	return interview.Clone(), nil
}

func (i *impl) UpdateInterview(ctx context.Context, actor models.Actor, id, interviewID string, patch candidateapimodels.InterviewUpdate) (dbmodels.Interview, error) {
	if err := patch.Validate(); err != nil {
		return dbmodels.Interview{}, err
	}
	var interview dbmodels.Interview
	var changes []dbmodels.CandidateChange
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, now time.Time) error {
		target := rec.FindInterview(interviewID)
		if target == nil {
			return &models.NotFoundError{Entity: "interview", ID: interviewID}
		}
		changes = applyInterviewPatch(target, patch)
		target.UpdatedAt = now
		interview = *target
		return nil
	})
	if err != nil {
		return dbmodels.Interview{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeInterview, dbmodels.CandidateChanges{
		Description: "Interview updated: " + interview.Title,
		Data:        changes,
	}, event.TypeInterviewUpdated, map[string]any{"interview_id": interview.ID, "status": interview.Status})
	return interview.Clone(), nil
}

func applyInterviewPatch(target *dbmodels.Interview, patch candidateapimodels.InterviewUpdate) []dbmodels.CandidateChange {
	changes := []dbmodels.CandidateChange{}
	if patch.Status != nil && *patch.Status != target.Status {
		changes = append(changes, dbmodels.CandidateChange{Field: "status", OldValue: target.Status, NewValue: *patch.Status})
		target.Status = *patch.Status
	}
	if patch.Date != nil {
		date, _ := time.Parse(candidateapimodels.DateLayout, *patch.Date)
		if !date.Equal(target.Date) {
			changes = append(changes, dbmodels.CandidateChange{Field: "date", OldValue: target.Date.Format(candidateapimodels.DateLayout), NewValue: *patch.Date})
			target.Date = date
			target.RemindersSent = false
		}
	}
	if patch.Time != nil && *patch.Time != target.Time {
		changes = append(changes, dbmodels.CandidateChange{Field: "time", OldValue: target.Time, NewValue: *patch.Time})
		target.Time = *patch.Time
		target.RemindersSent = false
	}
	if patch.Duration != nil && *patch.Duration != target.Duration {
		changes = append(changes, dbmodels.CandidateChange{Field: "duration", OldValue: target.Duration, NewValue: *patch.Duration})
		target.Duration = *patch.Duration
	}
	if patch.Location != nil && *patch.Location != target.Location {
		changes = append(changes, dbmodels.CandidateChange{Field: "location", OldValue: target.Location, NewValue: *patch.Location})
		target.Location = *patch.Location
	}
	if patch.MeetingLink != nil && *patch.MeetingLink != target.MeetingLink {
		changes = append(changes, dbmodels.CandidateChange{Field: "meeting_link", OldValue: target.MeetingLink, NewValue: *patch.MeetingLink})
		target.MeetingLink = *patch.MeetingLink
	}
	if patch.Notes != nil && *patch.Notes != target.Notes {
		changes = append(changes, dbmodels.CandidateChange{Field: "notes", OldValue: target.Notes, NewValue: *patch.Notes})
		target.Notes = *patch.Notes
	}
	return changes
}

func (i *impl) SetInterviewFeedback(ctx context.Context, actor models.Actor, id, interviewID string, data candidateapimodels.FeedbackData) (dbmodels.Interview, error) {
	if err := data.Validate(); err != nil {
		return dbmodels.Interview{}, err
	}
	var interview dbmodels.Interview
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, now time.Time) error {
		target := rec.FindInterview(interviewID)
		if target == nil {
			return &models.NotFoundError{Entity: "interview", ID: interviewID}
		}
		feedback := data.ToModel()
		target.Feedback = &feedback
		target.Status = models.InterviewStatusCompleted
		target.UpdatedAt = now
		interview = *target
		return nil
	})
	if err != nil {
		return dbmodels.Interview{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeFeedback, dbmodels.CandidateChanges{
		Description: "Interview feedback: " + string(data.Recommendation),
		Data: []dbmodels.CandidateChange{
			{Field: "overall_rating", NewValue: data.OverallRating},
			{Field: "recommendation", NewValue: data.Recommendation},
		},
	}, event.TypeInterviewFeedback, map[string]any{"interview_id": interview.ID, "recommendation": data.Recommendation})
	return interview.Clone(), nil
}

// MarkRemindersSent flags the interview without counting as candidate activity.
func (i *impl) MarkRemindersSent(ctx context.Context, id, interviewID string) error {
	rec, err := i.mutate(ctx, id, false, func(rec *dbmodels.Candidate, _ time.Time) error {
		target := rec.FindInterview(interviewID)
		if target == nil {
			return &models.NotFoundError{Entity: "interview", ID: interviewID}
		}
		target.RemindersSent = true
		return nil
	})
	if err != nil {
		return err
	}
	i.publish(ctx, models.SystemActor(), rec, event.TypeInterviewReminded, map[string]any{"interview_id": interviewID})
	return nil
}

func (i *impl) SetRating(ctx context.Context, actor models.Actor, id string, value float64) (dbmodels.Candidate, error) {
	if err := candidateapimodels.ValidateRating("rating", value); err != nil {
		return dbmodels.Candidate{}, err
	}
	var oldRating float64
	rec, err := i.mutate(ctx, id, true, func(rec *dbmodels.Candidate, _ time.Time) error {
		oldRating = rec.Rating
		rec.Rating = value
		return nil
	})
	if err != nil {
		return dbmodels.Candidate{}, err
	}
	i.afterChange(ctx, actor, rec, dbmodels.HistoryTypeRating, dbmodels.CandidateChanges{
		Description: "Rating changed",
		Data: []dbmodels.CandidateChange{
			{Field: "rating", OldValue: oldRating, NewValue: value},
		},
	}, event.TypeRatingChanged, map[string]any{"rating": value})
	return rec, nil
}

func (i *impl) Get(id string) (dbmodels.Candidate, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	idx, ok := i.index[id]
	if !ok {
		return dbmodels.Candidate{}, &models.NotFoundError{Entity: "candidate", ID: id}
	}
	return i.candidates[idx].Clone(), nil
}

func (i *impl) List() []dbmodels.Candidate {
	i.mu.RLock()
	defer i.mu.RUnlock()
	result := make([]dbmodels.Candidate, 0, len(i.candidates))
	for _, rec := range i.candidates {
		result = append(result, rec.Clone())
	}
	return result
}

func (i *impl) Interviews() []dbmodels.Interview {
	i.mu.RLock()
	defer i.mu.RUnlock()
	result := []dbmodels.Interview{}
	for _, rec := range i.candidates {
		for _, interview := range rec.Interviews {
			result = append(result, interview.Clone())
		}
	}
	return result
}

func (i *impl) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.candidates)
}

func (i *impl) Revision() int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.revision
}

func (i *impl) CacheScope() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return fmt.Sprintf("%s:%d", i.generation, i.revision)
}

// mutate applies fn to a copy of the candidate, writes the copy through to the store
// and only then replaces the stored record. Any error leaves the collection as it was.
// last_activity never moves backwards even if the clock does.
func (i *impl) mutate(ctx context.Context, id string, touch bool, fn func(rec *dbmodels.Candidate, now time.Time) error) (dbmodels.Candidate, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	idx, ok := i.index[id]
	if !ok {
		return dbmodels.Candidate{}, &models.NotFoundError{Entity: "candidate", ID: id}
	}
	rec := i.candidates[idx].Clone()
	now := i.clock.Now()
	if now.Before(rec.LastActivity) {
		now = rec.LastActivity
	}
	if err := fn(&rec, now); err != nil {
		return dbmodels.Candidate{}, err
	}
	if touch {
		rec.LastActivity = now
	}
	rec.UpdatedAt = now
	rec.Version++
	if err := i.store.Save(ctx, rec); err != nil {
		return dbmodels.Candidate{}, errors.Wrap(err, "error saving candidate")
	}
	i.candidates[idx] = rec
	i.revision++
	return rec.Clone(), nil
}

func (i *impl) newNote(candidateID string, actor models.Actor, data candidateapimodels.NoteData, now time.Time) dbmodels.CandidateNote {
	return dbmodels.CandidateNote{
		BaseModel: dbmodels.BaseModel{
			ID:        i.newID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CandidateID: candidateID,
		Author:      actor.DisplayName(),
		AuthorID:    actor.ID,
		Content:     strings.TrimSpace(data.Content),
		Mentions:    append([]string{}, data.Mentions...),
		IsPrivate:   data.IsPrivate,
	}
}

func (i *impl) afterChange(ctx context.Context, actor models.Actor, rec dbmodels.Candidate, action dbmodels.ActionType, changes dbmodels.CandidateChanges, eventType event.Type, payload map[string]any) {
	if i.history != nil {
		i.history.Save(rec.ID, actor, action, changes)
	}
	i.publish(ctx, actor, rec, eventType, payload)
}

func (i *impl) publish(ctx context.Context, actor models.Actor, rec dbmodels.Candidate, eventType event.Type, payload map[string]any) {
	if i.events == nil {
		return
	}
	err := i.events.Publish(ctx, event.Event{
		Type:        eventType,
		CandidateID: rec.ID,
		ActorID:     actor.ID,
		Version:     rec.Version,
		OccurredAt:  rec.UpdatedAt,
		Payload:     payload,
	})
	if err != nil {
		log.WithError(err).
			WithField("candidate_id", rec.ID).
			WithField("event_type", eventType).
			Warn("error publishing candidate event")
	}
}
