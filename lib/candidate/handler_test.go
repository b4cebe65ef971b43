package candidate

import (
	candidatehistoryhandler "ats-backend/lib/candidate-history"
	candidatehistorystore "ats-backend/lib/candidate-history/store"
	"ats-backend/lib/event"
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func sequenceIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type failingStore struct {
	fail  bool
	saved int
}

func (s *failingStore) Save(context.Context, dbmodels.Candidate) error {
	if s.fail {
		return errors.New("connection refused")
	}
	s.saved++
	return nil
}

func (s *failingStore) LoadAll(context.Context) ([]dbmodels.Candidate, error) {
	return nil, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

var (
	recruiter = models.Actor{ID: "u-1", Name: "Sarah Johnson"}
	startTime = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
)

func ahmed() candidateapimodels.CandidateData {
	return candidateapimodels.CandidateData{
		Name:              "Ahmed Hassan",
		Email:             "ahmed.hassan@email.com",
		Phone:             "+971-50-123-4567",
		Position:          "Senior Frontend Developer",
		Experience:        5,
		Skills:            []string{"React", "TypeScript"},
		Location:          "Dubai, UAE",
		SalaryExpectation: 85000,
		Source:            "LinkedIn",
	}
}

func newTestHandler(t *testing.T, opts ...Option) (Provider, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: startTime}
	opts = append([]Option{WithClock(clock), WithIDGenerator(sequenceIDs())}, opts...)
	return NewHandler(opts...), clock
}

func TestCreateCandidate(t *testing.T) {
	t.Run(`valid input creates an applied candidate`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		data := ahmed()
		data.Skills = []string{"React", " TypeScript ", "React", "", "Node.js"}
		rec, err := h.CreateCandidate(context.Background(), recruiter, data)
		require.NoError(t, err)
		require.Equal(t, "id-1", rec.ID)
		require.Equal(t, models.CandidateStatusApplied, rec.Status)
		require.Equal(t, []string{"React", "TypeScript", "Node.js"}, []string(rec.Skills))
		require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rec.AppliedDate)
		require.Equal(t, startTime, rec.LastActivity)
		require.Equal(t, 0.0, rec.Rating)
		require.Empty(t, rec.Notes)
		require.Empty(t, rec.Documents)
		require.Empty(t, rec.Interviews)
		require.Equal(t, int64(1), rec.Version)
		require.Equal(t, 1, h.Len())
	})
	t.Run(`ids are unique`, func(t *testing.T) {
		h := NewHandler()
		seen := map[string]bool{}
		for n := 0; n < 20; n++ {
			rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
			require.NoError(t, err)
			require.False(t, seen[rec.ID])
			seen[rec.ID] = true
		}
	})
	t.Run(`empty source gets the default`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		data := ahmed()
		data.Source = ""
		rec, err := h.CreateCandidate(context.Background(), recruiter, data)
		require.NoError(t, err)
		require.Equal(t, models.DefaultCandidateSource, rec.Source)
	})
	t.Run(`initial note is authored by the caller`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		data := ahmed()
		data.Notes = "  Strong portfolio  "
		rec, err := h.CreateCandidate(context.Background(), recruiter, data)
		require.NoError(t, err)
		require.Len(t, rec.Notes, 1)
		require.Equal(t, "Strong portfolio", rec.Notes[0].Content)
		require.Equal(t, recruiter.Name, rec.Notes[0].Author)
		require.Equal(t, rec.ID, rec.Notes[0].CandidateID)
	})
	t.Run(`empty skills fail validation and nothing is added`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		data := ahmed()
		data.Skills = []string{}
		_, err := h.CreateCandidate(context.Background(), recruiter, data)
		require.Error(t, err)
		require.True(t, errors.Is(err, models.ErrValidation))
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr))
		require.True(t, verr.HasField("skills"))
		require.Equal(t, 0, h.Len())
	})
	t.Run(`every invalid field is reported`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		_, err := h.CreateCandidate(context.Background(), recruiter, candidateapimodels.CandidateData{Email: "not-an-email"})
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr))
		fields := []string{}
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		require.Equal(t, []string{"name", "email", "phone", "position", "location", "skills"}, fields)
		require.Equal(t, "Name is required", verr.FirstMessage())
	})
	t.Run(`failed write leaves the collection empty`, func(t *testing.T) {
		store := &failingStore{fail: true}
		h, _ := newTestHandler(t, WithStore(store))
		_, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.Error(t, err)
		require.Equal(t, 0, h.Len())
		require.Equal(t, int64(0), h.Revision())
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run(`only status and activity change`, func(t *testing.T) {
		h, clock := newTestHandler(t)
		before, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		for _, status := range models.PipelineStatuses {
			clock.Set(clock.Now().Add(time.Minute))
			prev, err := h.Get(before.ID)
			require.NoError(t, err)
			after, err := h.UpdateStatus(context.Background(), recruiter, before.ID, status, nil)
			require.NoError(t, err)
			require.Equal(t, status, after.Status)
			require.True(t, after.LastActivity.After(prev.LastActivity))

			expected := prev
			expected.Status = after.Status
			expected.LastActivity = after.LastActivity
			expected.UpdatedAt = after.UpdatedAt
			expected.Version = after.Version
			require.Equal(t, expected, after)
		}
	})
	t.Run(`same status still bumps activity`, func(t *testing.T) {
		h, clock := newTestHandler(t)
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		clock.Set(startTime.Add(time.Hour))
		after, err := h.UpdateStatus(context.Background(), recruiter, rec.ID, rec.Status, nil)
		require.NoError(t, err)
		require.Equal(t, rec.Status, after.Status)
		require.Equal(t, startTime.Add(time.Hour), after.LastActivity)
	})
	t.Run(`clock going backwards never moves activity back`, func(t *testing.T) {
		h, clock := newTestHandler(t)
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		clock.Set(startTime.Add(-time.Hour))
		after, err := h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusScreening, nil)
		require.NoError(t, err)
		require.Equal(t, rec.LastActivity, after.LastActivity)
	})
	t.Run(`terminal states can be reopened`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		_, err = h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusRejected, nil)
		require.NoError(t, err)
		after, err := h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusApplied, nil)
		require.NoError(t, err)
		require.Equal(t, models.CandidateStatusApplied, after.Status)
	})
	t.Run(`unknown id is not found and nothing changes`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		revision := h.Revision()
		_, err = h.UpdateStatus(context.Background(), recruiter, "nonexistent-id", models.CandidateStatusHired, nil)
		require.True(t, errors.Is(err, models.ErrNotFound))
		require.Equal(t, revision, h.Revision())
		after, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Equal(t, rec, after)
	})
	t.Run(`unknown status is rejected`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		_, err = h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatus("archived"), nil)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run(`stale version is a conflict`, func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		version := rec.Version
		_, err = h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusScreening, &version)
		require.NoError(t, err)
		_, err = h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusOffer, &version)
		require.True(t, errors.Is(err, models.ErrConflict))
		current, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Equal(t, models.CandidateStatusScreening, current.Status)
	})
	t.Run(`failed write keeps the previous record`, func(t *testing.T) {
		store := &failingStore{}
		h, clock := newTestHandler(t, WithStore(store))
		rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
		require.NoError(t, err)
		store.fail = true
		clock.Set(startTime.Add(time.Hour))
		_, err = h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusOffer, nil)
		require.Error(t, err)
		current, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Equal(t, rec, current)
	})
}

func TestAppend(t *testing.T) {
	h, clock := newTestHandler(t)
	rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
	require.NoError(t, err)

	t.Run(`note`, func(t *testing.T) {
		clock.Set(startTime.Add(time.Minute))
		note, err := h.AppendNote(context.Background(), recruiter, rec.ID, candidateapimodels.NoteData{
			Content:  "Recommended for technical interview",
			Mentions: []string{"mike.chen"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, note.ID)
		require.Equal(t, startTime.Add(time.Minute), note.CreatedAt)
		current, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Len(t, current.Notes, 1)
		require.Equal(t, note.ID, current.Notes[0].ID)
		require.Equal(t, startTime.Add(time.Minute), current.LastActivity)
	})
	t.Run(`empty note is rejected`, func(t *testing.T) {
		_, err := h.AppendNote(context.Background(), recruiter, rec.ID, candidateapimodels.NoteData{Content: "  "})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run(`document gets upload time from the clock`, func(t *testing.T) {
		clock.Set(startTime.Add(2 * time.Minute))
		doc, err := h.AppendDocument(context.Background(), recruiter, rec.ID, candidateapimodels.DocumentData{
			Name: "Ahmed_Hassan_Resume.pdf",
			Type: models.DocumentTypeResume,
			Url:  "/documents/ahmed_resume.pdf",
			Size: 245760,
		})
		require.NoError(t, err)
		require.Equal(t, startTime.Add(2*time.Minute), doc.UploadedDate)
	})
	t.Run(`back-dated document keeps its append position`, func(t *testing.T) {
		clock.Set(startTime.Add(3 * time.Minute))
		doc, err := h.AppendDocument(context.Background(), recruiter, rec.ID, candidateapimodels.DocumentData{
			Name:         "Portfolio.pdf",
			Type:         models.DocumentTypePortfolio,
			Url:          "/documents/portfolio.pdf",
			UploadedDate: startTime.Add(-24 * time.Hour).Format(time.RFC3339),
		})
		require.NoError(t, err)
		require.Equal(t, startTime.Add(-24*time.Hour), doc.UploadedDate)
		current, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Len(t, current.Documents, 2)
		require.Equal(t, doc.ID, current.Documents[1].ID)
		require.True(t, current.Documents[1].CreatedAt.After(current.Documents[0].CreatedAt))
	})
	t.Run(`interview is stamped with the candidate`, func(t *testing.T) {
		interview, err := h.AppendInterview(context.Background(), recruiter, rec.ID, candidateapimodels.InterviewData{
			Title:         "Technical Interview",
			InterviewerID: "u-1",
			Date:          "2024-01-20",
			Time:          "14:00",
			Duration:      60,
			Type:          models.InterviewTypeVideo,
		})
		require.NoError(t, err)
		require.Equal(t, rec.ID, interview.CandidateID)
		require.Equal(t, "Ahmed Hassan", interview.CandidateName)
		require.Equal(t, models.InterviewStatusScheduled, interview.Status)
		require.Len(t, h.Interviews(), 1)
	})
	t.Run(`unknown candidate`, func(t *testing.T) {
		_, err := h.AppendNote(context.Background(), recruiter, "missing", candidateapimodels.NoteData{Content: "x"})
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
	t.Run(`returned values are copies`, func(t *testing.T) {
		current, err := h.Get(rec.ID)
		require.NoError(t, err)
		current.Skills[0] = "Angular"
		current.Notes[0].Content = "changed"
		again, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Equal(t, "React", again.Skills[0])
		require.Equal(t, "Recommended for technical interview", again.Notes[0].Content)
	})
}

func TestInterviewLifecycle(t *testing.T) {
	h, _ := newTestHandler(t)
	rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
	require.NoError(t, err)
	interview, err := h.AppendInterview(context.Background(), recruiter, rec.ID, candidateapimodels.InterviewData{
		Title:         "Technical Interview",
		InterviewerID: "u-1",
		Date:          "2024-01-20",
		Time:          "14:00",
		Duration:      60,
		Type:          models.InterviewTypeVideo,
	})
	require.NoError(t, err)

	t.Run(`reminder flag does not count as activity`, func(t *testing.T) {
		before, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.NoError(t, h.MarkRemindersSent(context.Background(), rec.ID, interview.ID))
		after, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.True(t, after.Interviews[0].RemindersSent)
		require.Equal(t, before.LastActivity, after.LastActivity)
	})
	t.Run(`rescheduling resets reminders`, func(t *testing.T) {
		newTime := "16:30"
		status := models.InterviewStatusRescheduled
		updated, err := h.UpdateInterview(context.Background(), recruiter, rec.ID, interview.ID, candidateapimodels.InterviewUpdate{
			Time:   &newTime,
			Status: &status,
		})
		require.NoError(t, err)
		require.Equal(t, "16:30", updated.Time)
		require.Equal(t, models.InterviewStatusRescheduled, updated.Status)
		require.False(t, updated.RemindersSent)
	})
	t.Run(`feedback completes the interview`, func(t *testing.T) {
		updated, err := h.SetInterviewFeedback(context.Background(), recruiter, rec.ID, interview.ID, candidateapimodels.FeedbackData{
			TechnicalSkills: 4.5,
			Communication:   4,
			CulturalFit:     5,
			OverallRating:   4.5,
			Recommendation:  models.RecommendationHire,
		})
		require.NoError(t, err)
		require.Equal(t, models.InterviewStatusCompleted, updated.Status)
		require.NotNil(t, updated.Feedback)
		require.Equal(t, models.RecommendationHire, updated.Feedback.Recommendation)
	})
	t.Run(`unknown interview`, func(t *testing.T) {
		err := h.MarkRemindersSent(context.Background(), rec.ID, "missing")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestSetRating(t *testing.T) {
	h, _ := newTestHandler(t)
	rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
	require.NoError(t, err)

	t.Run(`in range`, func(t *testing.T) {
		after, err := h.SetRating(context.Background(), recruiter, rec.ID, 4.5)
		require.NoError(t, err)
		require.Equal(t, 4.5, after.Rating)
	})
	t.Run(`out of range is rejected`, func(t *testing.T) {
		for _, value := range []float64{-0.1, 5.01} {
			_, err := h.SetRating(context.Background(), recruiter, rec.ID, value)
			require.True(t, errors.Is(err, models.ErrValidation))
		}
		current, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.Equal(t, 4.5, current.Rating)
	})
}

func TestSideEffects(t *testing.T) {
	events := &recordingPublisher{}
	history := candidatehistoryhandler.NewHandler(candidatehistorystore.NewMemory())
	h, _ := newTestHandler(t, WithEvents(events), WithHistory(history))
	rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
	require.NoError(t, err)
	_, err = h.UpdateStatus(context.Background(), recruiter, rec.ID, models.CandidateStatusScreening, nil)
	require.NoError(t, err)

	require.Len(t, events.events, 2)
	require.Equal(t, event.TypeCandidateCreated, events.events[0].Type)
	require.Equal(t, event.TypeStatusChanged, events.events[1].Type)
	require.Equal(t, int64(2), events.events[1].Version)

	list, count, err := history.List(rec.ID, candidateapimodels.HistoryFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.Equal(t, dbmodels.HistoryTypeStageChange, list[1].ActionType)
	require.Equal(t, recruiter.ID, list[1].UserID)
}

func TestConcurrentMutations(t *testing.T) {
	h, _ := newTestHandler(t)
	rec, err := h.CreateCandidate(context.Background(), recruiter, ahmed())
	require.NoError(t, err)
	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.AppendNote(context.Background(), recruiter, rec.ID, candidateapimodels.NoteData{Content: "ping"})
		}()
	}
	wg.Wait()
	current, err := h.Get(rec.ID)
	require.NoError(t, err)
	require.Len(t, current.Notes, 50)
	require.Equal(t, int64(51), current.Version)
}

func TestSeedDemoData(t *testing.T) {
	h, clock := newTestHandler(t)
	require.NoError(t, SeedDemoData(context.Background(), h, clock))
	require.Equal(t, 4, h.Len())
	list := h.List()
	require.Equal(t, "Ahmed Hassan", list[0].Name)
	require.Equal(t, models.CandidateStatusInterview, list[0].Status)
	require.Len(t, h.Interviews(), 3)

	// a second run is a no-op
	require.NoError(t, SeedDemoData(context.Background(), h, clock))
	require.Equal(t, 4, h.Len())
}
