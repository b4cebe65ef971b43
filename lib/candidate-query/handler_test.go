package candidatequery

import (
	"ats-backend/lib/cache"
	"ats-backend/lib/candidate"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func seeded(t *testing.T) (Provider, candidate.Provider) {
	clock := fixedClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	candidates := candidate.NewHandler(candidate.WithClock(clock))
	require.NoError(t, candidate.SeedDemoData(context.Background(), candidates, clock))
	return NewHandler(candidates, cache.NewNoop(), clock), candidates
}

func TestList(t *testing.T) {
	query, _ := seeded(t)
	ctx := context.Background()

	t.Run("search and filters", func(t *testing.T) {
		result, err := query.List(ctx, candidateapimodels.CandidateFilter{
			Search:  "developer",
			Filters: candidateapimodels.FilterOptions{Location: []string{"Dubai, UAE"}},
		})
		require.NoError(t, err)
		require.EqualValues(t, 1, result.RowCount)
		require.EqualValues(t, 4, result.Total)
		require.Equal(t, "Ahmed Hassan", result.Items[0].Name)
	})
	t.Run("pages keep the full row count", func(t *testing.T) {
		result, err := query.List(ctx, candidateapimodels.CandidateFilter{
			Pagination: apimodels.Pagination{Limit: 3, Page: 2},
		})
		require.NoError(t, err)
		require.EqualValues(t, 4, result.RowCount)
		require.Len(t, result.Items, 1)
		require.Equal(t, "Layla Mansour", result.Items[0].Name)
	})
	t.Run("page past the end", func(t *testing.T) {
		result, err := query.List(ctx, candidateapimodels.CandidateFilter{
			Pagination: apimodels.Pagination{Limit: 10, Page: 5},
		})
		require.NoError(t, err)
		require.Empty(t, result.Items)
	})
	t.Run("bad date range", func(t *testing.T) {
		_, err := query.List(ctx, candidateapimodels.CandidateFilter{
			Filters: candidateapimodels.FilterOptions{DateRange: &candidateapimodels.DateRange{Start: "10/03/2024"}},
		})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

type mapCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = raw
	return nil
}

func (c *mapCache) Close() error {
	return nil
}

type sharedStore struct {
	mu   sync.Mutex
	recs []dbmodels.Candidate
}

func (s *sharedStore) Save(_ context.Context, rec dbmodels.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.recs {
		if s.recs[idx].ID == rec.ID {
			s.recs[idx] = rec.Clone()
			return nil
		}
	}
	s.recs = append(s.recs, rec.Clone())
	return nil
}

func (s *sharedStore) LoadAll(context.Context) ([]dbmodels.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]dbmodels.Candidate, 0, len(s.recs))
	for _, rec := range s.recs {
		list = append(list, rec.Clone())
	}
	return list, nil
}

func TestListCacheAcrossRestart(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	sharedCache := &mapCache{items: map[string][]byte{}}
	store := &sharedStore{}

	first := candidate.NewHandler(candidate.WithClock(clock), candidate.WithStore(store))
	require.NoError(t, first.Load(ctx))
	firstQuery := NewHandler(first, sharedCache, clock)
	result, err := firstQuery.List(ctx, candidateapimodels.CandidateFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 0, result.Total)
	require.Empty(t, firstQuery.Pipeline(ctx)[0].Candidates)

	_, err = first.CreateCandidate(ctx, models.SystemActor(), candidateapimodels.CandidateData{
		Name:     "Ahmed Hassan",
		Email:    "ahmed.hassan@email.com",
		Phone:    "+971-50-123-4567",
		Position: "Senior Frontend Developer",
		Skills:   []string{"React"},
		Location: "Dubai, UAE",
	})
	require.NoError(t, err)

	restarted := candidate.NewHandler(candidate.WithClock(clock), candidate.WithStore(store))
	require.NoError(t, restarted.Load(ctx))
	require.Equal(t, first.Revision(), restarted.Revision()+1)
	restartedQuery := NewHandler(restarted, sharedCache, clock)

	t.Run("list reflects the loaded collection", func(t *testing.T) {
		result, err := restartedQuery.List(ctx, candidateapimodels.CandidateFilter{})
		require.NoError(t, err)
		require.EqualValues(t, 1, result.Total)
		require.Len(t, result.Items, 1)
	})
	t.Run("pipeline reflects the loaded collection", func(t *testing.T) {
		columns := restartedQuery.Pipeline(ctx)
		require.Equal(t, models.CandidateStatusApplied, columns[0].Status)
		require.Len(t, columns[0].Candidates, 1)
	})
	t.Run("reload starts a new scope", func(t *testing.T) {
		scope := restarted.CacheScope()
		require.NoError(t, restarted.Load(ctx))
		require.NotEqual(t, scope, restarted.CacheScope())
	})
}

func TestFiltered(t *testing.T) {
	query, _ := seeded(t)
	list, err := query.Filtered(candidateapimodels.CandidateFilter{
		Filters: candidateapimodels.FilterOptions{Status: []models.CandidateStatus{models.CandidateStatusOffer}},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Layla Mansour", list[0].Name)
}

func TestInterviews(t *testing.T) {
	query, _ := seeded(t)

	t.Run("upcoming sorted by start, past separated", func(t *testing.T) {
		board, err := query.Interviews(candidateapimodels.InterviewFilter{Status: "all"})
		require.NoError(t, err)
		require.Len(t, board.Upcoming, 2)
		require.Equal(t, "Ahmed Hassan", board.Upcoming[0].CandidateName)
		require.Equal(t, "Fatima Al-Zahra", board.Upcoming[1].CandidateName)
		require.Len(t, board.Past, 1)
		require.Equal(t, "Layla Mansour", board.Past[0].CandidateName)
	})
	t.Run("search by title", func(t *testing.T) {
		board, err := query.Interviews(candidateapimodels.InterviewFilter{Search: "portfolio"})
		require.NoError(t, err)
		require.Len(t, board.Upcoming, 1)
		require.Empty(t, board.Past)
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := query.Interviews(candidateapimodels.InterviewFilter{Status: "postponed"})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestPipeline(t *testing.T) {
	query, candidates := seeded(t)
	columns := query.Pipeline(context.Background())
	require.Len(t, columns, len(models.PipelineStatuses))
	counts := map[models.CandidateStatus]int{}
	total := 0
	for _, column := range columns {
		counts[column.Status] = column.Count
		total += column.Count
	}
	require.Equal(t, candidates.Len(), total)
	require.Equal(t, 1, counts[models.CandidateStatusInterview])
	require.Equal(t, 0, counts[models.CandidateStatusApplied])
}
