package candidatequery

import (
	"ats-backend/lib/cache"
	"ats-backend/lib/candidate"
	candidatefilter "ats-backend/lib/candidate-filter"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"context"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Provider answers the read side of the recruiting screens from the live collection.
type Provider interface {
	List(ctx context.Context, filter candidateapimodels.CandidateFilter) (ListResult, error)
	Filtered(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error)
	Interviews(filter candidateapimodels.InterviewFilter) (candidateapimodels.InterviewBoard, error)
	Pipeline(ctx context.Context) []candidateapimodels.PipelineColumnView
}

type ListResult struct {
	Items    []candidateapimodels.CandidateView `json:"items"`
	RowCount int64                              `json:"row_count"`
	Total    int64                              `json:"total"`
}

func NewHandler(candidates candidate.Provider, cacheProvider cache.Provider, clock candidate.Clock) Provider {
	return impl{
		candidates: candidates,
		cache:      cacheProvider,
		clock:      clock,
	}
}

type impl struct {
	candidates candidate.Provider
	cache      cache.Provider
	clock      candidate.Clock
}

func (i impl) List(ctx context.Context, filter candidateapimodels.CandidateFilter) (ListResult, error) {
	if err := filter.Validate(); err != nil {
		return ListResult{}, err
	}
	key := cache.BuildKey("candidates", i.candidates.CacheScope(), filter)
	var result ListResult
	found, err := i.cache.GetJSON(ctx, key, &result)
	if err != nil {
		log.WithError(err).Warn("error reading candidate list from cache")
	}
	if found {
		return result, nil
	}

	all := i.candidates.List()
	matched := candidatefilter.Apply(all, filter.GetSearch(), filter.Filters)
	result = ListResult{
		RowCount: int64(len(matched)),
		Total:    int64(len(all)),
	}
	if filter.IsSet() {
		pageNum, limit := filter.GetPage()
		matched = page(matched, pageNum, limit)
	}
	result.Items = candidateapimodels.CandidateListConvert(matched)
	if err = i.cache.SetJSON(ctx, key, result); err != nil {
		log.WithError(err).Warn("error writing candidate list to cache")
	}
	return result, nil
}

func (i impl) Filtered(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return candidatefilter.Apply(i.candidates.List(), filter.GetSearch(), filter.Filters), nil
}

func (i impl) Interviews(filter candidateapimodels.InterviewFilter) (candidateapimodels.InterviewBoard, error) {
	if err := filter.Validate(); err != nil {
		return candidateapimodels.InterviewBoard{}, err
	}
	list := candidatefilter.ApplyInterviews(i.candidates.Interviews(), filter)
	upcoming, past := candidatefilter.SplitUpcoming(list, i.clock.Now())
	sort.SliceStable(upcoming, func(a, b int) bool {
		return startsBefore(upcoming[a], upcoming[b])
	})
	sort.SliceStable(past, func(a, b int) bool {
		return startsBefore(past[b], past[a])
	})
	return candidateapimodels.InterviewBoard{
		Upcoming: candidateapimodels.InterviewListConvert(upcoming),
		Past:     candidateapimodels.InterviewListConvert(past),
	}, nil
}

func (i impl) Pipeline(ctx context.Context) []candidateapimodels.PipelineColumnView {
	key := cache.BuildKey("pipeline", i.candidates.CacheScope())
	var result []candidateapimodels.PipelineColumnView
	found, err := i.cache.GetJSON(ctx, key, &result)
	if err != nil {
		log.WithError(err).Warn("error reading pipeline from cache")
	}
	if found {
		return result
	}
	columns := candidatefilter.GroupByStatus(i.candidates.List())
	result = make([]candidateapimodels.PipelineColumnView, 0, len(columns))
	for _, column := range columns {
		result = append(result, candidateapimodels.PipelineColumnView{
			Status:     column.Status,
			StatusName: column.Status.ToHuman(),
			Count:      len(column.Candidates),
			Candidates: candidateapimodels.CandidateListConvert(column.Candidates),
		})
	}
	if err = i.cache.SetJSON(ctx, key, result); err != nil {
		log.WithError(err).Warn("error writing pipeline to cache")
	}
	return result
}

func page(list []dbmodels.Candidate, pageNum, limit int) []dbmodels.Candidate {
	offset := (pageNum - 1) * limit
	if offset >= len(list) {
		return []dbmodels.Candidate{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

func startsBefore(a, b dbmodels.Interview) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Time < b.Time
}
