package analytics

import (
	"ats-backend/lib/cache"
	"ats-backend/lib/candidate"
	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/models"
	analyticsapimodels "ats-backend/models/api/analytics"
	dbmodels "ats-backend/models/db"
	"bytes"
	"context"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Dashboard(ctx context.Context) (analyticsapimodels.DashboardView, error)
	DashboardExportToXls(ctx context.Context) (*bytes.Buffer, error)
}

func NewHandler(candidates candidate.Provider, cacheProvider cache.Provider, xls xlsexport.Provider) Provider {
	return impl{
		candidates: candidates,
		cache:      cacheProvider,
		xls:        xls,
	}
}

type impl struct {
	candidates candidate.Provider
	cache      cache.Provider
	xls        xlsexport.Provider
}

func (i impl) Dashboard(ctx context.Context) (analyticsapimodels.DashboardView, error) {
	key := cache.BuildKey("analytics", i.candidates.CacheScope())
	var result analyticsapimodels.DashboardView
	found, err := i.cache.GetJSON(ctx, key, &result)
	if err != nil {
		log.WithError(err).Warn("error reading dashboard from cache")
	}
	if found {
		return result, nil
	}
	result = Compute(i.candidates.List())
	if err = i.cache.SetJSON(ctx, key, result); err != nil {
		log.WithError(err).Warn("error writing dashboard to cache")
	}
	return result, nil
}

func (i impl) DashboardExportToXls(ctx context.Context) (*bytes.Buffer, error) {
	data, err := i.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportDashboard(data)
}

// stage order used for conversion, the side exits are not part of the funnel
var funnel = []models.CandidateStatus{
	models.CandidateStatusApplied,
	models.CandidateStatusScreening,
	models.CandidateStatusInterview,
	models.CandidateStatusAssessment,
	models.CandidateStatusOffer,
	models.CandidateStatusHired,
}

// Compute derives the dashboard metrics from a snapshot of the collection.
func Compute(list []dbmodels.Candidate) analyticsapimodels.DashboardView {
	result := analyticsapimodels.DashboardView{
		TotalCandidates:     len(list),
		PipelineConversion:  map[string]float64{},
		SourceEffectiveness: map[string]float64{},
		TeamPerformance:     map[string]int{},
		MonthlyHires:        []analyticsapimodels.MonthlyHires{},
		StatusDistribution:  map[string]int{},
	}
	funnelPos := make(map[models.CandidateStatus]int, len(funnel))
	for idx, status := range funnel {
		funnelPos[status] = idx
	}
	reached := make([]int, len(funnel))
	positions := map[string]struct{}{}
	sourceTotal := map[string]int{}
	sourceWon := map[string]int{}
	monthly := map[string]int{}
	var ratingSum, hireDays float64
	var hired int

	for _, rec := range list {
		result.StatusDistribution[string(rec.Status)]++
		ratingSum += rec.Rating
		if !rec.Status.IsTerminal() {
			positions[rec.Position] = struct{}{}
		}
		if rec.Status == models.CandidateStatusOffer {
			result.OffersPending++
		}
		// rejected and not responding candidates only count as applied
		pos := funnelPos[rec.Status]
		for idx := 0; idx <= pos; idx++ {
			reached[idx]++
		}
		sourceTotal[rec.Source]++
		if rec.Status == models.CandidateStatusOffer || rec.Status == models.CandidateStatusHired {
			sourceWon[rec.Source]++
		}
		if rec.Status == models.CandidateStatusHired {
			hired++
			hireDays += rec.LastActivity.Sub(rec.AppliedDate).Hours() / 24
			monthly[rec.LastActivity.Format("2006-01")]++
		}
		for _, interview := range rec.Interviews {
			switch interview.Status {
			case models.InterviewStatusScheduled:
				result.InterviewsScheduled++
			case models.InterviewStatusCompleted:
				result.TeamPerformance[interviewerName(interview)]++
			}
		}
	}

	result.ActivePositions = len(positions)
	if len(list) != 0 {
		result.AverageRating = round(ratingSum / float64(len(list)))
		for idx, status := range funnel {
			result.PipelineConversion[string(status)] = percent(reached[idx], len(list))
		}
	}
	if hired != 0 {
		result.TimeToHire = round(hireDays / float64(hired))
	}
	for source, total := range sourceTotal {
		result.SourceEffectiveness[source] = percent(sourceWon[source], total)
	}
	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		result.MonthlyHires = append(result.MonthlyHires, analyticsapimodels.MonthlyHires{Month: month, Hires: monthly[month]})
	}
	return result
}

func interviewerName(interview dbmodels.Interview) string {
	if interview.InterviewerName != "" {
		return interview.InterviewerName
	}
	return interview.InterviewerID
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(part) * 100 / float64(total))
}

func round(v float64) float64 {
	return math.Round(v*10) / 10
}
