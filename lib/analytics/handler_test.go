package analytics

import (
	"ats-backend/lib/cache"
	"ats-backend/lib/candidate"
	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	applied := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	list := []dbmodels.Candidate{
		{Position: "Frontend Developer", Status: models.CandidateStatusInterview, Source: "LinkedIn", Rating: 4,
			Interviews: []dbmodels.Interview{
				{Status: models.InterviewStatusScheduled},
				{Status: models.InterviewStatusCompleted, InterviewerName: "Sarah Johnson"},
			}},
		{Position: "UX Designer", Status: models.CandidateStatusOffer, Source: "LinkedIn", Rating: 5},
		{Position: "Data Analyst", Status: models.CandidateStatusHired, Source: "Referral", Rating: 3,
			AppliedDate: applied, LastActivity: applied.AddDate(0, 0, 20)},
		{Position: "Data Analyst", Status: models.CandidateStatusRejected, Source: "Indeed", Rating: 0},
	}
	result := Compute(list)
	require.Equal(t, 4, result.TotalCandidates)
	require.Equal(t, 2, result.ActivePositions)
	require.Equal(t, 1, result.InterviewsScheduled)
	require.Equal(t, 1, result.OffersPending)
	require.Equal(t, 20.0, result.TimeToHire)
	require.Equal(t, 3.0, result.AverageRating)
	require.Equal(t, 100.0, result.PipelineConversion["applied"])
	require.Equal(t, 75.0, result.PipelineConversion["interview"])
	require.Equal(t, 25.0, result.PipelineConversion["hired"])
	require.Equal(t, 50.0, result.SourceEffectiveness["LinkedIn"])
	require.Equal(t, 0.0, result.SourceEffectiveness["Indeed"])
	require.Equal(t, 1, result.TeamPerformance["Sarah Johnson"])
	require.Equal(t, 1, result.StatusDistribution["rejected"])
	require.Len(t, result.MonthlyHires, 1)
	require.Equal(t, "2024-01", result.MonthlyHires[0].Month)
}

func TestComputeEmpty(t *testing.T) {
	result := Compute(nil)
	require.Equal(t, 0, result.TotalCandidates)
	require.Equal(t, 0.0, result.AverageRating)
	require.Empty(t, result.MonthlyHires)
}

func TestDashboard(t *testing.T) {
	clock := candidate.SystemClock{}
	candidates := candidate.NewHandler()
	require.NoError(t, candidate.SeedDemoData(context.Background(), candidates, clock))
	h := NewHandler(candidates, cache.NewNoop(), xlsexport.NewHandler())

	result, err := h.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalCandidates)
	require.Equal(t, 1, result.OffersPending)

	buf, err := h.DashboardExportToXls(context.Background())
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
}
