package candidatefilter

import (
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func names(list []dbmodels.Candidate) []string {
	result := []string{}
	for _, rec := range list {
		result = append(result, rec.Name)
	}
	return result
}

func collection() []dbmodels.Candidate {
	return []dbmodels.Candidate{
		{
			BaseModel:         dbmodels.BaseModel{ID: "1"},
			Name:              "Ahmed Hassan",
			Position:          "Senior Frontend Developer",
			Skills:            []string{"React", "TypeScript"},
			Status:            models.CandidateStatusInterview,
			Experience:        5,
			Location:          "Dubai, UAE",
			Source:            "LinkedIn",
			SalaryExpectation: 85000,
			Rating:            4.5,
			AppliedDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			BaseModel:         dbmodels.BaseModel{ID: "2"},
			Name:              "Fatima Al-Zahra",
			Position:          "UX Designer",
			Skills:            []string{"Figma"},
			Status:            models.CandidateStatusAssessment,
			Experience:        3,
			Location:          "Riyadh, Saudi Arabia",
			Source:            "Company Website",
			SalaryExpectation: 65000,
			Rating:            4.2,
			AppliedDate:       time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestApply(t *testing.T) {
	t.Run(`no search and no filters is identity`, func(t *testing.T) {
		list := collection()
		result := Apply(list, "", candidateapimodels.FilterOptions{})
		require.Equal(t, list, result)
	})
	t.Run(`empty collection`, func(t *testing.T) {
		require.Empty(t, Apply(nil, "", candidateapimodels.FilterOptions{}))
		require.NotNil(t, Apply(nil, "", candidateapimodels.FilterOptions{}))
		result := Apply([]dbmodels.Candidate{}, "react", candidateapimodels.FilterOptions{
			Status: []models.CandidateStatus{models.CandidateStatusHired},
		})
		require.NotNil(t, result)
		require.Empty(t, result)
	})
	t.Run(`search is case-insensitive on skills`, func(t *testing.T) {
		require.Equal(t, []string{"Ahmed Hassan"}, names(Apply(collection(), "react", candidateapimodels.FilterOptions{})))
	})
	t.Run(`search on name and position`, func(t *testing.T) {
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(Apply(collection(), "ZAHRA", candidateapimodels.FilterOptions{})))
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(Apply(collection(), "  designer ", candidateapimodels.FilterOptions{})))
	})
	t.Run(`search without matches`, func(t *testing.T) {
		require.Empty(t, Apply(collection(), "golang", candidateapimodels.FilterOptions{}))
	})
	t.Run(`minimum experience`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Experience: &candidateapimodels.IntRange{Min: intPtr(4)},
		})
		require.Equal(t, []string{"Ahmed Hassan"}, names(result))
	})
	t.Run(`maximum experience`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Experience: &candidateapimodels.IntRange{Max: intPtr(3)},
		})
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(result))
	})
	t.Run(`zero is a real bound`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Experience: &candidateapimodels.IntRange{Max: intPtr(0)},
		})
		require.Empty(t, result)
	})
	t.Run(`status`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Status: []models.CandidateStatus{models.CandidateStatusAssessment},
		})
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(result))
	})
	t.Run(`skills use OR semantics`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Skills: []string{"React", "Figma"},
		})
		require.Equal(t, []string{"Ahmed Hassan", "Fatima Al-Zahra"}, names(result))
	})
	t.Run(`skills match exactly`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Skills: []string{"react"},
		})
		require.Empty(t, result)
	})
	t.Run(`conjunction equals intersection`, func(t *testing.T) {
		list := append(collection(), dbmodels.Candidate{
			BaseModel: dbmodels.BaseModel{ID: "3"},
			Name:      "Omar Khalil",
			Skills:    []string{"React"},
			Status:    models.CandidateStatusApplied,
		})
		bySkill := Apply(list, "", candidateapimodels.FilterOptions{Skills: []string{"React"}})
		byStatus := Apply(list, "", candidateapimodels.FilterOptions{Status: []models.CandidateStatus{models.CandidateStatusInterview}})
		both := Apply(list, "", candidateapimodels.FilterOptions{
			Skills: []string{"React"},
			Status: []models.CandidateStatus{models.CandidateStatusInterview},
		})
		intersection := []string{}
		for _, a := range bySkill {
			for _, b := range byStatus {
				if a.ID == b.ID {
					intersection = append(intersection, a.Name)
				}
			}
		}
		require.Equal(t, intersection, names(both))
		require.Equal(t, []string{"Ahmed Hassan"}, names(both))
	})
	t.Run(`location and source are exact`, func(t *testing.T) {
		require.Empty(t, Apply(collection(), "", candidateapimodels.FilterOptions{Location: []string{"Dubai"}}))
		require.Equal(t, []string{"Ahmed Hassan"}, names(Apply(collection(), "", candidateapimodels.FilterOptions{Location: []string{"Dubai, UAE"}})))
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(Apply(collection(), "", candidateapimodels.FilterOptions{Source: []string{"Company Website", "Indeed"}})))
	})
	t.Run(`salary and rating ranges`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			Salary: &candidateapimodels.FloatRange{Max: floatPtr(70000)},
		})
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(result))
		result = Apply(collection(), "", candidateapimodels.FilterOptions{
			Rating: &candidateapimodels.FloatRange{Min: floatPtr(4.5), Max: floatPtr(5)},
		})
		require.Equal(t, []string{"Ahmed Hassan"}, names(result))
	})
	t.Run(`date range is inclusive`, func(t *testing.T) {
		result := Apply(collection(), "", candidateapimodels.FilterOptions{
			DateRange: &candidateapimodels.DateRange{Start: "2024-01-12", End: "2024-01-14"},
		})
		require.Equal(t, []string{"Fatima Al-Zahra"}, names(result))
		result = Apply(collection(), "", candidateapimodels.FilterOptions{
			DateRange: &candidateapimodels.DateRange{Start: "2024-01-15"},
		})
		require.Equal(t, []string{"Ahmed Hassan"}, names(result))
	})
	t.Run(`order is preserved`, func(t *testing.T) {
		list := collection()
		list[0], list[1] = list[1], list[0]
		result := Apply(list, "", candidateapimodels.FilterOptions{Skills: []string{"React", "Figma"}})
		require.Equal(t, []string{"Fatima Al-Zahra", "Ahmed Hassan"}, names(result))
	})
	t.Run(`same input same output`, func(t *testing.T) {
		filters := candidateapimodels.FilterOptions{Skills: []string{"React", "Figma"}}
		require.Equal(t, Apply(collection(), "a", filters), Apply(collection(), "a", filters))
	})
}

func TestInterviews(t *testing.T) {
	list := []dbmodels.Interview{
		{BaseModel: dbmodels.BaseModel{ID: "1"}, CandidateName: "Ahmed Hassan", Title: "Technical Interview", Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Status: models.InterviewStatusScheduled},
		{BaseModel: dbmodels.BaseModel{ID: "2"}, CandidateName: "Fatima Al-Zahra", Title: "Design Portfolio Review", Date: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), Status: models.InterviewStatusScheduled},
		{BaseModel: dbmodels.BaseModel{ID: "3"}, CandidateName: "Layla Mansour", Title: "Final Interview", Date: time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), Status: models.InterviewStatusCompleted},
		{BaseModel: dbmodels.BaseModel{ID: "4"}, CandidateName: "Omar Khalil", Title: "Screening call", Date: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), Status: models.InterviewStatusCancelled},
	}

	t.Run(`status all keeps everything`, func(t *testing.T) {
		require.Len(t, ApplyInterviews(list, candidateapimodels.InterviewFilter{Status: "all"}), 4)
	})
	t.Run(`status date and search`, func(t *testing.T) {
		require.Len(t, ApplyInterviews(list, candidateapimodels.InterviewFilter{Status: "scheduled"}), 2)
		result := ApplyInterviews(list, candidateapimodels.InterviewFilter{Date: "2024-01-21"})
		require.Len(t, result, 1)
		require.Equal(t, "2", result[0].ID)
		result = ApplyInterviews(list, candidateapimodels.InterviewFilter{Search: "portfolio"})
		require.Len(t, result, 1)
		require.Equal(t, "2", result[0].ID)
	})
	t.Run(`upcoming and past`, func(t *testing.T) {
		now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
		upcoming, past := SplitUpcoming(list, now)
		require.Len(t, upcoming, 2)
		require.Equal(t, "1", upcoming[0].ID)
		require.Len(t, past, 1)
		require.Equal(t, "3", past[0].ID)
	})
}

func TestGroupByStatus(t *testing.T) {
	columns := GroupByStatus(collection())
	require.Len(t, columns, len(models.PipelineStatuses))
	require.Equal(t, models.CandidateStatusApplied, columns[0].Status)
	require.Empty(t, columns[0].Candidates)
	require.Equal(t, []string{"Ahmed Hassan"}, names(columns[2].Candidates))
	require.Equal(t, []string{"Fatima Al-Zahra"}, names(columns[3].Candidates))
}
