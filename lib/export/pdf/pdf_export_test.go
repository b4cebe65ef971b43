package pdfexport

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateCandidateCard(t *testing.T) {
	rec := dbmodels.Candidate{
		Name:         "Ahmed Hassan",
		Position:     "Senior Frontend Developer",
		Email:        "ahmed.hassan@email.com",
		Status:       models.CandidateStatusInterview,
		Skills:       []string{"React", "TypeScript"},
		AppliedDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		LastActivity: time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC),
		Notes: []dbmodels.CandidateNote{
			{Author: "Sarah Johnson", Content: "Great technical skills"},
			{Author: "Sarah Johnson", Content: "Salary negotiation pending", IsPrivate: true},
		},
		Interviews: []dbmodels.Interview{
			{
				Title:    "Technical Interview",
				Date:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				Time:     "14:00",
				Duration: 60,
				Type:     models.InterviewTypeVideo,
				Status:   models.InterviewStatusCompleted,
				Feedback: &dbmodels.InterviewFeedback{OverallRating: 4.5, Recommendation: models.RecommendationHire},
			},
		},
	}
	data, err := GenerateCandidateCard(rec)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
