package csvexport

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExportCandidateList(t *testing.T) {
	t.Run(`original column layout`, func(t *testing.T) {
		buf, err := NewHandler().ExportCandidateList([]dbmodels.Candidate{
			{
				Name:        "Ahmed Hassan",
				Position:    "Senior Frontend Developer",
				Status:      models.CandidateStatusInterview,
				Experience:  5,
				Location:    "Dubai, UAE",
				AppliedDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
		})
		require.NoError(t, err)
		require.Equal(t, "Name,Position,Status,Experience,Location,Applied Date\n"+
			"Ahmed Hassan,Senior Frontend Developer,interview,5 years,\"Dubai, UAE\",2024-01-15\n", buf.String())
	})
	t.Run(`empty list has only the header`, func(t *testing.T) {
		buf, err := NewHandler().ExportCandidateList(nil)
		require.NoError(t, err)
		require.Equal(t, "Name,Position,Status,Experience,Location,Applied Date\n", buf.String())
	})
}

func TestFileName(t *testing.T) {
	require.Equal(t, "candidates_export_2024-01-15.csv", FileName(time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)))
}
