package candidateapimodels

import (
	"ats-backend/models"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func validCandidate() CandidateData {
	return CandidateData{
		Name:     "Ahmed Hassan",
		Email:    "ahmed.hassan@email.com",
		Phone:    "+971-50-123-4567",
		Position: "Senior Frontend Developer",
		Skills:   []string{"React"},
		Location: "Dubai, UAE",
	}
}

func TestCandidateDataValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validCandidate().Validate())
	})
	t.Run("blank skills do not count", func(t *testing.T) {
		data := validCandidate()
		data.Skills = []string{" ", ""}
		err := data.Validate()
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr))
		require.True(t, verr.HasField("skills"))
	})
	t.Run("email needs a dot after the at sign", func(t *testing.T) {
		data := validCandidate()
		data.Email = "ahmed@email"
		require.Error(t, data.Validate())
	})
	t.Run("negative numbers", func(t *testing.T) {
		data := validCandidate()
		data.Experience = -1
		data.SalaryExpectation = -5
		var verr *models.ValidationError
		require.True(t, errors.As(data.Validate(), &verr))
		require.True(t, verr.HasField("experience"))
		require.True(t, verr.HasField("salary_expectation"))
	})
}

func TestNormalizedSkills(t *testing.T) {
	data := CandidateData{Skills: []string{" React", "Go", "React ", "", "SQL"}}
	require.Equal(t, []string{"React", "Go", "SQL"}, data.NormalizedSkills())
}

func TestGetSource(t *testing.T) {
	require.Equal(t, models.DefaultCandidateSource, CandidateData{}.GetSource())
	require.Equal(t, "Referral", CandidateData{Source: " Referral "}.GetSource())
}

func TestInterviewUpdateValidate(t *testing.T) {
	badDate := "2024/01/01"
	badTime := "25:00"
	zero := 0
	var verr *models.ValidationError
	err := InterviewUpdate{Date: &badDate, Time: &badTime, Duration: &zero}.Validate()
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	require.NoError(t, InterviewUpdate{}.Validate())
}

func TestFilterValidate(t *testing.T) {
	require.NoError(t, CandidateFilter{}.Validate())
	require.True(t, FilterOptions{}.IsEmpty())
	err := FilterOptions{DateRange: &DateRange{End: "tomorrow"}}.Validate()
	require.True(t, errors.Is(err, models.ErrValidation))
}
