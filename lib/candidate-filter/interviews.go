package candidatefilter

import (
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

const statusAll = "all"

// ApplyInterviews filters the scheduler list by status, exact date and a search
// over candidate name and interview title.
func ApplyInterviews(list []dbmodels.Interview, filter candidateapimodels.InterviewFilter) []dbmodels.Interview {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]dbmodels.Interview, 0, len(list))
	for _, rec := range list {
		if filter.Status != "" && filter.Status != statusAll && string(rec.Status) != filter.Status {
			continue
		}
		if filter.Date != "" && rec.Date.Format(candidateapimodels.DateLayout) != filter.Date {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(rec.CandidateName), query) &&
			!strings.Contains(strings.ToLower(rec.Title), query) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// SplitUpcoming separates scheduled interviews from today on from everything that
// already happened. Future interviews that are cancelled or rescheduled are in neither list.
func SplitUpcoming(list []dbmodels.Interview, now time.Time) (upcoming, past []dbmodels.Interview) {
	upcoming = []dbmodels.Interview{}
	past = []dbmodels.Interview{}
	today := now.Format(candidateapimodels.DateLayout)
	for _, rec := range list {
		day := rec.Date.Format(candidateapimodels.DateLayout)
		switch {
		case rec.Status == models.InterviewStatusScheduled && day >= today:
			upcoming = append(upcoming, rec)
		case rec.Status == models.InterviewStatusCompleted || day < today:
			past = append(past, rec)
		}
	}
	return upcoming, past
}

type Column struct {
	Status     models.CandidateStatus
	Candidates []dbmodels.Candidate
}

// GroupByStatus lays the candidates out as pipeline board columns.
// Every stage gets a column, empty or not.
func GroupByStatus(list []dbmodels.Candidate) []Column {
	columns := make([]Column, 0, len(models.PipelineStatuses))
	position := make(map[models.CandidateStatus]int, len(models.PipelineStatuses))
	for idx, status := range models.PipelineStatuses {
		position[status] = idx
		columns = append(columns, Column{Status: status, Candidates: []dbmodels.Candidate{}})
	}
	for _, rec := range list {
		idx, ok := position[rec.Status]
		if !ok {
			continue
		}
		columns[idx].Candidates = append(columns[idx].Candidates, rec)
	}
	return columns
}
