package candidatefilter

import (
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"strings"
	"time"
)

// Apply returns the candidates that match the search query and every filter dimension,
// in the order they were given. Absent dimensions impose no constraint.
func Apply(list []dbmodels.Candidate, query string, filters candidateapimodels.FilterOptions) []dbmodels.Candidate {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" && filters.IsEmpty() {
		if list == nil {
			return []dbmodels.Candidate{}
		}
		return list
	}
	m := newMatcher(query, filters)
	result := make([]dbmodels.Candidate, 0, len(list))
	for _, rec := range list {
		if m.match(rec) {
			result = append(result, rec)
		}
	}
	return result
}

type matcher struct {
	query      string
	filters    candidateapimodels.FilterOptions
	skills     map[string]struct{}
	locations  map[string]struct{}
	statuses   map[models.CandidateStatus]struct{}
	sources    map[string]struct{}
	start, end time.Time
}

func newMatcher(query string, filters candidateapimodels.FilterOptions) matcher {
	m := matcher{
		query:     query,
		filters:   filters,
		skills:    toSet(filters.Skills),
		locations: toSet(filters.Location),
		sources:   toSet(filters.Source),
		statuses:  make(map[models.CandidateStatus]struct{}, len(filters.Status)),
	}
	for _, status := range filters.Status {
		m.statuses[status] = struct{}{}
	}
	// bad bounds are rejected by FilterOptions.Validate before we get here
	m.start, m.end, _ = filters.GetDateRange()
	return m
}

func (m matcher) match(rec dbmodels.Candidate) bool {
	if m.query != "" && !matchSearch(rec, m.query) {
		return false
	}
	if len(m.skills) > 0 && !sharesSkill(rec, m.skills) {
		return false
	}
	if r := m.filters.Experience; r != nil {
		if r.Min != nil && rec.Experience < *r.Min {
			return false
		}
		if r.Max != nil && rec.Experience > *r.Max {
			return false
		}
	}
	if len(m.locations) > 0 && !contains(m.locations, rec.Location) {
		return false
	}
	if len(m.statuses) > 0 {
		if _, ok := m.statuses[rec.Status]; !ok {
			return false
		}
	}
	if len(m.sources) > 0 && !contains(m.sources, rec.Source) {
		return false
	}
	if !inFloatRange(m.filters.Salary, rec.SalaryExpectation) {
		return false
	}
	if !inFloatRange(m.filters.Rating, rec.Rating) {
		return false
	}
	if !m.inDateRange(rec.AppliedDate) {
		return false
	}
	return true
}

// matchSearch is a case-insensitive substring match on name, position or any skill.
func matchSearch(rec dbmodels.Candidate, query string) bool {
	if strings.Contains(strings.ToLower(rec.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Position), query) {
		return true
	}
	for _, skill := range rec.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

func sharesSkill(rec dbmodels.Candidate, skills map[string]struct{}) bool {
	for _, skill := range rec.Skills {
		if _, ok := skills[skill]; ok {
			return true
		}
	}
	return false
}

func inFloatRange(r *candidateapimodels.FloatRange, value float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && value < *r.Min {
		return false
	}
	if r.Max != nil && value > *r.Max {
		return false
	}
	return true
}

// inDateRange compares calendar days only, both bounds inclusive.
func (m matcher) inDateRange(applied time.Time) bool {
	if m.start.IsZero() && m.end.IsZero() {
		return true
	}
	day := applied.Format(candidateapimodels.DateLayout)
	if !m.start.IsZero() && day < m.start.Format(candidateapimodels.DateLayout) {
		return false
	}
	if !m.end.IsZero() && day > m.end.Format(candidateapimodels.DateLayout) {
		return false
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

func contains(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}
