package models

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type CandidateStatus string

const (
	CandidateStatusApplied       CandidateStatus = "applied"
	CandidateStatusScreening     CandidateStatus = "screening"
	CandidateStatusInterview     CandidateStatus = "interview"
	CandidateStatusAssessment    CandidateStatus = "assessment"
	CandidateStatusOffer         CandidateStatus = "offer"
	CandidateStatusHired         CandidateStatus = "hired"
	CandidateStatusRejected      CandidateStatus = "rejected"
	CandidateStatusNotResponding CandidateStatus = "not_responding"
)

// PipelineStatuses is the board order of the pipeline stages.
var PipelineStatuses = []CandidateStatus{
	CandidateStatusApplied,
	CandidateStatusScreening,
	CandidateStatusInterview,
	CandidateStatusAssessment,
	CandidateStatusOffer,
	CandidateStatusHired,
	CandidateStatusRejected,
	CandidateStatusNotResponding,
}

func ParseCandidateStatus(value string) (CandidateStatus, error) {
	status := CandidateStatus(value)
	if !status.IsValid() {
		return "", errors.Errorf("unknown candidate status %q", value)
	}
	return status, nil
}

func (s *CandidateStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "candidate status must be a string")
	}
	status, err := ParseCandidateStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusApplied,
		CandidateStatusScreening,
		CandidateStatusInterview,
		CandidateStatusAssessment,
		CandidateStatusOffer,
		CandidateStatusHired,
		CandidateStatusRejected,
		CandidateStatusNotResponding:
		return true
	default:
		return false
	}
}

// IsTerminal reports hired/rejected. Transitions out of them are still allowed.
func (s CandidateStatus) IsTerminal() bool {
	return s == CandidateStatusHired || s == CandidateStatusRejected
}

func (s CandidateStatus) ToHuman() string {
	switch s {
	case CandidateStatusApplied:
		return "Applied"
	case CandidateStatusScreening:
		return "Screening"
	case CandidateStatusInterview:
		return "Interview"
	case CandidateStatusAssessment:
		return "Assessment"
	case CandidateStatusOffer:
		return "Offer"
	case CandidateStatusHired:
		return "Hired"
	case CandidateStatusRejected:
		return "Rejected"
	case CandidateStatusNotResponding:
		return "Not Responding"
	}
	return string(s)
}

type DocumentType string

const (
	DocumentTypeResume      DocumentType = "resume"
	DocumentTypeCoverLetter DocumentType = "cover_letter"
	DocumentTypePortfolio   DocumentType = "portfolio"
	DocumentTypeCertificate DocumentType = "certificate"
	DocumentTypeOther       DocumentType = "other"
)

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentTypeResume, DocumentTypeCoverLetter, DocumentTypePortfolio, DocumentTypeCertificate, DocumentTypeOther:
		return true
	}
	return false
}

type InterviewType string

const (
	InterviewTypePhone    InterviewType = "phone"
	InterviewTypeVideo    InterviewType = "video"
	InterviewTypeInPerson InterviewType = "in_person"
)

func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewTypePhone, InterviewTypeVideo, InterviewTypeInPerson:
		return true
	}
	return false
}

var interviewTypeHumanName = map[InterviewType]string{
	InterviewTypePhone:    "Phone",
	InterviewTypeVideo:    "Video",
	InterviewTypeInPerson: "In person",
}

func (t InterviewType) ToHuman() string {
	if human, exist := interviewTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusRescheduled:
		return true
	}
	return false
}

type Recommendation string

const (
	RecommendationHire   Recommendation = "hire"
	RecommendationReject Recommendation = "reject"
	RecommendationMaybe  Recommendation = "maybe"
)

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationHire, RecommendationReject, RecommendationMaybe:
		return true
	}
	return false
}

const SystemUser = "System"

// Suggestion lists shown by the add-candidate form. Not enforced.
var (
	LocationSuggestions = []string{"Dubai, UAE", "Riyadh, Saudi Arabia", "Abu Dhabi, UAE", "Kuwait City, Kuwait", "Doha, Qatar", "Manama, Bahrain", "Muscat, Oman"}
	SourceSuggestions   = []string{"LinkedIn", "Company Website", "Indeed", "Referral", "Glassdoor", "AngelList", "Stack Overflow", "GitHub", "Other"}
)

const DefaultCandidateSource = "Company Website"
