package candidate

import (
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type demoCandidate struct {
	data       candidateapimodels.CandidateData
	status     models.CandidateStatus
	rating     float64
	notes      []candidateapimodels.NoteData
	documents  []candidateapimodels.DocumentData
	interviews []demoInterview
}

type demoInterview struct {
	data     candidateapimodels.InterviewData
	dayShift int
	feedback *candidateapimodels.FeedbackData
}

var demoRecruiter = models.Actor{ID: "1", Name: "Sarah Johnson"}

func demoCandidates() []demoCandidate {
	return []demoCandidate{
		{
			data: candidateapimodels.CandidateData{
				Name:              "Ahmed Hassan",
				Email:             "ahmed.hassan@email.com",
				Phone:             "+971-50-123-4567",
				Position:          "Senior Frontend Developer",
				Experience:        5,
				Skills:            []string{"React", "TypeScript", "Node.js", "GraphQL"},
				Location:          "Dubai, UAE",
				SalaryExpectation: 85000,
				Source:            "LinkedIn",
			},
			status: models.CandidateStatusInterview,
			rating: 4.5,
			notes: []candidateapimodels.NoteData{
				{Content: "Great technical skills, strong React experience. Recommended for technical interview."},
			},
			documents: []candidateapimodels.DocumentData{
				{Name: "Ahmed_Hassan_Resume.pdf", Type: models.DocumentTypeResume, Url: "/documents/ahmed_resume.pdf", Size: 245760},
			},
			interviews: []demoInterview{
				{
					data: candidateapimodels.InterviewData{
						Title:           "Technical Interview - Frontend Developer",
						InterviewerID:   demoRecruiter.ID,
						InterviewerName: demoRecruiter.Name,
						Time:            "14:00",
						Duration:        60,
						Type:            models.InterviewTypeVideo,
						MeetingLink:     "https://meet.google.com/abc-defg-hij",
					},
					dayShift: 2,
				},
			},
		},
		{
			data: candidateapimodels.CandidateData{
				Name:              "Fatima Al-Zahra",
				Email:             "fatima.alzahra@email.com",
				Phone:             "+966-50-987-6543",
				Position:          "UX Designer",
				Experience:        3,
				Skills:            []string{"Figma", "Adobe XD", "User Research", "Prototyping"},
				Location:          "Riyadh, Saudi Arabia",
				SalaryExpectation: 65000,
				Source:            "Company Website",
			},
			status: models.CandidateStatusAssessment,
			rating: 4.2,
			interviews: []demoInterview{
				{
					data: candidateapimodels.InterviewData{
						Title:           "Design Portfolio Review",
						InterviewerID:   "2",
						InterviewerName: "Mike Chen",
						Time:            "10:30",
						Duration:        45,
						Type:            models.InterviewTypeVideo,
						MeetingLink:     "https://zoom.us/j/123456789",
					},
					dayShift: 3,
				},
			},
		},
		{
			data: candidateapimodels.CandidateData{
				Name:              "Omar Khalil",
				Email:             "omar.khalil@email.com",
				Phone:             "+971-55-234-5678",
				Position:          "Data Analyst",
				Experience:        2,
				Skills:            []string{"Python", "SQL", "Tableau", "Power BI"},
				Location:          "Abu Dhabi, UAE",
				SalaryExpectation: 55000,
				Source:            "Indeed",
			},
			status: models.CandidateStatusNotResponding,
			rating: 3.8,
			notes: []candidateapimodels.NoteData{
				{Content: "Candidate has not responded to our interview invitation emails. Tried calling twice.", Mentions: []string{"sarah.johnson"}},
			},
		},
		{
			data: candidateapimodels.CandidateData{
				Name:              "Layla Mansour",
				Email:             "layla.mansour@email.com",
				Phone:             "+965-60-345-6789",
				Position:          "Product Manager",
				Experience:        6,
				Skills:            []string{"Product Strategy", "Agile", "Stakeholder Management", "Analytics"},
				Location:          "Kuwait City, Kuwait",
				SalaryExpectation: 95000,
				Source:            "Referral",
			},
			status: models.CandidateStatusOffer,
			rating: 4.8,
			interviews: []demoInterview{
				{
					data: candidateapimodels.InterviewData{
						Title:           "Final Interview - Product Manager",
						InterviewerID:   demoRecruiter.ID,
						InterviewerName: demoRecruiter.Name,
						Time:            "15:00",
						Duration:        90,
						Type:            models.InterviewTypeInPerson,
						Location:        "Conference Room A",
					},
					dayShift: -1,
					feedback: &candidateapimodels.FeedbackData{
						TechnicalSkills: 4.5,
						Communication:   5,
						CulturalFit:     4.8,
						OverallRating:   4.8,
						Comments:        "Excellent candidate with strong product vision and leadership skills.",
						Recommendation:  models.RecommendationHire,
					},
				},
			},
		},
	}
}

// SeedDemoData fills an empty store with sample candidates through the regular lifecycle operations.
func SeedDemoData(ctx context.Context, provider Provider, clock Clock) error {
	if provider.Len() > 0 {
		return nil
	}
	today := clock.Now()
	for _, demo := range demoCandidates() {
		rec, err := provider.CreateCandidate(ctx, demoRecruiter, demo.data)
		if err != nil {
			return errors.Wrapf(err, "error seeding candidate %s", demo.data.Name)
		}
		for _, note := range demo.notes {
			if _, err = provider.AppendNote(ctx, demoRecruiter, rec.ID, note); err != nil {
				return errors.Wrap(err, "error seeding note")
			}
		}
		for _, doc := range demo.documents {
			if _, err = provider.AppendDocument(ctx, demoRecruiter, rec.ID, doc); err != nil {
				return errors.Wrap(err, "error seeding document")
			}
		}
		for _, demoInt := range demo.interviews {
			data := demoInt.data
			data.Date = today.AddDate(0, 0, demoInt.dayShift).Format(candidateapimodels.DateLayout)
			interview, err := provider.AppendInterview(ctx, demoRecruiter, rec.ID, data)
			if err != nil {
				return errors.Wrap(err, "error seeding interview")
			}
			if demoInt.feedback != nil {
				if _, err = provider.SetInterviewFeedback(ctx, demoRecruiter, rec.ID, interview.ID, *demoInt.feedback); err != nil {
					return errors.Wrap(err, "error seeding interview feedback")
				}
			}
		}
		if _, err = provider.SetRating(ctx, demoRecruiter, rec.ID, demo.rating); err != nil {
			return errors.Wrap(err, "error seeding rating")
		}
		if _, err = provider.UpdateStatus(ctx, demoRecruiter, rec.ID, demo.status, nil); err != nil {
			return errors.Wrap(err, "error seeding status")
		}
	}
	log.WithField("count", provider.Len()).Info("demo candidates seeded")
	return nil
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
