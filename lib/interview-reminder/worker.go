package interviewreminder

import (
	"ats-backend/lib/candidate"
	"ats-backend/lib/smtp"
	baseworker "ats-backend/lib/utils/base-worker"
	"ats-backend/lib/utils/helpers"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"context"
	"fmt"
	"strings"
	"time"
)

func StartWorker(ctx context.Context, candidates candidate.Provider, mailer smtp.Provider, interval, leadTime time.Duration, loc *time.Location) {
	i := newWorker(candidates, mailer, candidate.SystemClock{}, interval, leadTime, loc)
	go i.Run(ctx, i.handle)
}

func newWorker(candidates candidate.Provider, mailer smtp.Provider, clock candidate.Clock, interval, leadTime time.Duration, loc *time.Location) *impl {
	if loc == nil {
		loc = time.UTC
	}
	return &impl{
		BaseImpl:   *baseworker.NewInstance("InterviewReminderWorker", 20*time.Second, interval),
		candidates: candidates,
		mailer:     mailer,
		clock:      clock,
		leadTime:   leadTime,
		loc:        loc,
	}
}

type impl struct {
	baseworker.BaseImpl
	candidates candidate.Provider
	mailer     smtp.Provider
	clock      candidate.Clock
	leadTime   time.Duration
	loc        *time.Location
}

// handle mails the candidate about every scheduled interview that starts within the lead time
// and flags it so that it is reminded once.
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	now := i.clock.Now().In(i.loc)
	for _, interview := range i.candidates.Interviews() {
		if helpers.IsContextDone(ctx) {
			break
		}
		if interview.Status != models.InterviewStatusScheduled || interview.RemindersSent {
			continue
		}
		startsAt, err := interview.StartsAt(i.loc)
		if err != nil {
			logger.WithError(err).WithField("interview_id", interview.ID).Warn("skipping interview with bad time")
			continue
		}
		if startsAt.Before(now) || startsAt.Sub(now) > i.leadTime {
			continue
		}
		rec, err := i.candidates.Get(interview.CandidateID)
		if err != nil {
			logger.WithError(err).WithField("candidate_id", interview.CandidateID).Error("error getting candidate for reminder")
			continue
		}
		err = i.mailer.SendEMail(rec.Email, "Interview reminder: "+interview.Title, reminderText(rec, interview, startsAt))
		if err != nil {
			logger.WithError(err).WithField("interview_id", interview.ID).Error("error sending interview reminder")
			continue
		}
		if err = i.candidates.MarkRemindersSent(ctx, rec.ID, interview.ID); err != nil {
			logger.WithError(err).WithField("interview_id", interview.ID).Error("error marking interview reminded")
		}
	}
}

func reminderText(rec dbmodels.Candidate, interview dbmodels.Interview, startsAt time.Time) string {
	lines := []string{
		fmt.Sprintf("Dear %s,", rec.Name),
		"",
		fmt.Sprintf("This is a reminder about your %s interview \"%s\" on %s (%d min).",
			strings.ToLower(interview.Type.ToHuman()), interview.Title, startsAt.Format("Mon, 02 Jan 2006 15:04 MST"), interview.Duration),
	}
	if interview.InterviewerName != "" {
		lines = append(lines, "Interviewer: "+interview.InterviewerName)
	}
	if interview.MeetingLink != "" {
		lines = append(lines, "Meeting link: "+interview.MeetingLink)
	}
	if interview.Location != "" {
		lines = append(lines, "Location: "+interview.Location)
	}
	return strings.Join(lines, "\n")
}
