package candidatehistoryhandler

import (
	candidatehistorystore "ats-backend/lib/candidate-history/store"
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(candidateID string, filter candidateapimodels.HistoryFilter) ([]candidateapimodels.HistoryView, int64, error)
	Save(candidateID string, actor models.Actor, action dbmodels.ActionType, changes dbmodels.CandidateChanges)
}

func NewHandler(store candidatehistorystore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store candidatehistorystore.Provider
}

func (i impl) List(candidateID string, filter candidateapimodels.HistoryFilter) ([]candidateapimodels.HistoryView, int64, error) {
	rowCount, err := i.store.ListCount(candidateID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.HistoryView{}, rowCount, nil
	}

	list, err := i.store.List(candidateID, filter)
	if err != nil {
		log.WithError(err).Error("error getting candidate history")
		return nil, 0, errors.New("error getting candidate history")
	}
	result := make([]candidateapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.HistoryConvert(rec))
	}
	return result, rowCount, nil
}

// Save records an action. Failures are logged and never reach the caller.
func (i impl) Save(candidateID string, actor models.Actor, action dbmodels.ActionType, changes dbmodels.CandidateChanges) {
	logger := log.WithField("candidate_id", candidateID).
		WithField("action", action).
		WithField("description", changes.Description)
	rec := dbmodels.CandidateHistory{
		CandidateID: candidateID,
		ActionType:  action,
		Changes:     changes,
		UserName:    actor.DisplayName(),
	}
	if !actor.IsSystem() {
		userID := actor.ID
		rec.UserID = &userID
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("error saving candidate history")
	}
}
