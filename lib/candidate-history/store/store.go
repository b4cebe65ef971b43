package candidatehistorystore

import (
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateHistory) (id string, err error)
	ListCount(candidateID string, filter candidateapimodels.HistoryFilter) (count int64, err error)
	List(candidateID string, filter candidateapimodels.HistoryFilter) (list []dbmodels.CandidateHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(candidateID string, filter candidateapimodels.HistoryFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.CandidateHistory{}).
		Where("candidate_id = ?", candidateID)
	if filter.CommentsOnly {
		tx = tx.Where("action_type = ?", dbmodels.HistoryTypeComment)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("error counting candidate history records")
		return 0, errors.New("error counting candidate history records")
	}
	return rowCount, nil
}

func (i impl) List(candidateID string, filter candidateapimodels.HistoryFilter) (list []dbmodels.CandidateHistory, err error) {
	list = []dbmodels.CandidateHistory{}
	tx := i.db.
		Model(dbmodels.CandidateHistory{}).
		Where("candidate_id = ?", candidateID)
	if filter.CommentsOnly {
		tx = tx.Where("action_type = ?", dbmodels.HistoryTypeComment)
	}
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order("created_at")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

// NewMemory keeps history in process when the database is switched off.
func NewMemory() Provider {
	return &memory{}
}

type memory struct {
	mu   sync.RWMutex
	list []dbmodels.CandidateHistory
}

func (m *memory) Create(rec dbmodels.CandidateHistory) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	m.list = append(m.list, rec)
	return rec.ID, nil
}

func (m *memory) ListCount(candidateID string, filter candidateapimodels.HistoryFilter) (int64, error) {
	return int64(len(m.filter(candidateID, filter))), nil
}

func (m *memory) List(candidateID string, filter candidateapimodels.HistoryFilter) ([]dbmodels.CandidateHistory, error) {
	list := m.filter(candidateID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if offset >= len(list) {
		return []dbmodels.CandidateHistory{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (m *memory) filter(candidateID string, filter candidateapimodels.HistoryFilter) []dbmodels.CandidateHistory {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.CandidateHistory{}
	for _, rec := range m.list {
		if rec.CandidateID != candidateID {
			continue
		}
		if filter.CommentsOnly && rec.ActionType != dbmodels.HistoryTypeComment {
			continue
		}
		result = append(result, rec)
	}
	return result
}
