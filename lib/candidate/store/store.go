package candidatestore

import (
	dbmodels "ats-backend/models/db"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Save(ctx context.Context, rec dbmodels.Candidate) error
	LoadAll(ctx context.Context) ([]dbmodels.Candidate, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save upserts the candidate together with its notes, documents and interviews.
func (i impl) Save(ctx context.Context, rec dbmodels.Candidate) error {
	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).
			Save(&rec).
			Error
		if err != nil {
			return errors.Wrap(err, "error saving candidate")
		}
		for idx := range rec.Notes {
			rec.Notes[idx].CandidateID = rec.ID
			if err = tx.Save(&rec.Notes[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving candidate note")
			}
		}
		for idx := range rec.Documents {
			rec.Documents[idx].CandidateID = rec.ID
			if err = tx.Save(&rec.Documents[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving candidate document")
			}
		}
		for idx := range rec.Interviews {
			rec.Interviews[idx].CandidateID = rec.ID
			if err = tx.Save(&rec.Interviews[idx]).Error; err != nil {
				return errors.Wrap(err, "error saving interview")
			}
		}
		return nil
	})
}

// attachmentOrder maps each preloaded association to the column that restores its append order.
// uploaded_date comes from the client and cannot be used for documents.
var attachmentOrder = []struct {
	association string
	column      string
}{
	{association: "Notes", column: "created_at"},
	{association: "Documents", column: "created_at"},
	{association: "Interviews", column: "created_at"},
}

func preloadAttachments(db *gorm.DB) *gorm.DB {
	for _, item := range attachmentOrder {
		column := item.column
		db = db.Preload(item.association, func(tx *gorm.DB) *gorm.DB { return tx.Order(column) })
	}
	return db
}

func (i impl) LoadAll(ctx context.Context) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{}).
		Scopes(preloadAttachments).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// NewNoop is used when persistence is switched off: the in-memory collection is all there is.
func NewNoop() Provider {
	return noop{}
}

type noop struct{}

func (noop) Save(context.Context, dbmodels.Candidate) error {
	return nil
}

func (noop) LoadAll(context.Context) ([]dbmodels.Candidate, error) {
	return nil, nil
}
