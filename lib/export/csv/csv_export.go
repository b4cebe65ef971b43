package csvexport

import (
	dbmodels "ats-backend/models/db"
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

func NewHandler() Provider {
	return impl{}
}

type impl struct{}

var candidateHeaders = []string{"Name", "Position", "Status", "Experience", "Location", "Applied Date"}

// ExportCandidateList writes one row per candidate. Fields with commas are quoted.
func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.Write(candidateHeaders); err != nil {
		return nil, errors.Wrap(err, "error writing csv header")
	}
	for _, item := range list {
		row := []string{
			item.Name,
			item.Position,
			string(item.Status),
			fmt.Sprintf("%d years", item.Experience),
			item.Location,
			"",
		}
		if !item.AppliedDate.IsZero() {
			row[5] = item.AppliedDate.Format("2006-01-02")
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "error writing csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "error flushing csv")
	}
	return buf, nil
}

func FileName(now time.Time) string {
	return fmt.Sprintf("candidates_export_%s.csv", now.Format("2006-01-02"))
}
