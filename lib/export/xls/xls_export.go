package xlsexport

import (
	analyticsapimodels "ats-backend/models/api/analytics"
	dbmodels "ats-backend/models/db"
	"bytes"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
	ExportDashboard(data analyticsapimodels.DashboardView) (*bytes.Buffer, error)
}

func NewHandler() Provider {
	return impl{}
}

type impl struct{}

const (
	candidateSheet = "Candidates"
	summarySheet   = "Summary"
	statusSheet    = "Statuses"
	sourceSheet    = "Sources"
)

var candidateHeaders = []string{"Name", "Email", "Phone", "Position", "Status", "Experience", "Location", "Skills", "Source", "Rating", "Salary expectation", "Applied date", "Last activity"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		_, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error writing xlsx data")
		}
	}
	if err = f.SetSheetName(sheet, candidateSheet); err != nil {
		return nil, errors.Wrap(err, "error renaming xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Name,
			item.Email,
			item.Phone,
			item.Position,
			item.Status.ToHuman(),
			fmt.Sprintf("%d years", item.Experience),
			item.Location,
			joinSkills(item.Skills),
			item.Source,
			item.Rating,
			item.SalaryExpectation,
			formatDate(item.AppliedDate, "2006-01-02"),
			formatDate(item.LastActivity, "2006-01-02 15:04"),
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return row, err
		}
	}
	return row, nil
}

var summaryHeaders = []string{"Metric", "Value"}

func (i impl) ExportDashboard(data analyticsapimodels.DashboardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	if err := f.SetSheetName(sheet, summarySheet); err != nil {
		return nil, errors.Wrap(err, "error renaming xlsx sheet")
	}
	summary := [][]interface{}{
		{"Total candidates", data.TotalCandidates},
		{"Active positions", data.ActivePositions},
		{"Interviews scheduled", data.InterviewsScheduled},
		{"Offers pending", data.OffersPending},
		{"Time to hire, days", data.TimeToHire},
		{"Average rating", data.AverageRating},
	}
	if err := writeTable(f, summarySheet, summaryHeaders, summary); err != nil {
		return nil, errors.Wrap(err, "error writing summary sheet")
	}

	if _, err := f.NewSheet(statusSheet); err != nil {
		return nil, errors.Wrap(err, "error adding xlsx sheet")
	}
	if err := writeTable(f, statusSheet, []string{"Status", "Candidates"}, intMapRows(data.StatusDistribution)); err != nil {
		return nil, errors.Wrap(err, "error writing status sheet")
	}

	if _, err := f.NewSheet(sourceSheet); err != nil {
		return nil, errors.Wrap(err, "error adding xlsx sheet")
	}
	if err := writeTable(f, sourceSheet, []string{"Source", "Reached offer, %"}, floatMapRows(data.SourceEffectiveness)); err != nil {
		return nil, errors.Wrap(err, "error writing source sheet")
	}
	return f.WriteToBuffer()
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	row, err := writeHeader(f, sheet, 0, headers)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+len(rows)); err != nil {
		return err
	}
	for _, values := range rows {
		row++
		if err = writeRow(f, sheet, row, values); err != nil {
			return err
		}
	}
	return nil
}

func intMapRows(data map[string]int) [][]interface{} {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([][]interface{}, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []interface{}{key, data[key]})
	}
	return rows
}

func floatMapRows(data map[string]float64) [][]interface{} {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([][]interface{}, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []interface{}{key, data[key]})
	}
	return rows
}
