package pdfexport

import (
	dbmodels "ats-backend/models/db"
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 6.0
	labelWidth = 45.0
)

// GenerateCandidateCard renders a one page profile: contacts, pipeline state, skills,
// interviews and notes. Private notes are left out.
func GenerateCandidateCard(rec dbmodels.Candidate) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCandidateCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(rec.Name), false)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 10, tr(rec.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "I", 12)
	pdf.CellFormat(0, 8, tr(rec.Position), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 11)
	fields := [][2]string{
		{"Email", rec.Email},
		{"Phone", rec.Phone},
		{"Location", rec.Location},
		{"Status", rec.Status.ToHuman()},
		{"Experience", fmt.Sprintf("%d years", rec.Experience)},
		{"Salary expectation", fmt.Sprintf("%.0f", rec.SalaryExpectation)},
		{"Source", rec.Source},
		{"Rating", fmt.Sprintf("%.1f / 5", rec.Rating)},
		{"Applied", rec.AppliedDate.Format("2006-01-02")},
		{"Last activity", rec.LastActivity.Format("2006-01-02 15:04")},
	}
	for _, field := range fields {
		writeField(pdf, tr, field[0], field[1])
	}
	writeField(pdf, tr, "Skills", strings.Join(rec.Skills, ", "))

	if len(rec.Interviews) != 0 {
		writeSection(pdf, "Interviews")
		for _, interview := range rec.Interviews {
			line := fmt.Sprintf("%s %s, %s (%d min, %s, %s)",
				interview.Date.Format("2006-01-02"), interview.Time, interview.Title,
				interview.Duration, interview.Type.ToHuman(), interview.Status)
			pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
			if interview.Feedback != nil {
				feedback := fmt.Sprintf("Feedback: overall %.1f, recommendation %s. %s",
					interview.Feedback.OverallRating, interview.Feedback.Recommendation, interview.Feedback.Comments)
				pdf.SetFont(fontFamily, "I", 10)
				pdf.MultiCell(0, lineHeight, tr(feedback), "", "L", false)
				pdf.SetFont(fontFamily, "", 11)
			}
		}
	}

	notes := make([]dbmodels.CandidateNote, 0, len(rec.Notes))
	for _, note := range rec.Notes {
		if !note.IsPrivate {
			notes = append(notes, note)
		}
	}
	if len(notes) != 0 {
		writeSection(pdf, "Notes")
		for _, note := range notes {
			pdf.SetFont(fontFamily, "B", 10)
			pdf.CellFormat(0, lineHeight, tr(fmt.Sprintf("%s, %s", note.Author, note.CreatedAt.Format("2006-01-02 15:04"))), "", 1, "L", false, 0, "")
			pdf.SetFont(fontFamily, "", 11)
			pdf.MultiCell(0, lineHeight, tr(note.Content), "", "L", false)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.MultiCell(0, lineHeight, tr(value), "", "L", false)
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "", 11)
}
