package report

import (
	"encoding/csv"
	"io"
	"time"

	"reddybook/internal/models"

	"github.com/xuri/excelize/v2"
)

const timeLayout = "2006-01-02 15:04"

var Header = []string{"Name", "Mobile Number", "Website", "Status", "Submitted At"}

const (
	CSVFileName  = "user_submissions.csv"
	XLSXFileName = "user_submissions.xlsx"
)

// Format controls how a submission renders in an export.
type Format struct {
	CountryCode string
	Location    *time.Location
}

func (f Format) record(s *models.Submission) []string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return []string{
		s.Name,
		"+" + f.CountryCode + s.MobileNumber,
		s.SelectedWebsite,
		s.StatusValue(),
		s.SubmittedAt.In(loc).Format(timeLayout),
	}
}

// Filter keeps the submissions that fall inside r, preserving order.
func Filter(rows []models.Submission, r DateRange) []models.Submission {
	out := make([]models.Submission, 0, len(rows))
	for _, s := range rows {
		if r.Contains(s.SubmittedAt) {
			out = append(out, s)
		}
	}
	return out
}

func WriteCSV(w io.Writer, rows []models.Submission, f Format) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := range rows {
		if err := cw.Write(f.record(&rows[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteXLSX(w io.Writer, rows []models.Submission, f Format) error {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Submissions"
	index, err := x.NewSheet(sheet)
	if err != nil {
		return err
	}
	x.SetActiveSheet(index)
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := setRow(x, sheet, 1, Header); err != nil {
		return err
	}
	if err := x.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	if err := x.SetColWidth(sheet, "A", "E", 22); err != nil {
		return err
	}
	for i := range rows {
		if err := setRow(x, sheet, i+2, f.record(&rows[i])); err != nil {
			return err
		}
	}
	return x.Write(w)
}

func setRow(x *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return x.SetSheetRow(sheet, cell, &cells)
}
