// internal/spreadsheet/report.go
package spreadsheet

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/svpmedia/bulkmail-backend/internal/model"
)

const timestampLayout = "2006-01-02 15:04:05"

// Summary is the campaign-level aggregate written to the report's second
// sheet.
type Summary struct {
	TotalRows   int
	Sent        int
	Failed      int
	Skipped     int
	DailyCount  int
	DailyLimit  int
	Remaining   int
	ProcessedAt time.Time
}

// ReportFilename embeds a sortable timestamp so repeated downloads never
// collide.
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("bulk-email-results-%s.xlsx", t.Format("20060102-150405"))
}

// BuildReport packages per-row outcomes plus the campaign summary into a
// two-sheet workbook. The Results sheet keeps the input columns in their
// original order and appends the outcome fields.
func BuildReport(headers []string, outcomes []model.Outcome, summary Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const resultsSheet = "Results"
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, err
	}

	headerRow := make([]interface{}, 0, len(headers)+4)
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	headerRow = append(headerRow, "Status", "Notes", "Sent At", "Failed At")
	if err := f.SetSheetRow(resultsSheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	for i, o := range outcomes {
		row := make([]interface{}, 0, len(headerRow))
		for _, h := range headers {
			row = append(row, o.Row[h])
		}
		row = append(row, o.Status, o.Notes, formatTime(o.SentAt), formatTime(o.FailedAt))

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Total Rows", summary.TotalRows},
		{"Sent", summary.Sent},
		{"Failed", summary.Failed},
		{"Skipped", summary.Skipped},
		{"Daily Used", summary.DailyCount},
		{"Daily Limit", summary.DailyLimit},
		{"Remaining Today", summary.Remaining},
		{"Processed At", summary.ProcessedAt.Format(timestampLayout)},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}
