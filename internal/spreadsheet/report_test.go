package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/svpmedia/bulkmail-backend/internal/model"
	"github.com/svpmedia/bulkmail-backend/internal/spreadsheet"
)

func TestBuildReportRoundTrip(t *testing.T) {
	sentAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	headers := []string{"Name", "Email"}
	outcomes := []model.Outcome{
		{
			Row:       model.Row{"Name": "Alice", "Email": "alice@example.com"},
			Recipient: "alice@example.com",
			Status:    model.StatusSent,
			Notes:     "delivered: abc-123",
			SentAt:    &sentAt,
		},
		{
			Row:       model.Row{"Name": "Bob", "Email": "not-an-email"},
			Recipient: "not-an-email",
			Status:    model.StatusFailed,
			Notes:     "invalid email format",
		},
	}
	summary := spreadsheet.Summary{
		TotalRows:   2,
		Sent:        1,
		Failed:      1,
		DailyCount:  1,
		DailyLimit:  500,
		Remaining:   499,
		ProcessedAt: sentAt,
	}

	data, err := spreadsheet.BuildReport(headers, outcomes, summary)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated report is not a valid workbook: %v", err)
	}
	defer f.Close()

	results, err := f.GetRows("Results")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(results))
	}
	wantHeader := []string{"Name", "Email", "Status", "Notes", "Sent At", "Failed At"}
	for i, h := range wantHeader {
		if results[0][i] != h {
			t.Errorf("header %d: expected %q, got %q", i, h, results[0][i])
		}
	}
	if results[1][2] != model.StatusSent {
		t.Errorf("expected first row sent, got %q", results[1][2])
	}
	if results[2][3] != "invalid email format" {
		t.Errorf("expected failure note, got %q", results[2][3])
	}

	summaryRows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatal(err)
	}
	if len(summaryRows) != 8 {
		t.Fatalf("expected 8 summary rows, got %d", len(summaryRows))
	}
	if summaryRows[0][0] != "Total Rows" || summaryRows[0][1] != "2" {
		t.Errorf("unexpected total rows line: %v", summaryRows[0])
	}
	if summaryRows[5][1] != "500" {
		t.Errorf("expected daily limit 500, got %q", summaryRows[5][1])
	}
}

func TestReportFilenameIsSortable(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 45, 0, time.UTC)
	got := spreadsheet.ReportFilename(ts)
	want := "bulk-email-results-20240301-103045.xlsx"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
