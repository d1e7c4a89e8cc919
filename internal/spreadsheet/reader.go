// internal/spreadsheet/reader.go
package spreadsheet

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/svpmedia/bulkmail-backend/internal/model"
)

// ParseError means the upload could not be used as a spreadsheet.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid spreadsheet: " + e.Reason
}

// NoEmailColumnError means the header row has no recipient column.
type NoEmailColumnError struct{}

func (e *NoEmailColumnError) Error() string {
	return "no email column found in the uploaded file"
}

// ReadRows decodes the first sheet of an uploaded workbook into ordered
// rows keyed by the header row. Cells missing from short rows come back
// as empty strings so every row shares the header's key set.
func ReadRows(data []byte) ([]string, []model.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &ParseError{Reason: err.Error()}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, &ParseError{Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, &ParseError{Reason: err.Error()}
	}
	if len(rows) < 2 {
		return nil, nil, &ParseError{Reason: "first sheet has no data rows"}
	}

	headers := rows[0]
	records := make([]model.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		rec := make(model.Row, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				rec[h] = cells[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return headers, records, nil
}

// FindEmailColumn returns the first header whose name contains "email",
// case-insensitive.
func FindEmailColumn(headers []string) (string, error) {
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), "email") {
			return h, nil
		}
	}
	return "", &NoEmailColumnError{}
}
