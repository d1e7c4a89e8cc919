// internal/model/row.go
package model

// Row is one data row from the uploaded sheet, keyed by header name.
// Missing cells are filled with "" so every row in a batch carries the
// same key set as the header row.
type Row map[string]string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
