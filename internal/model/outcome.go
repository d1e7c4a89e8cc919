// internal/model/outcome.go
package model

import "time"

// Outcome statuses for a processed row.
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Outcome is the terminal result recorded for one input row. Created once
// per row and never mutated afterwards.
type Outcome struct {
	Row       Row        `json:"row"`
	Recipient string     `json:"recipient"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	FailedAt  *time.Time `json:"failed_at,omitempty"`
}
