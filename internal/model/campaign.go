// internal/model/campaign.go
package model

import "time"

// CampaignResult holds everything produced by one bulk-send request.
type CampaignResult struct {
	CampaignID   string    `json:"campaign_id"`
	TotalRows    int       `json:"total_rows"`
	SentCount    int       `json:"sent_count"`
	FailedCount  int       `json:"failed_count"`
	SkippedCount int       `json:"skipped_count"`
	Outcomes     []Outcome `json:"outcomes"`
	ProcessedAt  time.Time `json:"processed_at"`

	// Report is the generated results workbook, served as a download.
	Report   []byte `json:"-"`
	Filename string `json:"filename"`
}

// CampaignSummary is the per-campaign aggregate kept in the send log.
type CampaignSummary struct {
	CampaignID string    `json:"campaign_id"`
	Sent       int       `json:"sent"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	CreatedAt  time.Time `json:"created_at"`
}
