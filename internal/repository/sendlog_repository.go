// internal/repository/sendlog_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/svpmedia/bulkmail-backend/internal/model"
)

// SendLogRepository keeps per-recipient campaign history. The bulk path
// works without it; recording is best effort.
type SendLogRepository interface {
	RecordOutcomes(campaignID string, outcomes []model.Outcome) error
	RecentCampaigns(limit int) ([]model.CampaignSummary, error)
}

// PostgresSendLog stores the send log in Postgres.
type PostgresSendLog struct {
	DB *sql.DB
}

// EnsureSchema creates the send_log table if it does not exist yet.
func (r *PostgresSendLog) EnsureSchema() error {
	_, err := r.DB.Exec(`
        CREATE TABLE IF NOT EXISTS send_log (
            id          SERIAL PRIMARY KEY,
            campaign_id TEXT NOT NULL,
            recipient   TEXT NOT NULL,
            status      TEXT NOT NULL,
            notes       TEXT NOT NULL DEFAULT '',
            created_at  TIMESTAMPTZ NOT NULL
        )
    `)
	return err
}

// RecordOutcomes inserts one row per processed recipient.
func (r *PostgresSendLog) RecordOutcomes(campaignID string, outcomes []model.Outcome) error {
	query := `
        INSERT INTO send_log (campaign_id, recipient, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	now := time.Now()
	for _, o := range outcomes {
		ts := now
		if o.SentAt != nil {
			ts = *o.SentAt
		} else if o.FailedAt != nil {
			ts = *o.FailedAt
		}
		if _, err := r.DB.Exec(query, campaignID, o.Recipient, o.Status, o.Notes, ts); err != nil {
			return err
		}
	}
	return nil
}

// RecentCampaigns aggregates the log by campaign, newest first.
func (r *PostgresSendLog) RecentCampaigns(limit int) ([]model.CampaignSummary, error) {
	if limit < 1 {
		limit = 10
	}
	query := `
        SELECT campaign_id,
               COUNT(*) FILTER (WHERE status = 'sent'),
               COUNT(*) FILTER (WHERE status = 'failed'),
               COUNT(*) FILTER (WHERE status = 'skipped'),
               MAX(created_at)
        FROM send_log
        GROUP BY campaign_id
        ORDER BY MAX(created_at) DESC
        LIMIT $1
    `
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.CampaignSummary
	for rows.Next() {
		var s model.CampaignSummary
		if err := rows.Scan(&s.CampaignID, &s.Sent, &s.Failed, &s.Skipped, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
