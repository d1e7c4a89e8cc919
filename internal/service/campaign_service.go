// internal/service/campaign_service.go
package service

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	appErrors "github.com/svpmedia/bulkmail-backend/internal/errors"
	"github.com/svpmedia/bulkmail-backend/internal/events"
	"github.com/svpmedia/bulkmail-backend/internal/mailer"
	"github.com/svpmedia/bulkmail-backend/internal/model"
	"github.com/svpmedia/bulkmail-backend/internal/ratelimit"
	"github.com/svpmedia/bulkmail-backend/internal/repository"
	"github.com/svpmedia/bulkmail-backend/internal/spreadsheet"
)

const defaultSendTimeout = 30 * time.Second

// Same address shape the contact form enforces: local part, @, domain
// with a dot, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CampaignService drives one bulk-send request end to end: parse the
// uploaded sheet, walk the rows against the shared daily budget, deliver
// per row, and package the annotated results workbook.
type CampaignService struct {
	Sender      mailer.Sender
	Budget      *ratelimit.Budget
	SendLog     repository.SendLogRepository
	Events      events.Publisher
	Logo        *mailer.Attachment
	From        string
	SendTimeout time.Duration
}

// CampaignInput is everything the upload form submits.
type CampaignInput struct {
	File    []byte
	Subject string
	Body    string
	Footer  string
}

// Run processes one campaign. Validation problems come back as
// *appErrors.ValidationError, an exhausted budget as
// *appErrors.BudgetExhaustedError; a failed send of a single row never
// fails the campaign.
func (s *CampaignService) Run(ctx context.Context, in CampaignInput) (*model.CampaignResult, error) {
	if len(in.File) == 0 {
		return nil, appErrors.NewValidation("Please select an Excel file with email addresses.")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return nil, appErrors.NewValidation("Subject is required")
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, appErrors.NewValidation("Body is required")
	}

	headers, rows, err := spreadsheet.ReadRows(in.File)
	if err != nil {
		return nil, appErrors.NewValidation(err.Error())
	}
	emailCol, err := spreadsheet.FindEmailColumn(headers)
	if err != nil {
		return nil, appErrors.NewValidation(err.Error())
	}

	status := s.Budget.Status()
	if status.RemainingToday == 0 {
		return nil, appErrors.NewBudgetExhausted(status.DailyCount, status.DailyLimit)
	}

	// Snapshot taken once: a single campaign can push the counter up to
	// the limit but never past it.
	cutoff := len(rows)
	if status.RemainingToday < cutoff {
		cutoff = status.RemainingToday
	}

	log.Printf("📨 starting campaign: %d rows, %d sendable today", len(rows), cutoff)

	result := &model.CampaignResult{TotalRows: len(rows)}
	for i, row := range rows {
		outcome := s.processRow(ctx, i, cutoff, emailCol, row, in)
		switch outcome.Status {
		case model.StatusSent:
			result.SentCount++
			s.Budget.RecordSent()
		case model.StatusFailed:
			result.FailedCount++
		case model.StatusSkipped:
			result.SkippedCount++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.ProcessedAt = time.Now()
	result.CampaignID = result.ProcessedAt.Format("20060102-150405")
	result.Filename = spreadsheet.ReportFilename(result.ProcessedAt)

	after := s.Budget.Status()
	report, err := spreadsheet.BuildReport(headers, result.Outcomes, spreadsheet.Summary{
		TotalRows:   result.TotalRows,
		Sent:        result.SentCount,
		Failed:      result.FailedCount,
		Skipped:     result.SkippedCount,
		DailyCount:  after.DailyCount,
		DailyLimit:  after.DailyLimit,
		Remaining:   after.RemainingToday,
		ProcessedAt: result.ProcessedAt,
	})
	if err != nil {
		return nil, err
	}
	result.Report = report

	s.recordAndPublish(result)

	log.Printf("✅ campaign %s done: %d sent, %d failed, %d skipped",
		result.CampaignID, result.SentCount, result.FailedCount, result.SkippedCount)
	return result, nil
}

// processRow applies the per-row decision order: budget cutoff first,
// then address shape, then delivery. A row past the cutoff is reported
// as skipped even when its address is also malformed.
func (s *CampaignService) processRow(ctx context.Context, index, cutoff int, emailCol string, row model.Row, in CampaignInput) model.Outcome {
	addr := strings.TrimSpace(row[emailCol])
	if index >= cutoff {
		return model.Outcome{Row: row.Clone(), Recipient: addr, Status: model.StatusSkipped, Notes: "daily limit reached"}
	}

	if addr == "" || !emailPattern.MatchString(addr) {
		now := time.Now()
		return model.Outcome{Row: row.Clone(), Recipient: addr, Status: model.StatusFailed, Notes: "invalid email format", FailedAt: &now}
	}

	// An unconfigured sender fails the row, never the campaign.
	if s.Sender == nil {
		now := time.Now()
		return model.Outcome{Row: row.Clone(), Recipient: addr, Status: model.StatusFailed, Notes: mailer.ErrNotConfigured.Error(), FailedAt: &now}
	}

	htmlBody, textBody := mailer.RenderCampaign(in.Body, in.Footer)
	msg := &mailer.Message{
		From:    s.From,
		To:      addr,
		Subject: in.Subject,
		HTML:    htmlBody,
		Text:    textBody,
	}
	if s.Logo != nil {
		msg.Attachments = []mailer.Attachment{*s.Logo}
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()

	id, err := s.Sender.Send(sendCtx, msg)
	now := time.Now()
	if err != nil {
		log.Println("⚠️ send failed for", addr, ":", err)
		return model.Outcome{Row: row.Clone(), Recipient: addr, Status: model.StatusFailed, Notes: err.Error(), FailedAt: &now}
	}
	return model.Outcome{Row: row.Clone(), Recipient: addr, Status: model.StatusSent, Notes: "delivered: " + id, SentAt: &now}
}

func (s *CampaignService) sendTimeout() time.Duration {
	if s.SendTimeout > 0 {
		return s.SendTimeout
	}
	return defaultSendTimeout
}

// recordAndPublish ships the outcome history to the optional send log
// and event queue. Both are best effort; the caller already has the
// report in hand.
func (s *CampaignService) recordAndPublish(result *model.CampaignResult) {
	if s.SendLog != nil {
		if err := s.SendLog.RecordOutcomes(result.CampaignID, result.Outcomes); err != nil {
			log.Println("⚠️ failed to record campaign outcomes:", err)
		}
	}
	if s.Events != nil {
		summary := model.CampaignSummary{
			CampaignID: result.CampaignID,
			Sent:       result.SentCount,
			Failed:     result.FailedCount,
			Skipped:    result.SkippedCount,
			CreatedAt:  result.ProcessedAt,
		}
		if err := s.Events.PublishCampaignResult(summary); err != nil {
			log.Println("⚠️ failed to publish campaign event:", err)
		}
	}
}
