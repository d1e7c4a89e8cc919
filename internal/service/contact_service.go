// internal/service/contact_service.go
package service

import (
	"context"
	"strings"
	"time"

	appErrors "github.com/svpmedia/bulkmail-backend/internal/errors"
	"github.com/svpmedia/bulkmail-backend/internal/mailer"
)

// ContactService handles the stateless contact-form endpoint. It is not
// tracked against the daily bulk budget; the two quotas are deliberately
// separate.
type ContactService struct {
	Sender      mailer.Sender
	From        string
	To          string
	SendTimeout time.Duration
}

// ContactRequest is the contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Send validates the submission and delivers one templated notification
// to the configured inbox. Returns the provider's delivery id.
func (s *ContactService) Send(ctx context.Context, req ContactRequest) (string, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"message", req.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return "", appErrors.NewValidation("Missing required fields: " + strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(req.Email) {
		return "", appErrors.NewValidation("Invalid email format")
	}
	if s.Sender == nil {
		return "", mailer.ErrNotConfigured
	}

	subject := "New Contact Form Submission"
	if req.Service != "" {
		subject += " - " + req.Service
	}
	htmlBody, textBody := mailer.RenderContact(req.Name, req.Email, req.Phone, req.Company, req.Service, req.Message)

	timeout := s.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return s.Sender.Send(sendCtx, &mailer.Message{
		From:    s.From,
		To:      s.To,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
}
