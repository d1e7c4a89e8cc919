// internal/controller/email_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	appErrors "github.com/svpmedia/bulkmail-backend/internal/errors"
	"github.com/svpmedia/bulkmail-backend/internal/mailer"
	"github.com/svpmedia/bulkmail-backend/internal/model"
	"github.com/svpmedia/bulkmail-backend/internal/ratelimit"
	"github.com/svpmedia/bulkmail-backend/internal/repository"
	"github.com/svpmedia/bulkmail-backend/internal/service"
)

const (
	maxUploadBytes = 10 << 20
	xlsxMIMEType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type EmailController struct {
	Campaigns   *service.CampaignService
	Contact     *service.ContactService
	Budget      *ratelimit.Budget
	SendLog     repository.SendLogRepository
	Environment string
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// SendBulkEmail handles the multipart campaign upload and streams back
// the annotated results workbook.
func (c *EmailController) SendBulkEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	in := service.CampaignInput{
		Subject: r.FormValue("subject"),
		Body:    r.FormValue("body"),
		Footer:  r.FormValue("footer"),
	}
	if file, _, err := r.FormFile("file"); err == nil {
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			writeJSONError(w, http.StatusBadRequest, "could not read uploaded file")
			return
		}
		in.File = data
	}

	result, err := c.Campaigns.Run(r.Context(), in)
	if err != nil {
		var budgetErr *appErrors.BudgetExhaustedError
		if errors.As(err, &budgetErr) {
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"success":    false,
				"message":    budgetErr.Error(),
				"dailyCount": budgetErr.DailyCount,
				"dailyLimit": budgetErr.DailyLimit,
			})
			return
		}
		var validationErr *appErrors.ValidationError
		if errors.As(err, &validationErr) {
			writeJSONError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		log.Println("❌ bulk send failed:", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", xlsxMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Write(result.Report)
}

// EmailStats reports today's budget usage.
func (c *EmailController) EmailStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Budget.Status())
}

// SendSingleEmail handles one contact-form submission.
func (c *EmailController) SendSingleEmail(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid body")
		return
	}

	id, err := c.Contact.Send(r.Context(), req)
	if err != nil {
		var validationErr *appErrors.ValidationError
		if errors.As(err, &validationErr) {
			writeJSONError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		log.Println("❌ contact email failed:", err)
		writeJSONError(w, http.StatusInternalServerError, contactErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Email sent successfully",
		"messageId": id,
	})
}

// contactErrorMessage keeps provider details out of the response while
// still telling the caller which class of failure happened.
func contactErrorMessage(err error) string {
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		return mailer.ErrNotConfigured.Error()
	case errors.Is(err, mailer.ErrAuth):
		return "Email authentication failed. Please check your credentials."
	case errors.Is(err, mailer.ErrConnection):
		return "Email service connection failed. Please try again later."
	case errors.Is(err, mailer.ErrTimeout):
		return "Email request timed out. Please try again."
	default:
		return "Failed to send email"
	}
}

// RecentCampaigns lists recent campaign summaries from the send log.
func (c *EmailController) RecentCampaigns(w http.ResponseWriter, r *http.Request) {
	if c.SendLog == nil {
		writeJSON(w, http.StatusOK, map[string]any{"data": []model.CampaignSummary{}})
		return
	}
	summaries, err := c.SendLog.RecentCampaigns(20)
	if err != nil {
		log.Println("❌ failed to fetch recent campaigns:", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to fetch campaigns")
		return
	}
	if summaries == nil {
		summaries = []model.CampaignSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": summaries})
}

// HealthCheck confirms the service is up.
func (c *EmailController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Server is running!",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": c.Environment,
	})
}

// NotFound is the catch-all for undefined endpoints.
func (c *EmailController) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"message": "Endpoint not found",
		"availableEndpoints": []string{
			"GET /api/test",
			"GET /api/email-stats",
			"GET /api/campaigns/recent",
			"POST /api/send-email",
			"POST /api/send-bulk-email",
		},
	})
}
