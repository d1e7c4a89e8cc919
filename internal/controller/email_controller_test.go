package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/svpmedia/bulkmail-backend/internal/controller"
	"github.com/svpmedia/bulkmail-backend/internal/mailer"
	"github.com/svpmedia/bulkmail-backend/internal/ratelimit"
	"github.com/svpmedia/bulkmail-backend/internal/service"
)

type mockSender struct {
	sent []string
}

func (m *mockSender) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	m.sent = append(m.sent, msg.To)
	return fmt.Sprintf("msg-%d", len(m.sent)), nil
}

func newController(sender mailer.Sender, budget *ratelimit.Budget) *controller.EmailController {
	return &controller.EmailController{
		Campaigns: &service.CampaignService{
			Sender: sender,
			Budget: budget,
			From:   "team@example.com",
		},
		Contact: &service.ContactService{
			Sender: sender,
			From:   "team@example.com",
			To:     "inbox@example.com",
		},
		Budget:      budget,
		Environment: "test",
	}
}

func emailSheet(t *testing.T, emails ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"Email"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatal(err)
	}
	for i, email := range emails {
		row := []interface{}{email}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func bulkRequest(t *testing.T, file []byte, subject, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if file != nil {
		fw, err := w.CreateFormFile("file", "recipients.xlsx")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(file)
	}
	w.WriteField("subject", subject)
	w.WriteField("body", body)
	w.WriteField("footer", "Reply to opt out.")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/send-bulk-email", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSendBulkEmailReturnsWorkbook(t *testing.T) {
	sender := &mockSender{}
	ctrl := newController(sender, ratelimit.New(100))

	rec := httptest.NewRecorder()
	ctrl.SendBulkEmail(rec, bulkRequest(t, emailSheet(t, "a@example.com", "b@example.com"), "Subject", "Body"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected spreadsheet content type, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "bulk-email-results-") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("unexpected content disposition: %q", cd)
	}
	if len(sender.sent) != 2 {
		t.Errorf("expected 2 deliveries, got %d", len(sender.sent))
	}

	if _, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Errorf("response body is not a valid workbook: %v", err)
	}
}

func TestSendBulkEmailMissingFile(t *testing.T) {
	ctrl := newController(&mockSender{}, ratelimit.New(100))

	rec := httptest.NewRecorder()
	ctrl.SendBulkEmail(rec, bulkRequest(t, nil, "Subject", "Body"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["success"] != false {
		t.Error("expected success=false")
	}
}

func TestSendBulkEmailBudgetExhausted(t *testing.T) {
	budget := ratelimit.New(1)
	budget.RecordSent()
	ctrl := newController(&mockSender{}, budget)

	rec := httptest.NewRecorder()
	ctrl.SendBulkEmail(rec, bulkRequest(t, emailSheet(t, "a@example.com"), "Subject", "Body"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["dailyCount"] != float64(1) || resp["dailyLimit"] != float64(1) {
		t.Errorf("expected usage in 429 body, got %v", resp)
	}
}

func TestEmailStats(t *testing.T) {
	budget := ratelimit.New(500)
	budget.RecordSent()
	ctrl := newController(&mockSender{}, budget)

	rec := httptest.NewRecorder()
	ctrl.EmailStats(rec, httptest.NewRequest(http.MethodGet, "/api/email-stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats["dailyCount"] != float64(1) || stats["dailyLimit"] != float64(500) || stats["remainingToday"] != float64(499) {
		t.Errorf("unexpected stats payload: %v", stats)
	}
	if _, ok := stats["resetDate"]; !ok {
		t.Error("expected resetDate field")
	}
}

func TestSendSingleEmail(t *testing.T) {
	sender := &mockSender{}
	ctrl := newController(sender, ratelimit.New(100))

	payload := `{"name":"Alice","email":"alice@example.com","phone":"555-0101","message":"Hi!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	ctrl.SendSingleEmail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["success"] != true || resp["messageId"] == "" {
		t.Errorf("unexpected response: %v", resp)
	}

	// the contact form never touches the bulk budget
	if got := ctrl.Budget.Status().DailyCount; got != 0 {
		t.Errorf("contact form must not consume the daily budget, count=%d", got)
	}
}

func TestSendSingleEmailValidation(t *testing.T) {
	ctrl := newController(&mockSender{}, ratelimit.New(100))

	payload := `{"name":"Alice","email":"bad address","phone":"555-0101","message":"Hi!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	ctrl.SendSingleEmail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	ctrl := newController(&mockSender{}, ratelimit.New(100))

	rec := httptest.NewRecorder()
	ctrl.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["message"] != "Server is running!" || resp["environment"] != "test" {
		t.Errorf("unexpected response: %v", resp)
	}
}
