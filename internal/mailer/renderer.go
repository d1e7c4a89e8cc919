// internal/mailer/renderer.go
package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const (
	// CompanyName appears in the generated footer.
	CompanyName = "SVP Media Solutions"

	// LogoContentID is the cid: reference the HTML body uses for the
	// inline logo attachment.
	LogoContentID = "company-logo"
)

// nl2br escapes the text for HTML and converts newlines to <br> so the
// operator's line breaks survive in mail clients.
func nl2br(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// RenderCampaign builds the HTML and plain-text bodies for one bulk
// email. Output is identical for identical inputs; only the copyright
// year comes from the clock.
func RenderCampaign(body, footer string) (string, string) {
	year := time.Now().Year()

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(fmt.Sprintf(`<div style="text-align: center; padding: 24px 0;"><img src="cid:%s" alt="%s" style="max-width: 180px;"></div>`, LogoContentID, CompanyName))
	b.WriteString(fmt.Sprintf(`<div style="padding: 0 20px 20px; line-height: 1.6; color: #333;">%s</div>`, nl2br(body)))
	b.WriteString(`<hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">`)
	b.WriteString(`<div style="text-align: center; color: #6c757d; font-size: 12px; padding-bottom: 24px;">`)
	b.WriteString(fmt.Sprintf(`<img src="cid:%s" alt="%s" style="max-width: 100px; margin-bottom: 12px;">`, LogoContentID, CompanyName))
	if footer != "" {
		b.WriteString(fmt.Sprintf(`<p>%s</p>`, nl2br(footer)))
	}
	b.WriteString(fmt.Sprintf(`<p>&copy; %d %s. All rights reserved.</p>`, year, CompanyName))
	b.WriteString(`</div></div>`)

	text := body
	if footer != "" {
		text += "\n\n" + footer
	}
	return b.String(), text
}

// RenderContact builds the notification bodies for one contact-form
// submission.
func RenderContact(name, email, phone, company, service, message string) (string, string) {
	if company == "" {
		company = "Not provided"
	}
	receivedAt := time.Now().Format("2006-01-02 15:04:05")

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px;">New Contact Form Submission</h2>`)
	b.WriteString(`<div style="background: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #007bff; margin-top: 0;">Contact Information:</h3>`)
	b.WriteString(fmt.Sprintf(`<p><strong>Name:</strong> %s</p>`, html.EscapeString(name)))
	b.WriteString(fmt.Sprintf(`<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`, html.EscapeString(email), html.EscapeString(email)))
	b.WriteString(fmt.Sprintf(`<p><strong>Phone:</strong> <a href="tel:%s">%s</a></p>`, html.EscapeString(phone), html.EscapeString(phone)))
	b.WriteString(fmt.Sprintf(`<p><strong>Company:</strong> %s</p>`, html.EscapeString(company)))
	if service != "" {
		b.WriteString(fmt.Sprintf(`<p><strong>Service Interest:</strong> %s</p>`, html.EscapeString(service)))
	}
	b.WriteString(`</div>`)
	b.WriteString(`<div style="background: #fff; padding: 20px; border: 1px solid #dee2e6; border-radius: 5px;">`)
	b.WriteString(`<h3 style="color: #007bff; margin-top: 0;">Message:</h3>`)
	b.WriteString(fmt.Sprintf(`<p style="line-height: 1.6;">%s</p>`, nl2br(message)))
	b.WriteString(`</div>`)
	b.WriteString(`<hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">`)
	b.WriteString(fmt.Sprintf(`<p style="color: #6c757d; font-size: 12px; text-align: center;">This email was sent from your website contact form at %s</p>`, receivedAt))
	b.WriteString(`</div>`)

	text := fmt.Sprintf(`New Contact Form Submission

Contact Information:
Name: %s
Email: %s
Phone: %s
Company: %s
`, name, email, phone, company)
	if service != "" {
		text += fmt.Sprintf("Service Interest: %s\n", service)
	}
	text += fmt.Sprintf("\nMessage:\n%s\n\n---\nSent from your website contact form at %s\n", message, receivedAt)

	return b.String(), text
}
