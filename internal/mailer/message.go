// internal/mailer/message.go
package mailer

// Message is a fully-prepared email ready for delivery.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Attachment is a file carried with the message. ContentID, when set,
// lets the HTML body reference the attachment inline via cid: so mail
// clients render it without external fetches.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Content     []byte
}
