// internal/mailer/sender.go
package mailer

import "context"

// Sender is the delivery capability behind both the bulk and the contact
// endpoints. Implementations deliver one prepared message and report the
// provider's delivery identifier.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}
