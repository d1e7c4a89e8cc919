// internal/mailer/errors.go
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConfigured indicates no sender credentials are present.
	ErrNotConfigured = errors.New("email service is not configured properly")

	// ErrAuth indicates the provider rejected our credentials.
	ErrAuth = errors.New("email authentication failed")

	// ErrConnection indicates the provider could not be reached.
	ErrConnection = errors.New("email service connection failed")

	// ErrTimeout indicates the send did not complete in time.
	ErrTimeout = errors.New("email request timed out")

	// ErrSendFailed is the generic delivery failure.
	ErrSendFailed = errors.New("failed to send email")
)

// Categorize maps a raw provider failure onto one of the sender error
// classes so callers can report something actionable.
func Categorize(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "api key") || strings.Contains(msg, "forbidden"):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case strings.Contains(msg, "connection") || strings.Contains(msg, "dial") || strings.Contains(msg, "no such host"):
		return fmt.Errorf("%w: %v", ErrConnection, err)
	default:
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
}
