// internal/errors/errors.go
package appErrors

import "fmt"

// ValidationError is a user-facing request problem (missing field, bad
// upload, malformed address). Always maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Helper constructor
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// BudgetExhaustedError means the daily send budget was already used up
// before the campaign could start. Maps to HTTP 429 and carries current
// usage so the caller can back off until the next day.
type BudgetExhaustedError struct {
	DailyCount int
	DailyLimit int
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("daily email limit reached (%d/%d sent today)", e.DailyCount, e.DailyLimit)
}

func NewBudgetExhausted(count, limit int) error {
	return &BudgetExhaustedError{DailyCount: count, DailyLimit: limit}
}
