// internal/ratelimit/budget.go
package ratelimit

import (
	"sync"
	"time"
)

// Status is a point-in-time snapshot of the daily budget.
type Status struct {
	DailyCount     int    `json:"dailyCount"`
	DailyLimit     int    `json:"dailyLimit"`
	RemainingToday int    `json:"remainingToday"`
	ResetDate      string `json:"resetDate"`
}

// Budget counts emails sent today against a fixed daily ceiling. It is
// shared by every request in the process, so all reads and writes go
// through the mutex. The counter lives in memory only and resets on the
// first access of a new calendar day.
type Budget struct {
	mu        sync.Mutex
	count     int
	limit     int
	resetDate string
	now       func() time.Time
}

// New creates a budget with the given daily limit.
func New(limit int) *Budget {
	return NewWithClock(limit, time.Now)
}

// NewWithClock lets tests control the calendar day.
func NewWithClock(limit int, now func() time.Time) *Budget {
	return &Budget{
		limit:     limit,
		resetDate: now().Format("2006-01-02"),
		now:       now,
	}
}

// rollover resets the counter when the calendar day has changed.
// Callers must hold mu.
func (b *Budget) rollover() {
	today := b.now().Format("2006-01-02")
	if b.resetDate != today {
		b.count = 0
		b.resetDate = today
	}
}

// Status reports current usage, applying the day rollover first.
func (b *Budget) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rollover()

	remaining := b.limit - b.count
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		DailyCount:     b.count,
		DailyLimit:     b.limit,
		RemainingToday: remaining,
		ResetDate:      b.resetDate,
	}
}

// Remaining returns how many sends are left today.
func (b *Budget) Remaining() int {
	return b.Status().RemainingToday
}

// RecordSent counts one confirmed successful send. Callers must check
// Remaining before sending; no ceiling is enforced here.
func (b *Budget) RecordSent() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rollover()
	b.count++
}
