package domain

import "time"

// SessionState represents user's current dialogue step
type SessionState string

const (
	StateIdle             SessionState = "idle"
	StateAwaitingDatetime SessionState = "awaiting_datetime"
	StateAwaitingNote     SessionState = "awaiting_note"
	StateAwaitingReview   SessionState = "awaiting_review"
)

// Session holds per-user dialogue state and scratch data.
// Re-entering a dialogue replaces the session wholesale.
type Session struct {
	State SessionState
	DueAt time.Time // parsed reminder time, set while awaiting the note
}

// NewIdleSession returns a fresh idle session.
func NewIdleSession() *Session {
	return &Session{State: StateIdle}
}
