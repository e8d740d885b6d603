package domain

import "time"

// DefaultReminderNote is stored when the user skips the note step.
const DefaultReminderNote = "Возврат инструмента"

// Reminder is a scheduled one-shot return notification.
type Reminder struct {
	ID     int64
	UserID int64
	ChatID int64
	DueAt  time.Time // always UTC
	Note   string
}
