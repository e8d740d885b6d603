package repository

import (
	"time"

	"toolrent/internal/domain"
)

// ReminderRepository defines reminder data operations
type ReminderRepository interface {
	Create(userID, chatID int64, dueAt time.Time, note string) (int64, error)
	ListPending(after time.Time) ([]domain.Reminder, error)
}

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(userID int64, userName, text string, createdAt time.Time) (int64, error)
	ListRecent(limit int) ([]domain.Review, error)
}
