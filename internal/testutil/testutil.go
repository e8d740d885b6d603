package testutil

import (
	"time"

	"toolrent/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestReminder creates a test reminder
func NewTestReminder(id, userID, chatID int64, dueAt time.Time, note string) domain.Reminder {
	return domain.Reminder{
		ID:     id,
		UserID: userID,
		ChatID: chatID,
		DueAt:  dueAt,
		Note:   note,
	}
}

// NewTestReview creates a test review
func NewTestReview(id, userID int64, userName, text string, createdAt time.Time) domain.Review {
	return domain.Review{
		ID:        id,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: createdAt,
	}
}
