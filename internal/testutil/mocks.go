package testutil

import (
	"time"

	"toolrent/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReminderRepository is a mock for ReminderRepository
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Create(userID, chatID int64, dueAt time.Time, note string) (int64, error) {
	args := m.Called(userID, chatID, dueAt, note)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReminderRepository) ListPending(after time.Time) ([]domain.Reminder, error) {
	args := m.Called(after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

// MockReviewRepository is a mock for ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(userID int64, userName, text string, createdAt time.Time) (int64, error) {
	args := m.Called(userID, userName, text, createdAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) ListRecent(limit int) ([]domain.Review, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
