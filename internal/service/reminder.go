package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"toolrent/internal/clock"
	"toolrent/internal/domain"
	"toolrent/internal/repository"
	"toolrent/internal/scheduler"

	"go.uber.org/zap"
)

// ErrPastDatetime is returned when the requested reminder time is not
// strictly in the future.
var ErrPastDatetime = errors.New("datetime is not in the future")

// ReminderService validates, persists and schedules return reminders.
type ReminderService struct {
	repo   repository.ReminderRepository
	sched  *scheduler.Scheduler
	clock  *clock.Clock
	logger *zap.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(
	repo repository.ReminderRepository,
	sched *scheduler.Scheduler,
	clk *clock.Clock,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		repo:   repo,
		sched:  sched,
		clock:  clk,
		logger: logger,
	}
}

// ParseDueAt parses user input as a local datetime and requires it to be
// in the future. The returned time is in the configured timezone.
func (s *ReminderService) ParseDueAt(text string) (time.Time, error) {
	dueLocal, err := s.clock.ParseLocal(text)
	if err != nil {
		return time.Time{}, err
	}
	if !dueLocal.After(s.clock.Now()) {
		return time.Time{}, ErrPastDatetime
	}
	return dueLocal, nil
}

// Create persists a reminder and arms its timer. An empty or "-" note
// falls back to the default. Returns the stored reminder.
func (s *ReminderService) Create(userID, chatID int64, dueLocal time.Time, note string) (*domain.Reminder, error) {
	note = strings.TrimSpace(note)
	if note == "" || note == "-" {
		note = domain.DefaultReminderNote
	}

	dueUTC := dueLocal.UTC()

	id, err := s.repo.Create(userID, chatID, dueUTC, note)
	if err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	s.logger.Info("Reminder created",
		zap.Int64("reminder_id", id),
		zap.Int64("user_id", userID),
		zap.Time("due_at", dueUTC),
	)

	s.sched.ScheduleOnce(id, dueUTC, scheduler.Payload{
		UserID: userID,
		ChatID: chatID,
		Note:   note,
	})

	return &domain.Reminder{
		ID:     id,
		UserID: userID,
		ChatID: chatID,
		DueAt:  dueUTC,
		Note:   note,
	}, nil
}

// RestorePending re-arms timers for reminders still due in the future.
// Run once at startup; reminders already past due are left alone.
func (s *ReminderService) RestorePending() (int, error) {
	now := time.Now().UTC()

	pending, err := s.repo.ListPending(now)
	if err != nil {
		return 0, fmt.Errorf("list pending reminders: %w", err)
	}

	for _, rem := range pending {
		s.sched.ScheduleOnce(rem.ID, rem.DueAt, scheduler.Payload{
			UserID: rem.UserID,
			ChatID: rem.ChatID,
			Note:   rem.Note,
		})
	}

	return len(pending), nil
}
